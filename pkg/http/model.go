package http

// APIResponse is the standard success envelope. Every endpoint wraps its
// payload with a string status so dashboard clients can branch on it.
type APIResponse struct {
	Status string      `json:"status" example:"success"`
	Count  *int        `json:"count,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// APIErrorResponse is the standard error envelope.
type APIErrorResponse struct {
	Status  string      `json:"status" example:"error"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_MAX"`
	Field   string                 `json:"field,omitempty" example:"days"`
	Message string                 `json:"message,omitempty" example:"days must be at most 30"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
