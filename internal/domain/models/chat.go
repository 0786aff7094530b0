package models

// ChatMessage is one turn of conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the POST /api/chat/message body.
type ChatRequest struct {
	Message string        `json:"message" validate:"required"`
	History []ChatMessage `json:"history"`
}

// ChatResponse is the assistant reply plus the feeds it drew from.
type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources"`
}
