package models

// Alert is a flattened, severity-classified view of one raw event.
type Alert struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
}

// AlertSummary counts active alerts by severity.
type AlertSummary struct {
	Total    int `json:"total"`
	Extreme  int `json:"extreme"`
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`
}
