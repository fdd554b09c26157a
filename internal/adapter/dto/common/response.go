package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse represents the health/root status payload
type StatusResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
