package dto

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse acknowledges writes that return no body of their own.
type MessageResponse struct {
	Message string `json:"message"`
}
