package api

// ErrorResponse represents all API error responses. The body is a single
// human-readable message under an `error` key.
// @Description Standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
