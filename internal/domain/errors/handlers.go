package errors

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error   string   `json:"error"`             // User-friendly error message
	Details []string `json:"details,omitempty"` // Per-field messages (optional)
}

// NewErrorResponse builds the response body for an AppError.
func NewErrorResponse(appErr AppError) ErrorResponse {
	return ErrorResponse{
		Error:   appErr.Message(),
		Details: appErr.Details(),
	}
}
