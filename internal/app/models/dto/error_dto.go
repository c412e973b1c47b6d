package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error" example:"Unauthorized"`
	Details string `json:"details,omitempty" example:"profile_update"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// WithDetails attaches a details string to the error body
func (e ErrorResponse) WithDetails(details string) ErrorResponse {
	e.Details = details
	return e
}
