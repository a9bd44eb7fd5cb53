package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint and middleware on failure.
//
// Fields:
//   - Message: human-readable summary of what went wrong.
//   - ErrorDetails: underlying error text, omitted when not available.
//   - Timestamp: server time at which the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"upstream provider unavailable"`
	ErrorDetails string    `json:"error,omitempty" example:"status 502 from provider"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
