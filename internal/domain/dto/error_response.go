package dto

import "time"

// ErrorResponse is the standard JSON error body returned by the API.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"ticker is required"`
	ErrorDetails string    `json:"error,omitempty" example:"unsupported ticker XXXX"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil.
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
