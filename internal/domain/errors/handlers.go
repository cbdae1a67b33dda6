package errors

// ErrorInfo is the error part of a failure envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "MENTOR_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Only populated in debug mode
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for failed responses.
type ErrorResponse struct {
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}
