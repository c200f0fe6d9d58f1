package dto

// MessageResponse is the generic success payload used by mutation endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a single message field, the shape the frontend
// expects on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error payload with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// CountsResponse is the dashboard aggregate, recomputed on every call.
type CountsResponse struct {
	Forums   int64 `json:"forums"`
	Jobs     int64 `json:"jobs"`
	Events   int64 `json:"events"`
	UpEvents int64 `json:"upevents"`
	Alumni   int64 `json:"alumni"`
}
