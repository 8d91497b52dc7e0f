package api

import (
	"encoding/json"
	"io"
	"net/http"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorCode represents error codes used in API responses
type ErrorCode string

const (
	// ErrorCodeInvalidRequest represents invalid request parameters
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// ErrorCodeMethodNotAllowed represents a wrong HTTP method
	ErrorCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"

	// ErrorCodeInternalError represents an internal server error
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// writeJSON writes a JSON response to the response writer
func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// writeError sends an error response
func writeError(w http.ResponseWriter, statusCode int, code ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = writeJSON(w, ErrorResponse{Error: string(code), Message: message})
}
