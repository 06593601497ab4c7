// internal/util/errors.go
// JSON error envelope shared by every HTTP surface.

package util

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail points at one offending input field.
type ErrorDetail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// APIError is the body of every non-2xx JSON response.
type APIError struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

func BadInput(msg string, details ...ErrorDetail) APIError {
	return APIError{Error: msg, Details: details}
}

func NotFound() APIError {
	return APIError{Error: "Not found"}
}

func Internal(msg string) APIError {
	return APIError{Error: msg}
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, e APIError) {
	WriteJSON(w, status, e)
}
