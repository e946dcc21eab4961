package utils

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the uniform envelope returned by all JSON endpoints.
// Data is omitted when the endpoint has nothing to attach.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondSuccess wraps data in the standard envelope. Pass a non-nil empty
// slice to emit "data": [] rather than dropping the field.
func RespondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError sends an error envelope
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, APIResponse{
		Success: false,
		Message: message,
	})
}
