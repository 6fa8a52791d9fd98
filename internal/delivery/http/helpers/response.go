package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for every failed request:
// {"message": "...", "errors": [...]}. Errors carries field-level detail and
// is only present for validation failures.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes data as the bare response body.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError writes an ErrorResponse with just a message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Message: message})
}

// WriteValidationError writes a 400 ErrorResponse with field-level detail.
func WriteValidationError(w http.ResponseWriter, message string, errs []string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: message, Errors: errs})
}
