// Package response provides helpers for writing the JSON envelopes the API
// returns.
//
// Success bodies carry a human-readable "message" and a payload key named
// after the resource ("data", "customer", "otpDetails", "simDetails").
// Failure bodies carry an "error" and, on the insert path only, "details".
package response

import (
	"encoding/json"
	"net/http"
)

// Error is the failure envelope.
type Error struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON writes data as JSON with the given status code.
// Header() must be set before WriteHeader, and WriteHeader before the body.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Success builds a success envelope with payload stored under key.
func Success(message, key string, payload any) map[string]any {
	return map[string]any{
		"message": message,
		key:       payload,
	}
}

// Fail builds a failure envelope.
func Fail(msg string) Error {
	return Error{Error: msg}
}

// FailWithDetails builds a failure envelope that exposes err's text to the
// client. Only the insert path uses it; everywhere else store errors stay
// server-side.
func FailWithDetails(msg string, err error) Error {
	return Error{Error: msg, Details: err.Error()}
}
