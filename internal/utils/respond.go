package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the JSON shape every failed request returns.
// The admin UI renders Error verbatim; Details carries the underlying cause.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondJSON writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError writes the error envelope. err may be nil.
func RespondError(w http.ResponseWriter, status int, msg string, err error) {
	env := ErrorEnvelope{Error: msg}
	if err != nil {
		env.Details = err.Error()
	}
	RespondJSON(w, status, env)
}
