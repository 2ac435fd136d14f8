// Package respond implements the uniform response wrapper used by every
// endpoint.
package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire shape of every response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(w http.ResponseWriter, code int, message string, data any) {
	write(w, code, Envelope{Status: "success", Message: message, Data: data})
}

func Error(w http.ResponseWriter, code int, message string) {
	write(w, code, Envelope{Status: "error", Message: message})
}

func write(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(env)
}
