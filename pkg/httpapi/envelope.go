// Package httpapi holds the JSON envelope hellofetch servers answer with.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Error is the failure half of an Envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope wraps every response. Data is what clients decode on success.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// WriteJSON writes env with status.
func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// WriteOK writes a success response.
func WriteOK(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Envelope{OK: true, Data: data})
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, Envelope{Error: &Error{Code: code, Message: message}})
}

const (
	ErrInvalidRequest = "invalid_request"
	ErrNotFound       = "not_found"
	ErrUnavailable    = "unavailable"
)

// NormalizePath trims p and gives it a leading slash. Empty stays empty.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
