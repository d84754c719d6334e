package server

import (
	"encoding/json"
	"net/http"

	"github.com/feldmann-io/protosnap/internal/oauth"
)

// ErrorResponse is the error format for the resource API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteOAuthError writes a structured OAuth error envelope, carrying the
// request's correlation id through into the document.
func WriteOAuthError(w http.ResponseWriter, r *http.Request, oerr *oauth.Error) {
	WriteJSON(w, oerr.Status, oerr.Envelope(correlationID(w, r)))
}

// correlationID returns the id set by the correlation middleware, falling
// back to the request headers when the middleware is not in the chain.
func correlationID(w http.ResponseWriter, r *http.Request) string {
	if id := w.Header().Get("X-Correlation-ID"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Correlation-ID"); id != "" {
		return id
	}
	return r.Header.Get("X-Request-ID")
}
