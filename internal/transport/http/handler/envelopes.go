package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JulioZittei/guestify-app-server/internal/domain"
)

// serverErrorMessage is the only detail exposed for infrastructure faults.
const serverErrorMessage = "An unexpected error occurred on the server"

// ErrorEnvelope is the uniform error response body.
type ErrorEnvelope struct {
	Path    string `json:"path"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageEnvelope wraps plain confirmation responses.
type MessageEnvelope struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// RegisterEnvelope is the 202 response to a registration request.
type RegisterEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// AccountInfoEnvelope is the authenticated account-info response.
type AccountInfoEnvelope struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps a domain error variant to its transport status.
func writeDomainError(w http.ResponseWriter, r *http.Request, derr *domain.DomainError) {
	status := derr.HTTPStatus()
	writeJSON(w, status, ErrorEnvelope{
		Path:    r.URL.Path,
		Code:    status,
		Error:   http.StatusText(status),
		Message: derr.Message,
	})
}

// writeServerError logs the fault and responds with a generic 500: no
// infrastructure detail leaks to the client.
func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal error", "path", r.URL.Path, "err", err)
	writeJSON(w, http.StatusInternalServerError, ErrorEnvelope{
		Path:    r.URL.Path,
		Code:    http.StatusInternalServerError,
		Error:   http.StatusText(http.StatusInternalServerError),
		Message: serverErrorMessage,
	})
}

// writeBadRequest responds 400 with the supplied validation message.
func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorEnvelope{
		Path:    r.URL.Path,
		Code:    http.StatusBadRequest,
		Error:   http.StatusText(http.StatusBadRequest),
		Message: msg,
	})
}
