package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JulioZittei/guestify-app-server/internal/application/auth"
	"github.com/JulioZittei/guestify-app-server/internal/domain"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/validate"
)

// AuthHandler handles credential authentication.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req domain.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	res, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if res.IsFailure() {
		writeDomainError(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, res.Value())
}
