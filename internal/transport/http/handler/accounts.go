package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JulioZittei/guestify-app-server/internal/application/account"
	"github.com/JulioZittei/guestify-app-server/internal/application/verification"
	"github.com/JulioZittei/guestify-app-server/internal/domain"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/validate"
	"github.com/JulioZittei/guestify-app-server/internal/transport/http/middleware"
)

// AccountHandler handles registration, code validation/resend and account info.
type AccountHandler struct {
	accountSvc      account.Service
	verificationSvc verification.Service
}

func NewAccountHandler(accountSvc account.Service, verificationSvc verification.Service) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc, verificationSvc: verificationSvc}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	res, err := h.accountSvc.Register(r.Context(), req)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if res.IsFailure() {
		writeDomainError(w, r, res.Err())
		return
	}

	created := res.Value()
	writeJSON(w, http.StatusAccepted, RegisterEnvelope{
		Status: created.Status,
		Message: fmt.Sprintf("A verification code was sent to the email '%s'. "+
			"Please validate the code to confirm your registration.", created.Email),
		URL: requestURL(r) + "/confirm",
	})
}

func (h *AccountHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req domain.ValidateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	res, err := h.verificationSvc.Validate(r.Context(), req.Email, req.Code)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if res.IsFailure() {
		writeDomainError(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, MessageEnvelope{
		Status:  domain.StatusEmailValidated,
		Message: "Email validated successfully.",
	})
}

func (h *AccountHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req domain.ResendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	res, err := h.verificationSvc.Resend(r.Context(), req.Email)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if res.IsFailure() {
		writeDomainError(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, MessageEnvelope{
		Message: fmt.Sprintf("A verification code was sent to the email '%s'.", req.Email),
	})
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorEnvelope{
			Path:    r.URL.Path,
			Code:    http.StatusUnauthorized,
			Error:   http.StatusText(http.StatusUnauthorized),
			Message: "unauthorized",
		})
		return
	}

	res, err := h.accountSvc.GetInfo(r.Context(), claims.Subject)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if res.IsFailure() {
		writeDomainError(w, r, res.Err())
		return
	}

	a := res.Value()
	writeJSON(w, http.StatusOK, AccountInfoEnvelope{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Phone:  a.Phone,
		Status: a.Status,
	})
}

// requestURL rebuilds the absolute URL of the current request.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.Path)
}
