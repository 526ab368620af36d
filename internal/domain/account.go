package domain

import (
	"strings"
	"time"
)

// Account status lifecycle. The only legal transition is
// AWAITING_VALIDATION -> EMAIL_VALIDATED, performed by the validation flow.
const (
	StatusAwaitingValidation = "AWAITING_VALIDATION"
	StatusEmailValidated     = "EMAIL_VALIDATED"
)

// StatusMessage renders a status constant as a human-readable label,
// e.g. "AWAITING_VALIDATION" -> "Awaiting Validation".
func StatusMessage(status string) string {
	parts := strings.Split(status, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = p[:1] + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

// Account is an immutable value record. Status transitions are expressed by
// persisting a replacement instance, never by mutating a stored one.
type Account struct {
	ID           string    `json:"id" dynamodbav:"account_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Email        string    `json:"email" dynamodbav:"email"`
	Phone        string    `json:"phone" dynamodbav:"phone"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Status       string    `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// WithStatus returns a copy of the account carrying the new status.
func (a Account) WithStatus(status string, now time.Time) Account {
	a.Status = status
	a.UpdatedAt = now
	return a
}

type RegisterAccountRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ValidateCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type ResendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
