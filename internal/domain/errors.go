package domain

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies a domain error variant. Codes are stable and safe to
// expose to clients.
type ErrorCode string

const (
	CodeAccountAlreadyExists     ErrorCode = "ACCOUNT_ALREADY_EXISTS"
	CodeAccountNotFound          ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeStepDone                 ErrorCode = "STEP_DONE"
	CodeExpiredCode              ErrorCode = "EXPIRED_CODE"
	CodeInvalidCode              ErrorCode = "INVALID_CODE"
	CodeUnauthorized             ErrorCode = "UNAUTHORIZED"
	CodeEmailConfirmationPending ErrorCode = "EMAIL_CONFIRMATION_PENDING"
)

// DomainError is an expected, enumerable failure outcome. It travels inside
// a Result as data; infrastructure faults use plain error returns instead.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// httpStatusByCode maps each variant to its transport status code.
var httpStatusByCode = map[ErrorCode]int{
	CodeAccountAlreadyExists:     http.StatusConflict,
	CodeAccountNotFound:          http.StatusNotFound,
	CodeStepDone:                 http.StatusGone,
	CodeExpiredCode:              http.StatusGone,
	CodeInvalidCode:              http.StatusBadRequest,
	CodeUnauthorized:             http.StatusUnauthorized,
	CodeEmailConfirmationPending: http.StatusPreconditionFailed,
}

// HTTPStatus returns the transport status for this error variant.
// Unknown variants map to 500.
func (e *DomainError) HTTPStatus() int {
	if status, ok := httpStatusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func ErrAccountAlreadyExists(email string) *DomainError {
	return &DomainError{
		Code:    CodeAccountAlreadyExists,
		Message: fmt.Sprintf("Account '%s' already exists.", email),
	}
}

func ErrAccountNotFound(email string) *DomainError {
	return &DomainError{
		Code:    CodeAccountNotFound,
		Message: fmt.Sprintf("Account '%s' not found.", email),
	}
}

func ErrStepDone() *DomainError {
	return &DomainError{Code: CodeStepDone, Message: "Step done."}
}

func ErrExpiredCode() *DomainError {
	return &DomainError{Code: CodeExpiredCode, Message: "Code expired. Please, resend the code."}
}

func ErrInvalidCode(code string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidCode,
		Message: fmt.Sprintf("Code '%s' invalid. Please, verify the code sent.", code),
	}
}

func ErrUnauthorized() *DomainError {
	return &DomainError{Code: CodeUnauthorized, Message: "Invalid email and/or password."}
}

func ErrEmailConfirmationPending() *DomainError {
	return &DomainError{Code: CodeEmailConfirmationPending, Message: "Email confirmation pending."}
}
