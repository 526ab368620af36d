package domain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_HTTPStatus(t *testing.T) {
	cases := []struct {
		err    *DomainError
		status int
	}{
		{ErrAccountAlreadyExists("john@mail.com"), http.StatusConflict},
		{ErrAccountNotFound("john@mail.com"), http.StatusNotFound},
		{ErrStepDone(), http.StatusGone},
		{ErrExpiredCode(), http.StatusGone},
		{ErrInvalidCode("123456"), http.StatusBadRequest},
		{ErrUnauthorized(), http.StatusUnauthorized},
		{ErrEmailConfirmationPending(), http.StatusPreconditionFailed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus(), "code %s", tc.err.Code)
	}
}

func TestDomainError_UnknownVariantMapsTo500(t *testing.T) {
	e := &DomainError{Code: "SOMETHING_ELSE", Message: "?"}
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus())
}

func TestDomainError_Messages(t *testing.T) {
	assert.Equal(t, "Account 'john@mail.com' already exists.", ErrAccountAlreadyExists("john@mail.com").Error())
	assert.Equal(t, "Account 'john@mail.com' not found.", ErrAccountNotFound("john@mail.com").Error())
	assert.Equal(t, "Step done.", ErrStepDone().Error())
	assert.Equal(t, "Code expired. Please, resend the code.", ErrExpiredCode().Error())
	assert.Equal(t, "Code '000111' invalid. Please, verify the code sent.", ErrInvalidCode("000111").Error())
	assert.Equal(t, "Invalid email and/or password.", ErrUnauthorized().Error())
	assert.Equal(t, "Email confirmation pending.", ErrEmailConfirmationPending().Error())
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Awaiting Validation", StatusMessage(StatusAwaitingValidation))
	assert.Equal(t, "Email Validated", StatusMessage(StatusEmailValidated))
}
