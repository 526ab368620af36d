package mailtemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailValidation_RendersAllFields(t *testing.T) {
	body, err := EmailValidation(EmailValidationData{
		Name:  "John",
		Email: "john@mail.com",
		Code:  "123456",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "John")
	assert.Contains(t, body, "john@mail.com")
	assert.Contains(t, body, "123456")
}

func TestEmailValidation_EscapesHTML(t *testing.T) {
	body, err := EmailValidation(EmailValidationData{
		Name:  "<script>alert(1)</script>",
		Email: "john@mail.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
