package mailtemplate

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// EmailValidationData fills the registration confirmation template.
type EmailValidationData struct {
	Name  string
	Email string
	Code  string
}

// EmailValidation renders the verification-code email body.
func EmailValidation(data EmailValidationData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "email_validation.html", data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
