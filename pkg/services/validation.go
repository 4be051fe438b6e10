package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/marcusvinicius1er/Reach-online/pkg/models"
)

// ErrInvalidEmail means the email field does not look like local@domain.tld.
var ErrInvalidEmail = errors.New("invalid email format")

// MissingFieldsError reports which required fields were absent or blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Permissive on purpose: local@domain.tld shape with no whitespace. Real
// deliverability is Airtable's problem, not the form's.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSubmission checks a decoded payload before sanitization: all
// required fields present and non-blank, then a shape check on the email.
func ValidateSubmission(payload models.SubmissionPayload) error {
	var missing []string
	for _, field := range models.RequiredFields {
		if strings.TrimSpace(payload[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if !emailPattern.MatchString(strings.TrimSpace(payload[models.FieldEmail])) {
		return ErrInvalidEmail
	}
	return nil
}
