package models

// SubmissionPayload is the raw, untrusted form data decoded from the
// request body. Values here have not been sanitized and must never be
// forwarded upstream directly.
type SubmissionPayload map[string]string

// Form field names accepted from the landing page.
const (
	FieldFullName    = "fullName"
	FieldEmail       = "email"
	FieldWhatsApp    = "whatsapp"
	FieldLocation    = "location"
	FieldGoals       = "goals"
	FieldSubmittedAt = "submittedAt"
	FieldSourcePage  = "sourcePage"
)

// KnownFields lists every field the submission endpoint will read from a
// request body, required first.
var KnownFields = []string{
	FieldFullName,
	FieldEmail,
	FieldWhatsApp,
	FieldLocation,
	FieldGoals,
	FieldSubmittedAt,
	FieldSourcePage,
}

// RequiredFields must be present and non-empty after trimming.
var RequiredFields = []string{FieldFullName, FieldEmail, FieldWhatsApp}

// AdminAuthRequest is the body of an admin password check.
type AdminAuthRequest struct {
	Password string `json:"password"`
}

// SuccessResponse is the body returned for accepted submissions and
// successful admin authentication.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body returned for every rejected request. Missing
// is only populated for required-field validation failures.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}
