package sanitize

import (
	"strings"
	"time"

	"github.com/marcusvinicius1er/Reach-online/pkg/models"
)

// MaxFieldLength caps every sanitized field value.
const MaxFieldLength = 1000

// Clean trims surrounding whitespace, strips literal angle brackets and
// truncates the value to MaxFieldLength. It is idempotent and operates on
// one field at a time.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	if len(s) > MaxFieldLength {
		s = s[:MaxFieldLength]
	}
	return s
}

// Record is a sanitized submission. It can only be built through NewRecord,
// so anything holding a Record knows every value already passed Clean.
type Record struct {
	values      map[string]string
	origin      string
	submittedAt string
}

// NewRecord sanitizes every known field of the payload and stamps the
// record with the caller's origin. When the client did not send its own
// submission timestamp the server's clock is used.
func NewRecord(payload models.SubmissionPayload, origin string, now time.Time) Record {
	values := make(map[string]string, len(models.KnownFields))
	for _, field := range models.KnownFields {
		values[field] = Clean(payload[field])
	}

	submittedAt := values[models.FieldSubmittedAt]
	if submittedAt == "" {
		submittedAt = now.UTC().Format(time.RFC3339)
	}

	return Record{
		values:      values,
		origin:      Clean(origin),
		submittedAt: submittedAt,
	}
}

// Get returns the sanitized value for a field, or "" if the client never
// sent it.
func (r Record) Get(field string) string {
	return r.values[field]
}

// Origin returns the sanitized origin the submission arrived from.
func (r Record) Origin() string {
	return r.origin
}

// SubmittedAt returns the client-supplied or server-assigned timestamp.
func (r Record) SubmittedAt() string {
	return r.submittedAt
}
