package sanitize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marcusvinicius1er/Reach-online/pkg/models"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  Jo Ann  ", "Jo Ann"},
		{"strips angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"empty input", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"plain value untouched", "jo@x.com", "jo@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestClean_Truncates(t *testing.T) {
	long := strings.Repeat("a", MaxFieldLength+500)
	got := Clean(long)
	assert.Len(t, got, MaxFieldLength)
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"  <b>Hello</b>  ",
		strings.Repeat("<x>", 600),
		"plain",
		"",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once))
		assert.NotContains(t, once, "<")
		assert.NotContains(t, once, ">")
	}
}

func TestNewRecord_SanitizesEveryField(t *testing.T) {
	payload := models.SubmissionPayload{
		models.FieldFullName: "  <Jo> Ann ",
		models.FieldEmail:    " jo@x.com ",
		models.FieldWhatsApp: "+1555",
		models.FieldGoals:    "<grow>",
	}

	record := NewRecord(payload, "https://reach.example.com", time.Now())

	assert.Equal(t, "Jo Ann", record.Get(models.FieldFullName))
	assert.Equal(t, "jo@x.com", record.Get(models.FieldEmail))
	assert.Equal(t, "grow", record.Get(models.FieldGoals))
	assert.Equal(t, "", record.Get(models.FieldLocation))
	assert.Equal(t, "https://reach.example.com", record.Origin())
}

func TestNewRecord_ServerAssignsTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	record := NewRecord(models.SubmissionPayload{}, "", now)
	assert.Equal(t, "2026-08-28T12:00:00Z", record.SubmittedAt())
}

func TestNewRecord_KeepsClientTimestamp(t *testing.T) {
	payload := models.SubmissionPayload{
		models.FieldSubmittedAt: "2026-01-02T03:04:05Z",
	}

	record := NewRecord(payload, "", time.Now())
	assert.Equal(t, "2026-01-02T03:04:05Z", record.SubmittedAt())
}
