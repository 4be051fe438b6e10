package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/marcusvinicius1er/Reach-online/pkg/models"
)

var (
	// ErrUnsupportedContentType means the body is neither JSON nor a
	// URL-encoded form. Checked before any field is inspected.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedBody means the body could not be decoded as its declared
	// content type.
	ErrMalformedBody = errors.New("malformed request body")
)

// decodePayload turns a request body into a SubmissionPayload. Only the
// known form fields are read; anything else in the body is dropped here.
func decodePayload(r *http.Request) (models.SubmissionPayload, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, ErrUnsupportedContentType
	}

	payload := models.SubmissionPayload{}

	switch mediaType {
	case "application/json":
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, ErrMalformedBody
		}
		for _, field := range models.KnownFields {
			if s, ok := raw[field].(string); ok {
				payload[field] = s
			}
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, ErrMalformedBody
		}
		for _, field := range models.KnownFields {
			payload[field] = r.PostFormValue(field)
		}
	default:
		return nil, ErrUnsupportedContentType
	}

	return payload, nil
}
