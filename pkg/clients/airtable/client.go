package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// ErrNotConfigured means the base ID, table or API key is missing. This is
// an operational fault and must never be silently degraded.
var ErrNotConfigured = errors.New("airtable credentials not configured")

// UpstreamError is a non-success response from the Airtable API. Message
// holds Airtable's own error text when the body could be parsed.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("airtable API error (status %d): %s", e.StatusCode, e.Message)
}

// Client defines the interface for interacting with Airtable API
type Client interface {
	CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error
}

type clientImpl struct {
	apiKey     string
	baseID     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Airtable client
func NewClient(apiKey, baseID string) Client {
	return NewClientWithBaseURL(apiKey, baseID, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a non-default API URL,
// used by tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseID, baseURL string) Client {
	return &clientImpl{
		apiKey:  apiKey,
		baseID:  baseID,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *clientImpl) CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error {
	if c.apiKey == "" || c.baseID == "" || table == "" {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))

	// Format data for Airtable API
	payload := map[string]interface{}{
		"records": []map[string]interface{}{
			{
				"fields": fields,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication and content type headers
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error creating Airtable record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    parseErrorMessage(body, resp.StatusCode),
		}
	}

	return nil
}

// parseErrorMessage pulls Airtable's error text out of a failure body.
// Airtable returns either {"error": {"type", "message"}} or {"error": "..."}.
func parseErrorMessage(body []byte, status int) string {
	var structured struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Error.Message != "" {
		return structured.Error.Message
	}

	var plain struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &plain); err == nil && plain.Error != "" {
		return plain.Error
	}

	return fmt.Sprintf("upstream failure (status %d)", status)
}
