package origin

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrNoAllowedOrigins means the allow-list is empty or unset. This is an
	// operational fault, not a client error: the policy fails closed.
	ErrNoAllowedOrigins = errors.New("no allowed origins configured")

	// ErrForbidden means the caller presented no usable origin or one that
	// is not on the allow-list.
	ErrForbidden = errors.New("origin not allowed")
)

// Policy decides whether a request's origin may submit forms. Membership is
// exact string match; there is no wildcard or suffix matching.
type Policy struct {
	allowed []string
}

// NewPolicy parses a comma-separated allow-list into a Policy. Entries are
// trimmed and empty ones discarded.
func NewPolicy(allowList string) *Policy {
	var allowed []string
	for _, entry := range strings.Split(allowList, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			allowed = append(allowed, entry)
		}
	}
	return &Policy{allowed: allowed}
}

// Configured reports whether at least one origin is allow-listed.
func (p *Policy) Configured() bool {
	return len(p.allowed) > 0
}

// Authorize decides ALLOW or DENY for the origin a request presented.
// An empty origin is denied: browser form posts always carry Origin or
// Referer, so this rejects scripted clients.
func (p *Policy) Authorize(reqOrigin string) error {
	if !p.Configured() {
		return ErrNoAllowedOrigins
	}
	if reqOrigin == "" {
		return ErrForbidden
	}
	for _, allowed := range p.allowed {
		if allowed == reqOrigin {
			return nil
		}
	}
	return ErrForbidden
}

// AllowHeader returns the value for Access-Control-Allow-Origin: the
// caller's origin when allow-listed, otherwise the first configured origin
// so preflight responses stay well-formed without ever emitting "*". The
// status code, not this header, is the authoritative access decision.
func (p *Policy) AllowHeader(reqOrigin string) string {
	if !p.Configured() {
		return ""
	}
	for _, allowed := range p.allowed {
		if allowed == reqOrigin {
			return reqOrigin
		}
	}
	return p.allowed[0]
}

// FromRequest resolves the origin a request presented: the Origin header
// when present, else the origin parsed out of Referer. Returns "" when
// neither is usable.
func FromRequest(r *http.Request) string {
	if o := r.Header.Get("Origin"); o != "" {
		return o
	}
	referer := r.Header.Get("Referer")
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
