package services

import (
	"crypto/subtle"
	"errors"
)

var (
	// ErrAuthNotConfigured means no admin password is set. Surfaced as a
	// server fault so a missing secret can never mean "always allow".
	ErrAuthNotConfigured = errors.New("admin password not configured")

	// ErrInvalidCredentials means the supplied password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService verifies the shared admin secret. No token or session is
// issued on success; every admin action re-presents the password.
type AuthService struct {
	secret string
}

// NewAuthService creates an authenticator for the configured secret.
func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: secret}
}

// Verify compares the supplied password against the configured secret.
// ConstantTimeCompare may short-circuit on length but compares every byte
// position otherwise, so timing does not reveal the first mismatch.
func (s *AuthService) Verify(password string) error {
	if s.secret == "" {
		return ErrAuthNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(s.secret), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
