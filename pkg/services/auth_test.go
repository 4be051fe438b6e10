package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	auth := NewAuthService("s3cret")

	assert.NoError(t, auth.Verify("s3cret"))
	assert.ErrorIs(t, auth.Verify("s3cretx"), ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Verify("s3cre"), ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Verify(""), ErrInvalidCredentials)
}

func TestVerify_NotConfigured(t *testing.T) {
	auth := NewAuthService("")

	// With no secret set even an empty password is a server fault, never a
	// silent allow.
	assert.ErrorIs(t, auth.Verify(""), ErrAuthNotConfigured)
	assert.ErrorIs(t, auth.Verify("anything"), ErrAuthNotConfigured)
}
