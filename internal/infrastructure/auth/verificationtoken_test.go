package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationTokenService_RoundTrip(t *testing.T) {
	svc := NewVerificationTokenService("test-secret", 15*time.Minute)

	token, err := svc.Generate("e@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "e@x.com", email)
}

func TestVerificationTokenService_RejectsTamperedToken(t *testing.T) {
	svc := NewVerificationTokenService("test-secret", 15*time.Minute)

	token, err := svc.Generate("e@x.com")
	require.NoError(t, err)

	_, err = svc.Validate(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerificationTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewVerificationTokenService("secret-a", 15*time.Minute)
	verifier := NewVerificationTokenService("secret-b", 15*time.Minute)

	token, err := issuer.Generate("e@x.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerificationTokenService_RejectsExpiredToken(t *testing.T) {
	svc := NewVerificationTokenService("test-secret", -time.Minute)

	token, err := svc.Generate("e@x.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
