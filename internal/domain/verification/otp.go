// Package verification models the email one-time-passcode that gates
// access to the ticket intake form.
package verification

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	// ErrNotFound is returned when no code has been issued for an email.
	ErrNotFound = errors.New("otp not found")

	// ErrCodeMismatch is returned when the presented code differs from
	// the stored one.
	ErrCodeMismatch = errors.New("otp code mismatch")

	// ErrExpired is returned when the stored code is past its expiry.
	ErrExpired = errors.New("otp expired")
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

// OTP is the single live code for an email address. Issuing a new code
// for the same email replaces the previous one; no history is kept.
type OTP struct {
	email     string
	code      string
	expiresAt time.Time
}

func NewOTP(email, code string, expiresAt time.Time) (*OTP, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !codePattern.MatchString(code) {
		return nil, fmt.Errorf("code must be exactly 6 digits")
	}
	if expiresAt.IsZero() {
		return nil, fmt.Errorf("expiry time is required")
	}

	return &OTP{
		email:     email,
		code:      code,
		expiresAt: expiresAt,
	}, nil
}

func (o *OTP) Email() string {
	return o.email
}

func (o *OTP) Code() string {
	return o.code
}

func (o *OTP) ExpiresAt() time.Time {
	return o.expiresAt
}

func (o *OTP) IsExpired(now time.Time) bool {
	return now.After(o.expiresAt)
}

// Verify checks the presented code against the stored one. The code is
// compared before expiry so a wrong code reports ErrCodeMismatch even
// when the record is stale. Verification does not consume the code; it
// stays valid until expiry or replacement.
func (o *OTP) Verify(code string, now time.Time) error {
	if o.code != code {
		return ErrCodeMismatch
	}
	if o.IsExpired(now) {
		return ErrExpired
	}
	return nil
}
