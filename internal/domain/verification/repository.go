package verification

import "context"

// Repository stores at most one live code per email.
type Repository interface {
	// Upsert writes the code for its email, replacing any prior code
	// and expiry for the same key.
	Upsert(ctx context.Context, otp *OTP) error

	// GetByEmail retrieves the current code for an email.
	// Returns ErrNotFound when no code has been issued.
	GetByEmail(ctx context.Context, email string) (*OTP, error)
}
