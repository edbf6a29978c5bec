package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbug/internal/domain/verification"
	"dbug/internal/shared/errors"
)

func storedOTP(t *testing.T, email, code string, expiresAt time.Time) *verification.OTP {
	t.Helper()
	otp, err := verification.NewOTP(email, code, expiresAt)
	require.NoError(t, err)
	return otp
}

func TestVerifyOTPUseCase_Execute(t *testing.T) {
	const email = "jane.doe@dolluzcorp.in"
	live := time.Now().Add(5 * time.Minute)
	stale := time.Now().Add(-time.Minute)

	tests := []struct {
		name        string
		email       string
		code        string
		repoFunc    func(ctx context.Context, email string) (*verification.OTP, error)
		issueFunc   func(email string) (string, error)
		wantErrType errors.ErrorType
	}{
		{
			name:  "matching live code",
			email: email,
			code:  "123456",
			repoFunc: func(ctx context.Context, em string) (*verification.OTP, error) {
				return storedOTP(t, email, "123456", live), nil
			},
			issueFunc: func(em string) (string, error) { return "signed-token", nil },
		},
		{
			name:        "missing fields",
			email:       email,
			code:        "",
			wantErrType: errors.ErrorTypeValidation,
		},
		{
			name:  "no code on record",
			email: email,
			code:  "123456",
			repoFunc: func(ctx context.Context, em string) (*verification.OTP, error) {
				return nil, verification.ErrNotFound
			},
			wantErrType: errors.ErrorTypeNotFound,
		},
		{
			name:  "wrong code",
			email: email,
			code:  "000000",
			repoFunc: func(ctx context.Context, em string) (*verification.OTP, error) {
				return storedOTP(t, email, "123456", live), nil
			},
			wantErrType: errors.ErrorTypeInvalidCode,
		},
		{
			name:  "wrong code after expiry still reads as invalid",
			email: email,
			code:  "000000",
			repoFunc: func(ctx context.Context, em string) (*verification.OTP, error) {
				return storedOTP(t, email, "123456", stale), nil
			},
			wantErrType: errors.ErrorTypeInvalidCode,
		},
		{
			name:  "right code after expiry",
			email: email,
			code:  "123456",
			repoFunc: func(ctx context.Context, em string) (*verification.OTP, error) {
				return storedOTP(t, email, "123456", stale), nil
			},
			wantErrType: errors.ErrorTypeExpired,
		},
		{
			name:  "token issuance failure",
			email: email,
			code:  "123456",
			repoFunc: func(ctx context.Context, em string) (*verification.OTP, error) {
				return storedOTP(t, email, "123456", live), nil
			},
			issueFunc:   func(em string) (string, error) { return "", assert.AnError },
			wantErrType: errors.ErrorTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewVerifyOTPUseCase(
				&mockOTPRepository{getByEmailFunc: tt.repoFunc},
				&mockTokenIssuer{generateFunc: tt.issueFunc},
				&mockLogger{},
			)

			result, err := uc.Execute(context.Background(), VerifyOTPCommand{Email: tt.email, Code: tt.code})

			if tt.wantErrType != "" {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantErrType, appErr.Type)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, email, result.Email)
			assert.Equal(t, "signed-token", result.Token)
		})
	}
}

func TestVerifyOTPUseCase_CodeStaysValidAfterVerify(t *testing.T) {
	const email = "jane.doe@dolluzcorp.in"
	otp := storedOTP(t, email, "123456", time.Now().Add(5*time.Minute))

	uc := NewVerifyOTPUseCase(
		&mockOTPRepository{getByEmailFunc: func(ctx context.Context, em string) (*verification.OTP, error) {
			return otp, nil
		}},
		&mockTokenIssuer{generateFunc: func(em string) (string, error) { return "signed-token", nil }},
		&mockLogger{},
	)

	for i := 0; i < 2; i++ {
		result, err := uc.Execute(context.Background(), VerifyOTPCommand{Email: email, Code: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
	}
}
