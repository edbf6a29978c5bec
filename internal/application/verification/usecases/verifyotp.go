package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"dbug/internal/domain/verification"
	"dbug/internal/shared/errors"
	"dbug/internal/shared/logger"
)

type VerifyOTPCommand struct {
	Email string
	Code  string
}

type VerifyOTPResult struct {
	Email string
	Token string
}

type VerifyOTPUseCase struct {
	otpRepo     verification.Repository
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewVerifyOTPUseCase(
	otpRepo verification.Repository,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *VerifyOTPUseCase {
	return &VerifyOTPUseCase{
		otpRepo:     otpRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Execute checks the presented code. The check is a read: the code
// stays valid until expiry or replacement, so re-verifying with the
// same code succeeds again. On success a signed verification token is
// issued for the submit step.
func (uc *VerifyOTPUseCase) Execute(ctx context.Context, cmd VerifyOTPCommand) (*VerifyOTPResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Code) == 0 {
		return nil, errors.NewValidationError("Email and OTP required")
	}

	otp, err := uc.otpRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if stderrors.Is(err, verification.ErrNotFound) {
			return nil, errors.NewNotFoundError("OTP not found")
		}
		uc.logger.Errorw("failed to load otp", "error", err)
		return nil, errors.NewInternalError("Database error")
	}

	if err := otp.Verify(cmd.Code, time.Now()); err != nil {
		switch {
		case stderrors.Is(err, verification.ErrCodeMismatch):
			uc.logger.Warnw("otp mismatch", "email", cmd.Email)
			return nil, errors.NewInvalidCodeError("Invalid OTP")
		case stderrors.Is(err, verification.ErrExpired):
			uc.logger.Warnw("otp expired", "email", cmd.Email)
			return nil, errors.NewExpiredError("OTP expired")
		default:
			return nil, errors.NewInternalError("Failed to verify OTP")
		}
	}

	token, err := uc.tokenIssuer.Generate(cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to issue verification token", "error", err)
		return nil, errors.NewInternalError("Failed to verify OTP")
	}

	return &VerifyOTPResult{
		Email: cmd.Email,
		Token: token,
	}, nil
}
