package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"dbug/internal/domain/employee"
	"dbug/internal/domain/verification"
	"dbug/internal/shared/errors"
	"dbug/internal/shared/logger"
)

type SendOTPCommand struct {
	Email string
}

type SendOTPResult struct {
	Email     string
	ExpiresAt time.Time
}

type SendOTPUseCase struct {
	employeeRepo employee.Repository
	otpRepo      verification.Repository
	codeGen      verification.CodeGenerator
	emailService EmailService
	otpExpiry    time.Duration
	logger       logger.Interface
}

func NewSendOTPUseCase(
	employeeRepo employee.Repository,
	otpRepo verification.Repository,
	codeGen verification.CodeGenerator,
	emailService EmailService,
	otpExpiry time.Duration,
	logger logger.Interface,
) *SendOTPUseCase {
	return &SendOTPUseCase{
		employeeRepo: employeeRepo,
		otpRepo:      otpRepo,
		codeGen:      codeGen,
		emailService: emailService,
		otpExpiry:    otpExpiry,
		logger:       logger,
	}
}

// Execute issues a fresh code for the email, replacing any live one,
// and delivers it. The caller only sees success when both the store
// write and the delivery succeed; either failure collapses into the
// same generic error so internals never leak.
func (uc *SendOTPUseCase) Execute(ctx context.Context, cmd SendOTPCommand) (*SendOTPResult, error) {
	if len(cmd.Email) == 0 {
		return nil, errors.NewValidationError("Email required")
	}

	if _, err := uc.employeeRepo.GetByEmail(ctx, cmd.Email); err != nil {
		if stderrors.Is(err, employee.ErrNotFound) {
			return nil, errors.NewNotFoundError("Employee not found")
		}
		uc.logger.Errorw("failed to look up employee before issuing otp", "error", err)
		return nil, errors.NewInternalError("Database error")
	}

	code, err := uc.codeGen.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate otp code", "error", err)
		return nil, errors.NewInternalError("Failed to generate OTP or send email")
	}

	expiresAt := time.Now().Add(uc.otpExpiry)
	otp, err := verification.NewOTP(cmd.Email, code, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to build otp", "error", err)
		return nil, errors.NewInternalError("Failed to generate OTP or send email")
	}

	if err := uc.otpRepo.Upsert(ctx, otp); err != nil {
		uc.logger.Errorw("failed to store otp", "error", err)
		return nil, errors.NewInternalError("Failed to generate OTP or send email")
	}

	if err := uc.emailService.SendOTPEmail(cmd.Email, code); err != nil {
		uc.logger.Errorw("failed to deliver otp email", "error", err, "email", cmd.Email)
		return nil, errors.NewInternalError("Failed to generate OTP or send email")
	}

	uc.logger.Infow("otp issued", "email", cmd.Email, "expires_at", expiresAt)

	return &SendOTPResult{
		Email:     cmd.Email,
		ExpiresAt: expiresAt,
	}, nil
}
