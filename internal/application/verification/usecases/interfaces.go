package usecases

import "context"

type LookupEmployeeExecutor interface {
	Execute(ctx context.Context, query LookupEmployeeQuery) (*LookupEmployeeResult, error)
}

type SendOTPExecutor interface {
	Execute(ctx context.Context, cmd SendOTPCommand) (*SendOTPResult, error)
}

type VerifyOTPExecutor interface {
	Execute(ctx context.Context, cmd VerifyOTPCommand) (*VerifyOTPResult, error)
}

// EmailService delivers verification codes.
type EmailService interface {
	SendOTPEmail(to, code string) error
}

// TokenIssuer signs the proof that an email completed verification.
type TokenIssuer interface {
	Generate(email string) (string, error)
}
