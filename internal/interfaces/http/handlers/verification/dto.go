package verification

import (
	"dbug/internal/application/verification/usecases"
)

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (r *SendOTPRequest) ToCommand() usecases.SendOTPCommand {
	return usecases.SendOTPCommand{Email: r.Email}
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

func (r *VerifyOTPRequest) ToCommand() usecases.VerifyOTPCommand {
	return usecases.VerifyOTPCommand{Email: r.Email, Code: r.OTP}
}

type VerifyOTPResponse struct {
	Verified bool   `json:"verified"`
	Token    string `json:"verification_token"`
}
