package mappers

import (
	"dbug/internal/domain/verification"
	"dbug/internal/infrastructure/persistence/models"
)

type OTPMapper interface {
	ToModel(otp *verification.OTP) *models.OTPModel
	ToDomain(model *models.OTPModel) (*verification.OTP, error)
}

type OTPMapperImpl struct{}

func NewOTPMapper() OTPMapper {
	return &OTPMapperImpl{}
}

func (m *OTPMapperImpl) ToModel(otp *verification.OTP) *models.OTPModel {
	return &models.OTPModel{
		UserInput:  otp.Email(),
		OTP:        otp.Code(),
		ExpiryTime: otp.ExpiresAt(),
	}
}

func (m *OTPMapperImpl) ToDomain(model *models.OTPModel) (*verification.OTP, error) {
	return verification.NewOTP(model.UserInput, model.OTP, model.ExpiryTime)
}
