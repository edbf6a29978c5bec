package models

import "time"

type OTPModel struct {
	UserInput  string    `gorm:"column:user_input;primaryKey;size:255"`
	OTP        string    `gorm:"column:otp;size:6;not null"`
	ExpiryTime time.Time `gorm:"column:expiry_time;not null"`
}

func (OTPModel) TableName() string {
	return "otp_storage"
}
