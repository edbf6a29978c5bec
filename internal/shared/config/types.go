package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	SupportEmail string `mapstructure:"support_email"`
}

type OTPConfig struct {
	ExpiryMinutes int `mapstructure:"expiry_minutes"`
}

func (o *OTPConfig) Expiry() time.Duration {
	return time.Duration(o.ExpiryMinutes) * time.Minute
}

type VerificationConfig struct {
	TokenSecret     string `mapstructure:"token_secret"`
	TokenExpMinutes int    `mapstructure:"token_exp_minutes"`
}

func (v *VerificationConfig) TokenExpiry() time.Duration {
	return time.Duration(v.TokenExpMinutes) * time.Minute
}

type TicketConfig struct {
	IDPrefix          string `mapstructure:"id_prefix"`
	DescriptionMinLen int    `mapstructure:"description_min_len"`
	DescriptionMaxLen int    `mapstructure:"description_max_len"`
}

type UploadConfig struct {
	Dir              string `mapstructure:"dir"`
	MaxFileSizeMB    int    `mapstructure:"max_file_size_mb"`
	PublicPathPrefix string `mapstructure:"public_path_prefix"`
}

func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return int64(u.MaxFileSizeMB) * 1024 * 1024
}
