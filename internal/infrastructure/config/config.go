package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "dbug/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	OTP          sharedConfig.OTPConfig          `mapstructure:"otp"`
	Verification sharedConfig.VerificationConfig `mapstructure:"verification"`
	Ticket       sharedConfig.TicketConfig       `mapstructure:"ticket"`
	Upload       sharedConfig.UploadConfig       `mapstructure:"upload"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error; defaults plus DBUG_-prefixed
// environment variables are enough to run.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")

	viper.SetEnvPrefix("DBUG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 4004)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "dbug_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Email defaults
	viper.SetDefault("email.smtp_host", "")
	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("email.from_address", "support@dolluzcorp.in")
	viper.SetDefault("email.from_name", "dbug Support")
	viper.SetDefault("email.support_email", "admin@dolluzcorp.in")

	// OTP defaults
	viper.SetDefault("otp.expiry_minutes", 5)

	// Verification token defaults
	viper.SetDefault("verification.token_secret", "change-me-in-production")
	viper.SetDefault("verification.token_exp_minutes", 30)

	// Ticket defaults
	viper.SetDefault("ticket.id_prefix", "DZDXT")
	viper.SetDefault("ticket.description_min_len", 300)
	viper.SetDefault("ticket.description_max_len", 5000)

	// Upload defaults
	viper.SetDefault("upload.dir", "tickets_file_uploads")
	viper.SetDefault("upload.max_file_size_mb", 50)
	viper.SetDefault("upload.public_path_prefix", "/tickets_file_uploads")
}
