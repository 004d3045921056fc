package signup

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/pkg/logger"
)

// Config holds service settings, populated from the environment.
type Config struct {
	StorageKey       string `env:"SIGNUP_STORAGE_KEY" envDefault:"userData"`
	Timezone         string `env:"SIGNUP_TIMEZONE" envDefault:"Local"`
	PasswordHashCost int    `env:"SIGNUP_PASSWORD_HASH_COST" envDefault:"10"`
	AppEnv           string `env:"APP_ENV" envDefault:"development"`
	ServiceName      string `env:"SIGNUP_SERVICE_NAME" envDefault:"signup"`
}

// DefaultConfig mirrors the envDefault tags, for callers that skip the environment.
func DefaultConfig() Config {
	return Config{
		StorageKey:       "userData",
		Timezone:         "Local",
		PasswordHashCost: 10,
		AppEnv:           logger.EnvDevelopment,
		ServiceName:      "signup",
	}
}

// LoadConfig reads Config from the environment (and .env, when present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds a logger preset for cfg.AppEnv writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(c.AppEnv, c.ServiceName),
		logger.WithOutput(w),
		LoggerOption(),
	)
}
