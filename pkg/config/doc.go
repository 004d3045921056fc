// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//     Load reads the default .env once, ignoring a missing file.
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags and caches the result per type, so repeated
//     calls are served from memory.
//   - MustLoad panics on failure, for configuration the process cannot start without.
//   - ResetCache clears cached values, mainly for tests that change the environment.
//
// Usage:
//
//	type Config struct {
//	    StorageKey string `env:"SIGNUP_STORAGE_KEY" envDefault:"userData"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors wrap the sentinels in errors.go and can be matched with errors.Is.
package config
