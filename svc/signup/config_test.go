package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/svc/signup"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults match DefaultConfig", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		cfg, err := signup.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, signup.DefaultConfig(), cfg)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("SIGNUP_STORAGE_KEY", "registrations")
		t.Setenv("SIGNUP_TIMEZONE", "Europe/Paris")
		t.Setenv("SIGNUP_PASSWORD_HASH_COST", "12")

		cfg, err := signup.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "registrations", cfg.StorageKey)
		assert.Equal(t, "Europe/Paris", cfg.Timezone)
		assert.Equal(t, 12, cfg.PasswordHashCost)
	})

	t.Run("bad number is a parse error", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("SIGNUP_PASSWORD_HASH_COST", "many")

		_, err := signup.LoadConfig()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
