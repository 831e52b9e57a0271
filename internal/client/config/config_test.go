package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.moodkeeper.app", c.ServerURL)
	assert.Equal(t, "/journal", c.JournalPath)
	assert.Equal(t, ModeProduction, c.Mode)
	assert.Equal(t, 10*time.Second, c.ResourcesTimeout)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
	assert.False(t, c.IsDevelopment())
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("bad mode", func(t *testing.T) {
		var c Config
		c.LoadDefaults()
		c.Mode = "staging"
		require.ErrorIs(t, c.Validate(), ErrInvalidMode)
	})

	t.Run("relative server url", func(t *testing.T) {
		var c Config
		c.LoadDefaults()
		c.ServerURL = "api.example.com"
		require.ErrorIs(t, c.Validate(), ErrInvalidServerURL)
	})

	t.Run("zero resources timeout", func(t *testing.T) {
		var c Config
		c.LoadDefaults()
		c.ResourcesTimeout = 0
		require.ErrorIs(t, c.Validate(), ErrInvalidDuration)
	})

	t.Run("negative check interval", func(t *testing.T) {
		var c Config
		c.LoadDefaults()
		c.OnlineCheckInterval = -time.Second
		require.ErrorIs(t, c.Validate(), ErrInvalidDuration)
	})
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_url": "https://json.example",
		"mode":       "development",
		"log_level":  "debug",
	})
	t.Setenv("MOODKEEPER_SERVER_URL", "https://env.example")

	cfg, err := LoadConfig([]string{"-c", path, "-d", "flag.db"})
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.ServerURL, "env overrides json")
	assert.Equal(t, ModeDevelopment, cfg.Mode, "json overrides defaults")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "flag.db", cfg.DBPath, "flags override everything")
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_SubSecondDurationsSurviveFlags(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"resources_timeout":     "500ms",
		"online_check_interval": "1500ms",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-s", "https://flag.example"})
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.ResourcesTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.OnlineCheckInterval)
}

func TestLoadConfig_DurationFlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"resources_timeout": "500ms"})

	cfg, err := LoadConfig([]string{"-c", path, "-t", "3"})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.ResourcesTimeout)
}

func TestLoadConfig_ZeroTimeoutRejected(t *testing.T) {
	_, err := LoadConfig([]string{"-t", "0"})
	require.ErrorIs(t, err, ErrInvalidDuration)
}

func TestLoadConfig_InvalidModeRejected(t *testing.T) {
	_, err := LoadConfig([]string{"-m", "chaos"})
	require.ErrorIs(t, err, ErrInvalidMode)
}
