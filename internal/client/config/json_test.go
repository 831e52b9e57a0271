package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	t.Run("loads all fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_url":            "https://www.example:9000",
			"journal_path":          "/api/v1/journal",
			"mode":                  "development",
			"db_path":               "x.db",
			"log_file":              "x.log",
			"log_level":             "warn",
			"resources_timeout":     "3s",
			"online_check_interval": "1m",
			"requests_per_second":   2.5,
		})

		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "https://www.example:9000", cfg.ServerURL)
		assert.Equal(t, "/api/v1/journal", cfg.JournalPath)
		assert.Equal(t, ModeDevelopment, cfg.Mode)
		assert.Equal(t, "x.db", cfg.DBPath)
		assert.Equal(t, "x.log", cfg.LogFile)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 3*time.Second, cfg.ResourcesTimeout)
		assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
		assert.Equal(t, 2.5, cfg.RequestsPerSecond)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"log_level": "error"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", path}))

		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "https://api.moodkeeper.app", cfg.ServerURL)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{ServerURL: "https://defaults"}
		require.NoError(t, parseJSON(cfg, nil))
		assert.Equal(t, "https://defaults", cfg.ServerURL)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJSON(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}
