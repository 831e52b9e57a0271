package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		start    Config
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-s", "https://127.0.0.1:9090", "-m", "development", "-d", "a.db", "-l", "debug", "-i", "10", "-t", "4"},
			expected: &Config{
				ServerURL:           "https://127.0.0.1:9090",
				Mode:                ModeDevelopment,
				DBPath:              "a.db",
				LogLevel:            "debug",
				OnlineCheckInterval: 10 * time.Second,
				ResourcesTimeout:    4 * time.Second,
			},
		},
		{
			name: "unset duration flags keep earlier values",
			start: Config{
				OnlineCheckInterval: 1500 * time.Millisecond,
				ResourcesTimeout:    500 * time.Millisecond,
			},
			args: []string{"-s", "https://x"},
			expected: &Config{
				ServerURL:           "https://x",
				OnlineCheckInterval: 1500 * time.Millisecond,
				ResourcesTimeout:    500 * time.Millisecond,
			},
		},
		{
			name:    "bad interval",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "cfg.json", "-s", "https://x"},
			expected: &Config{
				ServerURL: "https://x",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &tt.start
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
