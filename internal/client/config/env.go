package config

import (
	"errors"

	"github.com/joeshaw/envdecode"
)

type envConfig struct {
	ServerURL   string `env:"MOODKEEPER_SERVER_URL"`
	JournalPath string `env:"MOODKEEPER_JOURNAL_PATH"`
	Mode        string `env:"MOODKEEPER_MODE"`
	DBPath      string `env:"MOODKEEPER_DB_PATH"`
	LogLevel    string `env:"MOODKEEPER_LOG_LEVEL"`
}

func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return err
	}

	if ec.ServerURL != "" {
		cfg.ServerURL = ec.ServerURL
	}
	if ec.JournalPath != "" {
		cfg.JournalPath = ec.JournalPath
	}
	if ec.Mode != "" {
		cfg.Mode = Mode(ec.Mode)
	}
	if ec.DBPath != "" {
		cfg.DBPath = ec.DBPath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	return nil
}
