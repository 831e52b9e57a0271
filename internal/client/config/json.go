package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/moodkeeper/internal/flagx"
	"github.com/dmitrijs2005/moodkeeper/internal/timex"
)

// jsonConfig is used only for unmarshalling. Pointer fields distinguish
// "absent" from "zero" so a partial file does not wipe defaults.
type jsonConfig struct {
	ServerURL           *string         `json:"server_url"`
	JournalPath         *string         `json:"journal_path"`
	Mode                *string         `json:"mode"`
	DBPath              *string         `json:"db_path"`
	LogFile             *string         `json:"log_file"`
	LogLevel            *string         `json:"log_level"`
	ResourcesTimeout    *timex.Duration `json:"resources_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RequestsPerSecond   *float64        `json:"requests_per_second"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.JournalPath != nil {
		cfg.JournalPath = *jc.JournalPath
	}
	if jc.Mode != nil {
		cfg.Mode = Mode(*jc.Mode)
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.ResourcesTimeout != nil {
		cfg.ResourcesTimeout = jc.ResourcesTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	return nil
}
