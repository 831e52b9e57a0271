// Package config loads runtime configuration for the moodkeeper client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (MOODKEEPER_*), decoded with envdecode.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s string   backend base URL
//	-m string   runtime mode: development | production
//	-d string   path of the local SQLite store
//	-l string   log level: debug | info | warn | error
//	-i int      online status check interval (whole seconds; unset keeps earlier layers)
//	-t int      resources request timeout (whole seconds; unset keeps earlier layers)
//
// # JSON schema
//
// Durations accept either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "https://api.example.com",
//	  "journal_path": "/journal",
//	  "mode": "production",
//	  "db_path": "moodkeeper.db",
//	  "log_file": "moodkeeper.log",
//	  "log_level": "info",
//	  "resources_timeout": "10s",
//	  "online_check_interval": "5s",
//	  "requests_per_second": 5
//	}
package config
