package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/flagx"
)

// parseFlags populates cfg from the short flags listed in the package doc.
// Unknown arguments are filtered out first so other components can own them.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, "-s", "-m", "-d", "-l", "-i", "-t")

	fs := flag.NewFlagSet("moodkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	mode := string(cfg.Mode)
	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "backend base URL")
	fs.StringVar(&mode, "m", mode, "runtime mode: development | production")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	checkInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	resourcesTimeout := fs.Int("t", int(cfg.ResourcesTimeout.Seconds()), "resources request timeout (in seconds)")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.Mode = Mode(mode)
	// The duration flags count whole seconds, so they only replace values
	// from earlier layers when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*checkInterval) * time.Second
		case "t":
			cfg.ResourcesTimeout = time.Duration(*resourcesTimeout) * time.Second
		}
	})
	return nil
}
