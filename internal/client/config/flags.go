package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/weeksoflife/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-s string   storage backend: sqlite, memory or redis
//	-d string   SQLite database path
//	-R string   Redis address (host:port)
//	-r int      statistics refresh interval in seconds
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, console
func parseFlags(cfg *Config, args []string) error {
	args = flagx.Filter(args, "s", "d", "R", "r", "l", "f")

	fs := flagx.NewFlagSet("weeks")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite, memory, redis)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "R", cfg.RedisAddr, "Redis address")
	refresh := fs.Int("r", int(cfg.RefreshInterval.Seconds()), "statistics refresh interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json, console)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	cfg.RefreshInterval = time.Duration(*refresh) * time.Second
	return nil
}
