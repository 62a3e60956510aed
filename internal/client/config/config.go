package config

import (
	"context"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/dmitrijs2005/weeksoflife/internal/client/storage"
	"github.com/dmitrijs2005/weeksoflife/internal/logging"
)

// Config holds runtime settings for the weeksoflife CLI.
//
// Units: RefreshInterval is a time.Duration (e.g., time.Hour).
type Config struct {
	Storage      string `env:"WEEKS_STORAGE, overwrite"`
	DatabasePath string `env:"WEEKS_DB_PATH, overwrite"`

	RedisAddr   string `env:"WEEKS_REDIS_ADDR, overwrite"`
	RedisDB     int    `env:"WEEKS_REDIS_DB, overwrite"`
	RedisPrefix string `env:"WEEKS_REDIS_PREFIX, overwrite"`

	RefreshInterval time.Duration `env:"WEEKS_REFRESH_INTERVAL, overwrite"`

	LogLevel  string `env:"WEEKS_LOG_LEVEL, overwrite"`
	LogFormat string `env:"WEEKS_LOG_FORMAT, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = storage.KindSQLite
	c.DatabasePath = "weeks.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.RedisPrefix = "weeks:"
	c.RefreshInterval = time.Hour
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and os.Args, in that order, later sources taking precedence. It panics on
// malformed input.
func LoadConfig(ctx context.Context) *Config {
	cfg, err := Load(ctx, os.Args[1:], envconfig.OsLookuper())
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load is LoadConfig with explicit arguments and environment.
func Load(ctx context.Context, args []string, env envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, env); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StorageOptions maps the storage settings onto storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Kind:        c.Storage,
		Path:        c.DatabasePath,
		RedisAddr:   c.RedisAddr,
		RedisDB:     c.RedisDB,
		RedisPrefix: c.RedisPrefix,
	}
}

// LoggingOptions maps the log settings onto logging.Options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, Format: c.LogFormat}
}
