package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/weeksoflife/internal/flagx"
	"github.com/dmitrijs2005/weeksoflife/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero so a partial file only overrides
// what it names. RefreshInterval accepts "1h" or integer nanoseconds.
type JsonConfig struct {
	Storage         *string         `json:"storage"`
	DatabasePath    *string         `json:"database_path"`
	RedisAddr       *string         `json:"redis_addr"`
	RedisDB         *int            `json:"redis_db"`
	RedisPrefix     *string         `json:"redis_prefix"`
	RefreshInterval *timex.Duration `json:"refresh_interval"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	setIf(&cfg.Storage, jc.Storage)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.RedisPrefix, jc.RedisPrefix)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
