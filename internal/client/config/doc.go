// Package config loads runtime configuration for the weeksoflife CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. WEEKS_* environment variables.
//  4. Command-line flags, which override everything before them.
//
// Supported flags
//
//	-s string   storage backend (sqlite, memory, redis)
//	-d string   SQLite database path
//	-R string   Redis address
//	-r int      statistics refresh interval (seconds)
//	-l string   log level
//	-f string   log format (text, json, console)
//
// # JSON schema
//
// Every key is optional:
//
//	{
//	  "storage": "sqlite",
//	  "database_path": "weeks.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_db": 0,
//	  "redis_prefix": "weeks:",
//	  "refresh_interval": "1h",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
