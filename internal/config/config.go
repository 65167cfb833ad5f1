// Package config handles application configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Flags
	Quiet bool
	Debug bool

	// Conversion tool: "cygpath", "wslpath", or "auto" to probe PATH
	Tool string

	// Logical default directory relative paths resolve against
	DefaultDir string

	// Timeouts
	ConvertTimeout time.Duration
}

// Load loads configuration from environment
func Load() (*Config, error) {
	cfg := &Config{
		Quiet:          envBool("CYGCONV_QUIET", false),
		Debug:          envBool("CYGCONV_DEBUG", false),
		Tool:           envStr("CYGCONV_TOOL", "auto"),
		ConvertTimeout: time.Duration(envInt("CYGCONV_TIMEOUT", 10)) * time.Second,
	}

	// Default directory falls back to the process working directory,
	// then to the filesystem root.
	defaultDir := os.Getenv("CYGCONV_DEFAULT_DIR")
	if defaultDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "/"
		}
		defaultDir = cwd
	}
	cfg.DefaultDir = defaultDir

	return cfg, nil
}

func (c *Config) SetQuiet(v bool) { c.Quiet = v }
func (c *Config) SetDebug(v bool) { c.Debug = v }

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
