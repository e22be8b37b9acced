package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables consulted by [ApplyEnv]. Flags take precedence.
const (
	EnvOutput     = "WATCHHABITS_OUTPUT"
	EnvProfiles   = "WATCHHABITS_PROFILES"
	EnvTimezone   = "WATCHHABITS_TZ"
	EnvChartWidth = "WATCHHABITS_CHART_WIDTH"
)

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. Missing files are ignored; with no
// arguments "./.env" is tried.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv copies WATCHHABITS_* variables into cfg.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv(EnvProfiles); v != "" {
		cfg.Profiles = ParseProfiles(v)
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv(EnvChartWidth); v != "" {
		n, err := parseInt(v, EnvChartWidth)
		if err != nil {
			return err
		}
		cfg.ChartWidth = n
	}
	return nil
}

// parseInt parses s as an integer for numeric settings; returns a clear error on failure.
func parseInt(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number (got %q)", name, s)
	}
	return n, nil
}
