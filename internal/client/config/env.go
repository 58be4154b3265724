package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envBaseURL   = "COINVIEWER_BASE_URL"
	envLogLevel  = "COINVIEWER_LOG_LEVEL"
	envLogFormat = "COINVIEWER_LOG_FORMAT"
	envUserAgent = "COINVIEWER_USER_AGENT"
)

// parseEnv loads envFile into the process environment when it exists, then
// overlays cfg with the COINVIEWER_* variables that are set and non-empty.
func parseEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	overlay(&cfg.BaseURL, os.Getenv(envBaseURL))
	overlay(&cfg.LogLevel, os.Getenv(envLogLevel))
	overlay(&cfg.LogFormat, os.Getenv(envLogFormat))
	overlay(&cfg.UserAgent, os.Getenv(envUserAgent))
	return nil
}
