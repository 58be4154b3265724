package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding config files. Empty
// fields leave the current value untouched.
type FileConfig struct {
	BaseURL   string `json:"base_url" yaml:"base_url"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// parseFile overlays cfg with the file at path. An empty path is a no-op.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	overlay(&cfg.BaseURL, fc.BaseURL)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.LogFormat, fc.LogFormat)
	overlay(&cfg.UserAgent, fc.UserAgent)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
