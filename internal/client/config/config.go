package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/coinviewer/internal/common"
	"github.com/dmitrijs2005/coinviewer/internal/flagx"
	"github.com/dmitrijs2005/coinviewer/internal/logging"
)

// Config holds runtime settings for the coinviewer CLI.
//
// Fields:
//   - BaseURL: root of the CoinPaprika API; always ends with "/".
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: auto, text, json or pretty (see logging.New).
//   - UserAgent: sent with every API request.
type Config struct {
	BaseURL   string
	LogLevel  string
	LogFormat string
	UserAgent string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = common.DefaultBaseURL
	c.LogLevel = "info"
	c.LogFormat = logging.FormatAuto
	c.UserAgent = "coinviewer/1.0"
}

// LoadConfig builds the Config from the process command line and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], ".env")
}

// Load applies defaults, then overlays values from the config file named by
// -c/-config (if any), then the environment (after loading envFile, if it
// exists), then command-line flags. Later sources take precedence.
func Load(args []string, envFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, flagx.ConfigFileFlag(args)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case logging.FormatAuto, logging.FormatText, logging.FormatJSON, logging.FormatPretty:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.BaseURL == "/" {
		return fmt.Errorf("base url must not be empty")
	}
	return nil
}
