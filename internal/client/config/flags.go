package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/coinviewer/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-u string   base URL of the API (default from Config)
//	-l string   log level (default from Config)
//	-f string   log format (default from Config)
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// components (such as -c) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-u", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "base URL of the CoinPaprika API")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: auto, text, json, pretty")

	return fs.Parse(args)
}
