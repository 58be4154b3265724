// Package config loads runtime configuration for the coinviewer CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables, after an optional .env file has been loaded.
//     Variables already set in the process are not overridden by .env.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-u string   base URL of the CoinPaprika API
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (auto, text, json, pretty)
//
// Environment
//
//	COINVIEWER_BASE_URL, COINVIEWER_LOG_LEVEL, COINVIEWER_LOG_FORMAT,
//	COINVIEWER_USER_AGENT
//
// # File schema
//
//	{
//	  "base_url": "https://api.coinpaprika.com/v1/",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "user_agent": "coinviewer/1.0"
//	}
//
// The configuration is read once at startup; nothing changes it afterwards.
package config
