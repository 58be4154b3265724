package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Supported output formats.
const (
	FormatAuto   = "auto"
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

type Options struct {
	Level  string
	Format string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// New builds a Logger for the given options. "text" is backed by slog;
// "json" and "pretty" by zerolog. "auto" picks pretty when Out is a terminal
// and json otherwise. Unknown formats fall back to text.
func New(o Options) Logger {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	level := ParseLevel(o.Level)

	format := strings.ToLower(o.Format)
	if format == FormatAuto || format == "" {
		format = FormatJSON
		if isTerminal(out) {
			format = FormatPretty
		}
	}

	switch format {
	case FormatJSON:
		zl := zerolog.New(out).Level(zerologLevel(level)).With().Timestamp().Str("service", "coinviewer").Logger()
		return NewZerologLogger(zl)
	case FormatPretty:
		cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		zl := zerolog.New(cw).Level(zerologLevel(level)).With().Timestamp().Logger()
		return NewZerologLogger(zl)
	default:
		return NewSlogText(out, level)
	}
}

// ParseLevel maps a level name to slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l <= slog.LevelDebug:
		return zerolog.DebugLevel
	case l <= slog.LevelInfo:
		return zerolog.InfoLevel
	case l <= slog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZerologLogger(zerolog.Nop())
}
