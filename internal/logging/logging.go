package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const devEnv = "DEV"

// New builds the process logger. DEV gets a coloured console writer, every
// other environment gets JSON lines.
func New(env, level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if env == devEnv {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// ForClient returns the logger used for per-request tracing. Outside DEV the
// tracing is switched off entirely.
func ForClient(env string, base zerolog.Logger) zerolog.Logger {
	if env != devEnv {
		return zerolog.Nop()
	}
	return base.With().Str("component", "http").Logger()
}
