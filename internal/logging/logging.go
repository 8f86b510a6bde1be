// Package logging provides the zerolog-based application logger.
//
// A single logger is built at startup from config and handed to components
// through constructors; packages add their own `component` field so log
// lines can be filtered per subsystem.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/12OneTwo12/upvy-sub004/internal/config"
)

// New builds the root logger from config. JSON output is the default;
// console output is for local development only.
func New(cfg config.LoggingConfig) zerolog.Logger {
	var out io.Writer = os.Stderr
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	level := parseLevel(cfg.Level)

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
