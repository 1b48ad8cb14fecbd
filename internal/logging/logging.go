// Package logging configures the shared zerolog logger. Output goes to
// stderr so stdout stays clean for structured result streams.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	level := zerolog.WarnLevel
	if envLevel := os.Getenv("AZMIG_LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

// SetVerbose switches the logger to debug level; used by the --verbose flag.
func SetVerbose(verbose bool) {
	if verbose {
		Logger = Logger.Level(zerolog.DebugLevel)
	}
}
