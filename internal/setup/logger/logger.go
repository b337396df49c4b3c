package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger on stderr, used where logs are collected by the platform.
func New(level string) zerolog.Logger {
	return build(os.Stderr, level)
}

// NewConsole returns a human-readable logger on stderr for interactive binaries.
// Stdout stays free for the MCP protocol and CLI output.
func NewConsole(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return build(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, level)
}

func build(out io.Writer, level string) zerolog.Logger {
	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
