// Package logging configures zerolog output for the gospoty CLI and
// adapts it to the spotify client's Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/blu3eee/gospoty/pkg/spotify"
)

// Setup creates a logger with the specified configuration. When logFile
// is empty output goes to stderr with pretty console formatting.
func Setup(logFile, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Set up output
	var output *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			output = os.Stderr
		} else {
			output = f
		}
	} else {
		output = os.Stderr
	}

	logger := newLogger(output, level)

	// Use pretty console output if logging to stderr
	if output == os.Stderr {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger
}

// newLogger builds the base logger for the given writer and level
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ClientLogger adapts a zerolog.Logger to the spotify.Logger interface
// so client internals can emit debug lines through the CLI's logger.
type ClientLogger struct {
	logger zerolog.Logger
}

// NewClientLogger wraps the given logger with a component field for the
// Spotify client.
func NewClientLogger(logger zerolog.Logger) *ClientLogger {
	return &ClientLogger{
		logger: logger.With().Str("component", "spotify").Logger(),
	}
}

// Debugf logs a debug message with format and arguments.
func (l *ClientLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

var _ spotify.Logger = (*ClientLogger)(nil)
