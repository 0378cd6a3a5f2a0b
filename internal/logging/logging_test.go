package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestNewLogger tests that the base logger respects the configured level.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.InfoLevel)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Expected info message in output, got %q", out)
	}
}

// TestClientLogger tests the spotify.Logger adapter output.
func TestClientLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.DebugLevel)

	cl := NewClientLogger(logger)
	cl.Debugf("cache hit for %s", "/tracks/abc")

	out := buf.String()
	if !strings.Contains(out, "cache hit for /tracks/abc") {
		t.Errorf("Expected formatted message in output, got %q", out)
	}
	if !strings.Contains(out, `"component":"spotify"`) {
		t.Errorf("Expected component field in output, got %q", out)
	}
	if !strings.Contains(out, `"level":"debug"`) {
		t.Errorf("Expected debug level in output, got %q", out)
	}
}

// TestClientLogger_LevelFiltered tests that debug lines are dropped when
// the underlying logger runs at info level.
func TestClientLogger_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.InfoLevel)

	cl := NewClientLogger(logger)
	cl.Debugf("should not appear")

	if buf.Len() != 0 {
		t.Errorf("Expected no output at info level, got %q", buf.String())
	}
}
