package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("BasicLogging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "TEST", FlagLevel|FlagPrefix)

		logger.Info("Hello %s", "World")

		output := buf.String()
		if !strings.Contains(output, "[INFO]") {
			t.Error("Missing log level")
		}
		if !strings.Contains(output, "[TEST]") {
			t.Error("Missing prefix")
		}
		if !strings.Contains(output, "Hello World") {
			t.Error("Missing message")
		}
		if !strings.HasSuffix(output, "\n") {
			t.Error("Missing trailing newline")
		}
	})

	t.Run("LogLevels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		output := buf.String()
		if strings.Contains(output, "debug message") {
			t.Error("Debug message should not be logged")
		}
		if strings.Contains(output, "info message") {
			t.Error("Info message should not be logged")
		}
		if !strings.Contains(output, "warn message") {
			t.Error("Warn message should be logged")
		}
		if !strings.Contains(output, "error message") {
			t.Error("Error message should be logged")
		}
	})

	t.Run("Off", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelOff)
		logger.Error("nothing")
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
		if logger.Enabled(LogLevelError) {
			t.Error("Enabled should be false when off")
		}
	})

	t.Run("ShortFile", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagShortFile)
		logger.Info("where")
		if !strings.Contains(buf.String(), "logger_test.go:") {
			t.Errorf("expected caller file in %q", buf.String())
		}
	})

	t.Run("With", func(t *testing.T) {
		var buf bytes.Buffer
		parent := New(&buf, "host", FlagPrefix)
		child := parent.With("engine")
		child.Info("prepared")
		parent.Info("started")

		output := buf.String()
		if !strings.Contains(output, "[engine] prepared") {
			t.Errorf("child prefix missing: %q", output)
		}
		if !strings.Contains(output, "[host] started") {
			t.Errorf("parent prefix changed: %q", output)
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{"warning", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"off", LogLevelOff, false},
		{"loud", LogLevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
