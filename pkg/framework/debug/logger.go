// Package debug provides levelled logging for plugin and host code.
//
// Logging is for control-rate paths (setup, activation, state handling).
// The audio callback must never log.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "off", "none":
		return LogLevelOff, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Flags for logger output formatting.
const (
	FlagTime      = 1 << iota // Include timestamp
	FlagShortFile             // Include short file name and line number
	FlagLevel                 // Include log level
	FlagPrefix                // Include prefix
)

// DefaultFlags are the default formatting flags.
const DefaultFlags = FlagTime | FlagShortFile | FlagLevel | FlagPrefix

// sink is the output shared between a logger and the loggers derived from it.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

// Logger provides levelled logging with an optional component prefix.
type Logger struct {
	out    *sink
	mu     sync.RWMutex
	level  LogLevel
	prefix string
	flags  int
}

var defaultLogger = New(os.Stderr, "", DefaultFlags)

// New creates a new logger instance at LogLevelInfo.
func New(output io.Writer, prefix string, flags int) *Logger {
	return &Logger{
		out:    &sink{w: output},
		prefix: prefix,
		flags:  flags,
		level:  LogLevelInfo,
	}
}

// With returns a logger writing to the same output with another prefix.
func (l *Logger) With(prefix string) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Logger{
		out:    l.out,
		prefix: prefix,
		flags:  l.flags,
		level:  l.level,
	}
}

// SetOutput sets the output destination for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.w = w
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum log level.
func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level < LogLevelOff && level >= l.Level()
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.RLock()
	minLevel, prefix, flags := l.level, l.prefix, l.flags
	l.mu.RUnlock()

	if level < minLevel || level >= LogLevelOff {
		return
	}

	var sb strings.Builder

	if flags&FlagTime != 0 {
		sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000 "))
	}
	if flags&FlagLevel != 0 {
		fmt.Fprintf(&sb, "[%s] ", level)
	}
	if flags&FlagPrefix != 0 && prefix != "" {
		fmt.Fprintf(&sb, "[%s] ", prefix)
	}
	if flags&FlagShortFile != 0 {
		// 2 frames: log() and Debug/Info/etc
		if _, file, line, ok := runtime.Caller(2); ok {
			fmt.Fprintf(&sb, "%s:%d: ", filepath.Base(file), line)
		}
	}

	msg := fmt.Sprintf(format, args...)
	sb.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		sb.WriteByte('\n')
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	_, _ = io.WriteString(l.out.w, sb.String())
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, format, args...)
}

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger
}

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level LogLevel) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output destination for the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}
