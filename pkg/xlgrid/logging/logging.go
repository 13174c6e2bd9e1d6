// Package logging provides a leveled logger over the standard log package.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// ParseLevel maps ERROR, WARN, INFO, DEBUG or TRACE (any case) to a Level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "INFO":
		return LevelInfo, true
	case "DEBUG":
		return LevelDebug, true
	case "TRACE":
		return LevelTrace, true
	}
	return LevelInfo, false
}

// Logger writes messages at or below its level.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to w.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewFromEnv creates a stderr logger whose level comes from XLGRID_LOG_LEVEL,
// defaulting to WARN.
func NewFromEnv() *Logger {
	level := LevelWarn
	if l, ok := ParseLevel(os.Getenv("XLGRID_LOG_LEVEL")); ok {
		level = l
	}
	return New(os.Stderr, level)
}

// Level returns the current level.
func (l *Logger) Level() Level { return l.level }

// SetLevel changes the level.
func (l *Logger) SetLevel(level Level) { l.level = level }

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, "[ERROR] ", format, args)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, "[WARN] ", format, args)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, "[INFO] ", format, args)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, "[DEBUG] ", format, args)
}

// Trace logs trace messages
func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LevelTrace, "[TRACE] ", format, args)
}

func (l *Logger) logf(level Level, prefix, format string, args []interface{}) {
	if l.level >= level {
		l.out.Printf(prefix+format, args...)
	}
}
