// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the structured Logger used by the VCL engine.
//              Provides leveled logging with contextual fields, text and
//              JSON output formats, and a process-wide default instance.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with structured logging

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields represents contextual key/value pairs attached to log entries
type Fields map[string]interface{}

// Format represents the log output format
type Format int

const (
	// FormatText renders entries as a single human-readable line (default)
	FormatText Format = iota

	// FormatJSON renders entries as one JSON object per line
	FormatJSON
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level  Level
	format Format
	output io.Writer
	name   string
	fields Fields
	mutex  sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

var (
	defaultLogger *Logger
	defaultMutex  sync.RWMutex
)

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:  DefaultLevel(),
		format: FormatText,
		output: os.Stdout,
		fields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:  config.Level,
		format: config.Format,
		output: config.Output,
		name:   config.Name,
		fields: make(Fields),
	}

	if logger.output == nil {
		logger.output = os.Stdout
	}

	return logger
}

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultMutex.RLock()
	if defaultLogger != nil {
		defer defaultMutex.RUnlock()
		return defaultLogger
	}
	defaultMutex.RUnlock()

	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

// clone creates a copy of the logger sharing the output writer
func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}

	return &Logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		name:   l.name,
		fields: fields,
	}
}

// WithLevel returns a copy of the logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithName returns a copy of the logger with the given name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy of the logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.fields[key] = value
	return clone
}

// WithFields returns a copy of the logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.fields[k] = v
	}
	return clone
}

// Level returns the logger's minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// log formats and writes a single log entry
func (l *Logger) log(level Level, message string, fields ...Fields) {
	if level < l.level {
		return
	}

	merged := make(Fields, len(l.fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}

	var line string
	switch l.format {
	case FormatJSON:
		line = l.formatJSON(level, message, merged)
	default:
		line = l.formatText(level, message, merged)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	fmt.Fprintln(l.output, line)
}

// formatText renders an entry as a single human-readable line
func (l *Logger) formatText(level Level, message string, fields Fields) string {
	var b strings.Builder

	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%-5s", level.String()))
	if l.name != "" {
		b.WriteString(" [")
		b.WriteString(l.name)
		b.WriteString("]")
	}
	b.WriteString(" ")
	b.WriteString(message)

	// Stable field order for readable and testable output
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", k, fields[k]))
	}

	return b.String()
}

// formatJSON renders an entry as a JSON object
func (l *Logger) formatJSON(level Level, message string, fields Fields) string {
	entry := map[string]interface{}{
		"time":    time.Now().Format(time.RFC3339),
		"level":   level.String(),
		"message": message,
	}
	if l.name != "" {
		entry["logger"] = l.name
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"level":"ERROR","message":"log entry not serializable: %v"}`, err)
	}
	return string(data)
}
