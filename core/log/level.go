// File: level.go
// Title: Log Level Definitions
// Description: Defines log severity levels for the VCL logging system with
//              parsing and string conversion support.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log entry
type Level int

const (
	// LevelDebug is for verbose diagnostic output (trial parsing, rollbacks)
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages
	LevelInfo

	// LevelWarn is for recoverable problems
	LevelWarn

	// LevelError is for failures that abort an operation
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name (case-insensitive) into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
