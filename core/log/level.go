// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-08-02 v0.1.1: Removed console colors
// - 2025-08-09 v0.2.0: Reduced to debug, info, warn and error

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelDebug is used for the per-operation records of the text surface
	LevelDebug Level = iota

	// LevelInfo receives caller mistakes reported through LogError
	LevelInfo

	// LevelWarn is the default threshold of library loggers
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "unknown"
	}
	return levelNames[l]
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name as written in a configuration document.
// Matching ignores case and surrounding space; "warning" is accepted for warn.
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level of library loggers
func DefaultLevel() Level {
	return LevelWarn
}
