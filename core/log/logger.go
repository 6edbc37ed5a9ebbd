// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger used by the textx surface. Loggers are
//              immutable: every With* call returns a configured copy, so a
//              logger can be shared between goroutines.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-08-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-08-02 v0.2.0: Removed async buffering and caller capture, discard
//                       output as library default
// - 2025-08-09 v0.2.1: Errors are logged through LogError only

package log

import (
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/mDW/textx/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields

	// serializes writes to output
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing JSON at info level to stdout
func New() *Logger {
	return NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: os.Stdout,
	})
}

// NewWithConfig creates a new logger with the specified configuration.
// A nil Output discards everything.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = io.Discard
	}
	return &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        output,
		name:          config.Name,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}
}

// Nop returns a logger that writes nothing
func Nop() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel()})
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat sets the log format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithFormatter sets a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	clone := l.clone()
	clone.formatter = formatter
	return clone
}

// WithOutput sets the output destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.writeMu = &sync.Mutex{}
	return clone
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// LogError logs an error at a level derived from its severity: low
// severity errors are caller mistakes and go to info, medium to warn,
// high and critical to error.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	textErr, ok := mdwerror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err, fields...)
		return
	}

	errFields := Fields{
		"error_code":     textErr.Code(),
		"error_severity": textErr.Severity().String(),
	}
	if op := textErr.Operation(); op != "" {
		errFields["error_operation"] = op
	}
	for k, v := range textErr.Details() {
		errFields["error_"+k] = v
	}
	fields = append([]Fields{errFields}, fields...)

	switch textErr.Severity() {
	case mdwerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, fields...)
	case mdwerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, fields...)
	default:
		l.log(LevelError, err.Error(), err, fields...)
	}
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(formatted)
}

func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
		writeMu:       l.writeMu,
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = Nop()
)

// GetDefault returns the package default logger. It discards output until
// SetDefault installs another one.
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	if logger == nil {
		logger = Nop()
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}
