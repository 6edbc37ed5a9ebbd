// Package log provides structured logging for textx.
//
// Package: log
// Title: textx Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt
//              output. Library code logs through a *Logger that discards
//              everything unless the application installs a real one.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Library defaults (discard output, warn level)
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "textx",
//	})
//	logger.Debug("wrapped text", log.Int("cols", 72))
//	logger.LogError(err)
package log
