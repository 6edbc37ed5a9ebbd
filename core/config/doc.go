// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML documents and gives typed,
//              dot-path access to their values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-02 v0.2.0: Reduced to loading and typed lookup

/*
Package config provides configuration loading for textx.

Key Features:
  • TOML and YAML documents with detection by file extension
  • Defaults merged below the loaded document
  • Thread-safe access through dot-separated keys
  • Strict lookups that report values of the wrong type

The package never reads environment variables. Everything a caller wants
configured has to be in the document or in the defaults.

# Basic Configuration Loading

	cfg, err := config.Load("textx.toml")
	if err != nil {
		return err
	}

	cols := cfg.GetInt("wrap.columns", 72)
	keep := cfg.GetBool("indent.keep_existing", false)

# Strict Lookups

GetInt and friends fall back to the default for a value of the wrong type.
Callers that must reject such values use the Lookup variants:

	cols, ok, err := cfg.LookupInt("wrap.columns")
	if err != nil {
		// present but not an integer, err carries CodeInvalidConfig
	}
	if !ok {
		// absent
	}

# Error Handling

Load errors carry CodeNotFound for a missing file, CodeConfigError for other
read failures and CodeInvalidFormat for documents that do not parse.
*/
package config
