// File: config.go
// Title: Core Configuration Management Implementation
// Description: Loads configuration documents in TOML or YAML and gives
//              typed, dot-path access to their values. Used to configure
//              the textx surface (wrap columns, indent width, separators,
//              logging).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-02 v0.2.0: Removed environment overrides and file watching,
//                       added Get and Keys

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mDW/textx/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a parsed configuration document with thread-safe access
type Config struct {
	mu       sync.RWMutex
	data     map[string]interface{}
	filePath string
	format   Format
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format   Format                 // File format (default: auto-detect)
	Defaults map[string]interface{} // Default values, merged below the file content
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:     data,
		filePath: filePath,
		format:   format,
	}, nil
}

// LoadFromString loads configuration from a string with specified format.
// FormatAuto is treated as TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// FromMap creates a configuration from already decoded data
func FromMap(data map[string]interface{}) *Config {
	return &Config{
		data:   deepCopyMap(data),
		format: FormatAuto,
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		if data == nil {
			// an empty YAML document decodes to a nil map
			data = make(map[string]interface{})
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// mergeDefaults merges defaults below data; nested tables are merged key by key
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopyMap(defaults)
	for k, v := range data {
		sub, isMap := v.(map[string]interface{})
		defSub, defIsMap := result[k].(map[string]interface{})
		if isMap && defIsMap {
			result[k] = mergeDefaults(sub, defSub)
			continue
		}
		result[k] = v
	}
	return result
}

// Get returns the raw value at key (dot notation) or nil
func (c *Config) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key)
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value := c.Get(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if v, ok := toInt(c.Get(key)); ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	switch v := c.Get(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// Has reports whether key is present
func (c *Config) Has(key string) bool {
	return c.Get(key) != nil
}

// Keys returns all leaf keys in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if sub, ok := v.(map[string]interface{}); ok {
				walk(full, sub)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// Set stores value at key, creating intermediate tables as needed
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[string]interface{})
	}

	parts := strings.Split(key, ".")
	current := c.data
	for _, k := range parts[:len(parts)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// GetAll returns a deep copy of the configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format of the loaded document
func (c *Config) Format() Format {
	return c.format
}

func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// toInt converts the numeric types produced by the TOML and YAML decoders
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal, true
		}
	}
	return 0, false
}

// LookupInt returns the integer at key. ok is false when the key is
// absent; err is set when it is present but not an integer.
func (c *Config) LookupInt(key string) (value int, ok bool, err error) {
	raw := c.Get(key)
	if raw == nil {
		return 0, false, nil
	}
	v, isInt := toInt(raw)
	if !isInt {
		return 0, true, invalidType(key, raw, "integer")
	}
	return v, true, nil
}

// LookupBool returns the boolean at key, see LookupInt
func (c *Config) LookupBool(key string) (value bool, ok bool, err error) {
	raw := c.Get(key)
	if raw == nil {
		return false, false, nil
	}
	v, isBool := raw.(bool)
	if !isBool {
		return false, true, invalidType(key, raw, "boolean")
	}
	return v, true, nil
}

// LookupString returns the string at key, see LookupInt
func (c *Config) LookupString(key string) (value string, ok bool, err error) {
	raw := c.Get(key)
	if raw == nil {
		return "", false, nil
	}
	v, isString := raw.(string)
	if !isString {
		return "", true, invalidType(key, raw, "string")
	}
	return v, true, nil
}

func invalidType(key string, value interface{}, expected string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("config: %s must be a %s, got %T", key, expected, value)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Lookup").
		WithDetail("key", key).
		WithDetail("expected", expected)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if sub, ok := v.(map[string]interface{}); ok {
			dst[k] = deepCopyMap(sub)
			continue
		}
		dst[k] = v
	}
	return dst
}
