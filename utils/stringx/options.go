// File: options.go
// Title: Extender Options and Configuration
// Description: Options of the text extension surface, their validation and
//              their construction from a configuration document.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-02
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation
// - 2025-08-09 v0.1.1: Byte separator may be any valid UTF-8 string

package stringx

import (
	"unicode/utf8"

	mdwconfig "github.com/msto63/mDW/textx/core/config"
	mdwerrors "github.com/msto63/mDW/textx/core/errors"
	mdwlog "github.com/msto63/mDW/textx/core/log"
	"github.com/msto63/mDW/textx/utils/charcodec"
	"github.com/msto63/mDW/textx/utils/reflow"
)

// Configuration keys read by FromConfig
const (
	KeyWrapColumns         = "wrap.columns"
	KeyIndentWidth         = "indent.width"
	KeyKeepIndentation     = "indent.keep_existing"
	KeyByteSeparator       = "codec.byte_separator"
	KeyCharSeparator       = "codec.char_separator"
	KeyStringByteSeparator = "codec.string_byte_separator"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
)

// Options holds the parameters of an Extender
type Options struct {
	WrapColumns     int  // columns used by Wrap
	IndentWidth     int  // spaces prepended by Indent
	KeepIndentation bool // keep existing indentation in Indent

	ByteSeparator       string // between the bytes of a single character
	CharSeparator       string // between characters in string renderings
	StringByteSeparator string // between the bytes of one character in string renderings
}

// DefaultOptions returns the default parameters
func DefaultOptions() Options {
	return Options{
		WrapColumns:         reflow.DefaultColumns,
		IndentWidth:         reflow.DefaultIndentWidth,
		KeepIndentation:     false,
		ByteSeparator:       charcodec.DefaultByteSeparator,
		CharSeparator:       charcodec.DefaultCharSeparator,
		StringByteSeparator: charcodec.DefaultStringByteSeparator,
	}
}

// Validate checks every option and returns an InvalidConfig error for the
// first one that cannot be used
func (o Options) Validate() error {
	if o.WrapColumns < 1 {
		return mdwerrors.InvalidConfig(KeyWrapColumns, o.WrapColumns, "must be at least 1")
	}
	if o.IndentWidth < 0 {
		return mdwerrors.InvalidConfig(KeyIndentWidth, o.IndentWidth, "must not be negative")
	}
	if !utf8.ValidString(o.ByteSeparator) {
		return mdwerrors.InvalidConfig(KeyByteSeparator, o.ByteSeparator, "must be valid UTF-8")
	}
	if !utf8.ValidString(o.CharSeparator) {
		return mdwerrors.InvalidConfig(KeyCharSeparator, o.CharSeparator, "must be valid UTF-8")
	}
	if !utf8.ValidString(o.StringByteSeparator) {
		return mdwerrors.InvalidConfig(KeyStringByteSeparator, o.StringByteSeparator, "must be valid UTF-8")
	}
	return nil
}

// FromConfig builds an Extender from cfg. Absent keys keep their default.
// log.level and log.format adjust the package default logger.
func FromConfig(cfg *mdwconfig.Config) (*Extender, error) {
	if cfg == nil {
		cfg = mdwconfig.FromMap(nil)
	}
	opts := DefaultOptions()

	ints := []struct {
		key    string
		target *int
	}{
		{KeyWrapColumns, &opts.WrapColumns},
		{KeyIndentWidth, &opts.IndentWidth},
	}
	for _, it := range ints {
		v, ok, err := cfg.LookupInt(it.key)
		if err != nil {
			return nil, mdwerrors.InvalidConfig(it.key, cfg.Get(it.key), "must be an integer")
		}
		if ok {
			*it.target = v
		}
	}

	if v, ok, err := cfg.LookupBool(KeyKeepIndentation); err != nil {
		return nil, mdwerrors.InvalidConfig(KeyKeepIndentation, cfg.Get(KeyKeepIndentation), "must be a boolean")
	} else if ok {
		opts.KeepIndentation = v
	}

	strs := []struct {
		key    string
		target *string
	}{
		{KeyByteSeparator, &opts.ByteSeparator},
		{KeyCharSeparator, &opts.CharSeparator},
		{KeyStringByteSeparator, &opts.StringByteSeparator},
	}
	for _, st := range strs {
		v, ok, err := cfg.LookupString(st.key)
		if err != nil {
			return nil, mdwerrors.InvalidConfig(st.key, cfg.Get(st.key), "must be a string")
		}
		if ok {
			*st.target = v
		}
	}

	logger, err := loggerFromConfig(cfg, mdwlog.GetDefault())
	if err != nil {
		return nil, err
	}

	ext, err := NewWithOptions(opts)
	if err != nil {
		return nil, err
	}
	return ext.WithLogger(logger), nil
}

func loggerFromConfig(cfg *mdwconfig.Config, logger *mdwlog.Logger) (*mdwlog.Logger, error) {
	if raw, ok, err := cfg.LookupString(KeyLogLevel); err != nil {
		return nil, mdwerrors.InvalidConfig(KeyLogLevel, cfg.Get(KeyLogLevel), "must be a string")
	} else if ok {
		level, parseErr := mdwlog.ParseLevel(raw)
		if parseErr != nil {
			return nil, mdwerrors.InvalidConfig(KeyLogLevel, raw, parseErr.Error())
		}
		logger = logger.WithLevel(level)
	}

	if raw, ok, err := cfg.LookupString(KeyLogFormat); err != nil {
		return nil, mdwerrors.InvalidConfig(KeyLogFormat, cfg.Get(KeyLogFormat), "must be a string")
	} else if ok {
		format, parseErr := mdwlog.ParseFormat(raw)
		if parseErr != nil {
			return nil, mdwerrors.InvalidConfig(KeyLogFormat, raw, parseErr.Error())
		}
		logger = logger.WithFormat(format)
	}

	return logger, nil
}
