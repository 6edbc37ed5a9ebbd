// File: extender.go
// Title: Text Extension Surface
// Description: Extender bundles every text operation of textx behind one
//              configured value. Each method validates its input, calls
//              the owning package and logs the outcome.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package stringx

import (
	"unicode/utf8"

	mdwerrors "github.com/msto63/mDW/textx/core/errors"
	mdwlog "github.com/msto63/mDW/textx/core/log"
	"github.com/msto63/mDW/textx/utils/casex"
	"github.com/msto63/mDW/textx/utils/charcodec"
	"github.com/msto63/mDW/textx/utils/reflow"
	"github.com/msto63/mDW/textx/utils/sanitize"
	"github.com/msto63/mDW/textx/utils/translit"
)

// Extender exposes the text operations with a fixed set of Options.
// An Extender is immutable and safe for concurrent use.
type Extender struct {
	opts   Options
	logger *mdwlog.Logger
}

// New creates an Extender with DefaultOptions and the package default logger
func New() *Extender {
	return &Extender{
		opts:   DefaultOptions(),
		logger: mdwlog.GetDefault().WithName(mdwerrors.ModuleStringx),
	}
}

// NewWithOptions creates an Extender after validating opts
func NewWithOptions(opts Options) (*Extender, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Extender{
		opts:   opts,
		logger: mdwlog.GetDefault().WithName(mdwerrors.ModuleStringx),
	}, nil
}

// WithLogger returns a copy of e that logs to logger. A nil logger
// discards everything.
func (e *Extender) WithLogger(logger *mdwlog.Logger) *Extender {
	if logger == nil {
		logger = mdwlog.Nop()
	}
	return &Extender{
		opts:   e.opts,
		logger: logger.WithName(mdwerrors.ModuleStringx),
	}
}

// Options returns the options of e
func (e *Extender) Options() Options {
	return e.opts
}

// ToASCII folds s into ASCII, see translit.ToASCII
func (e *Extender) ToASCII(s string) (string, error) {
	return e.apply("ToASCII", s, func(s string) (string, error) {
		return translit.ToASCII(s), nil
	})
}

// StripMarks removes combining marks from s, see translit.StripMarks
func (e *Extender) StripMarks(s string) (string, error) {
	return e.apply("StripMarks", s, func(s string) (string, error) {
		return translit.StripMarks(s), nil
	})
}

// Urlify turns s into a URL path segment, see sanitize.Urlify
func (e *Extender) Urlify(s string) (string, error) {
	return e.apply("Urlify", s, func(s string) (string, error) {
		return sanitize.Urlify(s), nil
	})
}

// BaseFilename turns s into a file name, see sanitize.BaseFilename
func (e *Extender) BaseFilename(s string) (string, error) {
	return e.apply("BaseFilename", s, func(s string) (string, error) {
		return sanitize.BaseFilename(s), nil
	})
}

// Upcase converts s to upper case, see casex.Upcase
func (e *Extender) Upcase(s string) (string, error) {
	return e.apply("Upcase", s, func(s string) (string, error) {
		return casex.Upcase(s), nil
	})
}

// Downcase converts s to lower case, see casex.Downcase
func (e *Extender) Downcase(s string) (string, error) {
	return e.apply("Downcase", s, func(s string) (string, error) {
		return casex.Downcase(s), nil
	})
}

// Capitalize upper-cases the first character of s and lower-cases the rest
func (e *Extender) Capitalize(s string) (string, error) {
	return e.apply("Capitalize", s, casex.Capitalize)
}

// Wrap wraps s at the configured column count
func (e *Extender) Wrap(s string) (string, error) {
	return e.WrapAt(s, e.opts.WrapColumns)
}

// WrapAt wraps s at cols columns
func (e *Extender) WrapAt(s string, cols int) (string, error) {
	return e.apply("Wrap", s, func(s string) (string, error) {
		return reflow.Wrap(s, cols)
	})
}

// Indent indents s with the configured width and indentation handling
func (e *Extender) Indent(s string) (string, error) {
	return e.IndentBy(s, e.opts.IndentWidth, e.opts.KeepIndentation)
}

// IndentBy indents s by width spaces
func (e *Extender) IndentBy(s string, width int, keepExisting bool) (string, error) {
	return e.apply("Indent", s, func(s string) (string, error) {
		return reflow.Indent(s, width, keepExisting)
	})
}

// Dedent removes the leading whitespace of every line of s
func (e *Extender) Dedent(s string) (string, error) {
	return e.apply("Dedent", s, func(s string) (string, error) {
		return reflow.Dedent(s), nil
	})
}

// Char parses s as a single character
func (e *Extender) Char(s string) (charcodec.Char, error) {
	if err := e.validate("Char", s); err != nil {
		return charcodec.Char{}, err
	}
	c, err := charcodec.Parse(s)
	if err != nil {
		e.logger.LogError(err, mdwlog.String("op", "Char"))
		return charcodec.Char{}, err
	}
	return c, nil
}

// Chars decomposes s into characters
func (e *Extender) Chars(s string) ([]charcodec.Char, error) {
	if err := e.validate("Chars", s); err != nil {
		return nil, err
	}
	chars, err := charcodec.Chars(s)
	if err != nil {
		e.logger.LogError(err, mdwlog.String("op", "Chars"))
		return nil, err
	}
	e.logger.Debug("text operation", mdwlog.Fields{"op": "Chars", "input_runes": len(chars)})
	return chars, nil
}

// Graphemes splits s into user-perceived characters
func (e *Extender) Graphemes(s string) ([]string, error) {
	if err := e.validate("Graphemes", s); err != nil {
		return nil, err
	}
	clusters, err := charcodec.Graphemes(s)
	if err != nil {
		e.logger.LogError(err, mdwlog.String("op", "Graphemes"))
		return nil, err
	}
	e.logger.Debug("text operation", mdwlog.Fields{"op": "Graphemes", "input_runes": utf8.RuneCountInString(s), "clusters": len(clusters)})
	return clusters, nil
}

// CharBinary renders the single character s in binary
func (e *Extender) CharBinary(s string) (string, error) {
	return e.renderChar("CharBinary", s, func(c charcodec.Char) string { return c.Binary(e.opts.ByteSeparator) })
}

// CharHex renders the single character s in hexadecimal
func (e *Extender) CharHex(s string) (string, error) {
	return e.renderChar("CharHex", s, func(c charcodec.Char) string { return c.Hex(e.opts.ByteSeparator) })
}

// CharDecimal renders the single character s in decimal
func (e *Extender) CharDecimal(s string) (string, error) {
	return e.renderChar("CharDecimal", s, func(c charcodec.Char) string { return c.Decimal(e.opts.ByteSeparator) })
}

// ToBinary renders every character of s in binary
func (e *Extender) ToBinary(s string) (string, error) {
	return e.apply("ToBinary", s, func(s string) (string, error) {
		return charcodec.ToBinary(s, e.opts.CharSeparator, e.opts.StringByteSeparator)
	})
}

// ToHex renders every character of s in hexadecimal
func (e *Extender) ToHex(s string) (string, error) {
	return e.apply("ToHex", s, func(s string) (string, error) {
		return charcodec.ToHex(s, e.opts.CharSeparator, e.opts.StringByteSeparator)
	})
}

// ToDecimal renders every character of s in decimal
func (e *Extender) ToDecimal(s string) (string, error) {
	return e.apply("ToDecimal", s, func(s string) (string, error) {
		return charcodec.ToDecimal(s, e.opts.CharSeparator, e.opts.StringByteSeparator)
	})
}

func (e *Extender) renderChar(operation, s string, render func(charcodec.Char) string) (string, error) {
	return e.apply(operation, s, func(s string) (string, error) {
		c, err := charcodec.Parse(s)
		if err != nil {
			return "", err
		}
		return render(c), nil
	})
}

// apply validates s, runs fn and logs the result
func (e *Extender) apply(operation, s string, fn func(string) (string, error)) (string, error) {
	if err := e.validate(operation, s); err != nil {
		return "", err
	}

	out, err := fn(s)
	if err != nil {
		e.logger.LogError(err, mdwlog.String("op", operation))
		return "", err
	}

	if e.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		e.logger.Debug("text operation", mdwlog.Fields{
			"op":           operation,
			"input_runes":  utf8.RuneCountInString(s),
			"output_runes": utf8.RuneCountInString(out),
		})
	}
	return out, nil
}

func (e *Extender) validate(operation, s string) error {
	err := mdwerrors.ValidateUTF8(mdwerrors.ModuleStringx, operation, s)
	if err != nil {
		e.logger.LogError(err, mdwlog.String("op", operation))
	}
	return err
}
