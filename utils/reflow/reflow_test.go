// File: reflow_test.go
// Title: Unit Tests for Line Reflow
// Description: Tests Wrap, Indent, Dedent and Lines, including width
//              limits, blank lines, CRLF input and argument errors.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-02
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation
// - 2025-08-09 v0.1.1: Invalid bytes in Wrap, ASCII-only indent stripping

package reflow

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	mdwerrors "github.com/msto63/mDW/textx/core/errors"
)

const longText = "This is a String for testing the " +
	"String class after it is being " +
	"extended by stringextension.rb."

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		cols     int
		expected string
	}{
		{
			name:  "long text at 20",
			input: longText,
			cols:  20,
			expected: "This is a String for\n" +
				"testing the String\n" +
				"class after it is\n" +
				"being extended by\n" +
				"stringextension.rb.\n",
		},
		{
			name:     "existing breaks kept",
			input:    "Hello.\nHere we are.\nWhere are you?",
			cols:     12,
			expected: "Hello.\nHere we are.\nWhere are\nyou?\n",
		},
		{"empty", "", 10, ""},
		{"short line", "abc", 10, "abc\n"},
		{"trailing terminator", "abc\n", 10, "abc\n"},
		{"blank lines preserved", "a\n\nb", 10, "a\n\nb\n"},
		{"only newline", "\n", 10, "\n"},
		{"hard break", "abcdefghij", 4, "abcd\nefgh\nij\n"},
		{"hard break then words", "abcdefgh ij", 4, "abcd\nefgh\nij\n"},
		{"space run consumed", "aaa     bbb", 3, "aaa\nbbb\n"},
		{"trailing spaces consumed", "abc   ", 3, "abc\n"},
		{"inner space kept at cut", "a  b", 3, "a \nb\n"},
		{"crlf", "one two\r\nthree", 3, "one\ntwo\nthr\nee\n"},
		{"multibyte counted as one", "äöü äöü", 3, "äöü\näöü\n"},
		{"width one", "ab c", 1, "a\nb\nc\n"},
		{"tab is not a break", "a\tb c", 3, "a\tb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Wrap(tt.input, tt.cols)
			if err != nil {
				t.Fatalf("Wrap(%q, %d) unexpected error: %v", tt.input, tt.cols, err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Wrap(%q, %d) mismatch (-want +got):\n%s", tt.input, tt.cols, diff)
			}
		})
	}
}

func TestWrapLineLength(t *testing.T) {
	inputs := []string{
		longText,
		strings.Repeat("word ", 100),
		strings.Repeat("x", 250),
		"Mötörhéäd vom Faß und die Straße nach Paris " + strings.Repeat("ü", 40),
	}

	for _, input := range inputs {
		for cols := 1; cols <= 30; cols++ {
			result, err := Wrap(input, cols)
			if err != nil {
				t.Fatalf("Wrap unexpected error: %v", err)
			}
			for _, line := range strings.Split(strings.TrimSuffix(result, "\n"), "\n") {
				if n := utf8.RuneCountInString(line); n > cols {
					t.Fatalf("Wrap(_, %d) produced line of %d runes: %q", cols, n, line)
				}
			}
		}
	}
}

func TestWrapInvalidColumns(t *testing.T) {
	for _, cols := range []int{0, -1, -72} {
		_, err := Wrap("text", cols)
		if !mdwerrors.IsInvalidArgument(err) {
			t.Errorf("Wrap(_, %d) = %v; want invalid argument", cols, err)
		}
		if !mdwerrors.IsModuleOperation(err, mdwerrors.ModuleReflow, "Wrap") {
			t.Errorf("error not attributed to reflow.Wrap: %v", err)
		}
	}
}

func TestWrapInvalidUTF8PassThrough(t *testing.T) {
	tests := []struct {
		input    string
		cols     int
		expected string
	}{
		{"ab\xffcd", 10, "ab\xffcd\n"},
		{"\xff\xfe\xfd\xfc", 2, "\xff\xfe\n\xfd\xfc\n"},
		{"a\xff b", 2, "a\xff\nb\n"},
		{"\u00e4\xc3 x", 2, "\u00e4\xc3\nx\n"},
		{"\ufffd", 1, "\ufffd\n"},
	}

	for _, tt := range tests {
		result, err := Wrap(tt.input, tt.cols)
		if err != nil {
			t.Fatalf("Wrap(%q, %d) unexpected error: %v", tt.input, tt.cols, err)
		}
		if result != tt.expected {
			t.Errorf("Wrap(%q, %d) = %q; want %q", tt.input, tt.cols, result, tt.expected)
		}
	}

	indented, err := Indent("ab\xffcd", 1, false)
	if err != nil {
		t.Fatalf("Indent unexpected error: %v", err)
	}
	if indented != " ab\xffcd" {
		t.Errorf("Indent = %q; want %q", indented, " ab\xffcd")
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		keep     bool
		expected string
	}{
		{"strip existing", " eins\nzwei\n   drei", 1, false, " eins\n zwei\n drei"},
		{"keep existing", "eins\n zwei\n  drei", 1, true, " eins\n  zwei\n   drei"},
		{"empty", "", 4, false, ""},
		{"blank line kept", "a\n\nb", 2, false, "  a\n  \n  b"},
		{"whitespace-only line", "a\n \t \nb", 1, false, " a\n \n b"},
		{"trailing terminator", "a\n", 2, false, "  a\n"},
		{"tabs stripped", "\t\tcode", 4, false, "    code"},
		{"crlf kept", "  a\r\n  b", 1, false, " a\r\n b"},
		{"width zero", "  a\n b", 0, false, "a\nb"},
		{"vertical tab and form feed stripped", "\v\fa", 1, false, " a"},
		{"no-break space kept", "\u00a0a\n b", 1, false, " \u00a0a\n b"},
		{"unicode spaces kept", "\u2003a\n\u0085b", 1, false, " \u2003a\n \u0085b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Indent(tt.input, tt.width, tt.keep)
			if err != nil {
				t.Fatalf("Indent unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Indent(%q, %d, %v) mismatch (-want +got):\n%s", tt.input, tt.width, tt.keep, diff)
			}
		})
	}

	t.Run("negative width", func(t *testing.T) {
		if _, err := Indent("a", -1, false); !mdwerrors.IsInvalidArgument(err) {
			t.Errorf("Indent(_, -1, false) = %v; want invalid argument", err)
		}
	})
}

func TestIndentRoundTrip(t *testing.T) {
	inputs := []string{
		" eins\nzwei\n   drei",
		"a\n\n\tb\n",
		longText,
		"",
	}

	for _, input := range inputs {
		for width := 0; width <= 4; width++ {
			once, err := Indent(input, width, false)
			if err != nil {
				t.Fatalf("Indent unexpected error: %v", err)
			}
			again, err := Indent(once, 0, true)
			if err != nil {
				t.Fatalf("Indent unexpected error: %v", err)
			}
			if again != once {
				t.Errorf("Indent(Indent(%q, %d, false), 0, true) = %q; want %q", input, width, again, once)
			}
		}
	}
}

func TestDedent(t *testing.T) {
	if diff := cmp.Diff("a\nb\n\nc", Dedent("  a\n\tb\n   \n c")); diff != "" {
		t.Errorf("Dedent mismatch (-want +got):\n%s", diff)
	}
	if got := Dedent("\u00a0a"); got != "\u00a0a" {
		t.Errorf("Dedent stripped a no-break space: %q", got)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"terminated", "a\n", []string{"a\n"}},
		{"mixed", "a\n\nb\r\nc", []string{"a\n", "\n", "b\r\n", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Lines(tt.input)); diff != "" {
				t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func BenchmarkWrap(b *testing.B) {
	s := strings.Repeat(longText+" ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Wrap(s, DefaultColumns)
	}
}

func BenchmarkIndent(b *testing.B) {
	s := strings.Repeat("  line of text\n", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Indent(s, DefaultIndentWidth, false)
	}
}
