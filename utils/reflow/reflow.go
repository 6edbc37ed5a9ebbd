// File: reflow.go
// Title: Line Reflow
// Description: Greedy word wrapping and block indentation of plain text.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-02
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation
// - 2025-08-09 v0.1.1: Wrap copies invalid bytes, Indent strips ASCII
//                       white space only

package reflow

import (
	"strings"
	"unicode/utf8"

	mdwerrors "github.com/msto63/mDW/textx/core/errors"
)

const (
	// DefaultColumns is the wrap width used when none is configured
	DefaultColumns = 72

	// DefaultIndentWidth is the indentation used when none is configured
	DefaultIndentWidth = 2
)

// Wrap breaks every line of s into lines of at most cols characters.
//
// A line is cut after the longest prefix of at most cols characters that
// is followed by a space or the end of the line; the spaces at the cut are
// dropped. A line without such a prefix is cut hard after cols characters.
// Existing line breaks ("\n" or "\r\n") are kept, every output line ends
// with "\n" and blank lines are preserved.
func Wrap(s string, cols int) (string, error) {
	if cols < 1 {
		return "", mdwerrors.InvalidArgument(mdwerrors.ModuleReflow, "Wrap", "cols", cols, ">= 1")
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/cols + 1)
	for _, line := range Lines(s) {
		wrapLine(&b, trimTerminator(line), cols)
	}
	return b.String(), nil
}

// wrapLine counts columns per rune; an invalid byte is one column and is
// copied unchanged.
func wrapLine(b *strings.Builder, line string, cols int) {
	if line == "" {
		b.WriteByte('\n')
		return
	}

	starts := runeStarts(line)
	n := len(starts) - 1
	for pos := 0; pos < n; {
		if n-pos <= cols {
			writeLine(b, line[starts[pos]:])
			return
		}

		cut := 0
		for k := cols; k >= 1; k-- {
			if line[starts[pos+k]] == ' ' {
				cut = k
				break
			}
		}

		if cut == 0 {
			writeLine(b, line[starts[pos]:starts[pos+cols]])
			pos += cols
			continue
		}

		writeLine(b, line[starts[pos]:starts[pos+cut]])
		pos += cut
		for pos < n && line[starts[pos]] == ' ' {
			pos++
		}
	}
}

// runeStarts returns the byte offset of every rune of s followed by len(s)
func runeStarts(s string) []int {
	starts := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		starts = append(starts, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return append(starts, len(s))
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteByte('\n')
}

// Indent prepends width spaces to every line of s. Unless keepExisting is
// set, leading ASCII white space (space, tab, vertical tab, form feed) of
// each line is removed first. Line terminators
// are kept as they are and blank lines are not dropped.
func Indent(s string, width int, keepExisting bool) (string, error) {
	if width < 0 {
		return "", mdwerrors.InvalidArgument(mdwerrors.ModuleReflow, "Indent", "width", width, ">= 0")
	}
	return indent(s, width, keepExisting), nil
}

// Dedent removes leading whitespace from every line of s
func Dedent(s string) string {
	return indent(s, 0, false)
}

func indent(s string, width int, keepExisting bool) string {
	if s == "" {
		return ""
	}

	prefix := strings.Repeat(" ", width)
	var b strings.Builder
	b.Grow(len(s) + width*(strings.Count(s, "\n")+1))
	for _, line := range Lines(s) {
		if !keepExisting {
			line = strings.TrimLeftFunc(line, isHorizontalSpace)
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}

// isHorizontalSpace reports ASCII white space other than line terminators
func isHorizontalSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f':
		return true
	}
	return false
}

// Lines splits s after every "\n". Terminators stay attached to their
// line; a final line without terminator is returned as well. The empty
// string has no lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
