// File: translit_test.go
// Title: Unit Tests for ASCII Transliteration
// Description: Tests ToASCII, the streaming transformer, StripMarks and the
//              table accessor.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package translit

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/transform"
)

func TestToASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"ascii unchanged", "Hello, World! 123", "Hello, World! 123"},
		{"band name", "Mötörhéäd vom Faß", "Moetoerheaed vom Fass"},
		{"french", "L'Alsace - pas très Français", "L'Alsace - pas tres Francais"},
		{"ligatures", "æÆœŒ", "aeAeoeOe"},
		{"upper umlauts", "ÄÖÜ", "AeOeUe"},
		{"fractions", "¼ + ½", "Quarter + Half"},
		{"spanish", "Año Ñandú", "Ano Nandu"},
		{"unknown kept", "Łódź ÿ", "Łodź ÿ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ToASCII(tt.input); result != tt.expected {
				t.Errorf("ToASCII(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToASCIIRemovesAllSources(t *testing.T) {
	var all strings.Builder
	for _, rep := range Table() {
		for _, src := range rep.Sources {
			all.WriteString(src)
		}
	}

	result := ToASCII(all.String())
	if !IsASCII(result) {
		t.Errorf("ToASCII of all sources is not ASCII: %q", result)
	}
	for _, rep := range Table() {
		for _, src := range rep.Sources {
			if strings.Contains(result, src) {
				t.Errorf("result still contains %q", src)
			}
		}
	}
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"abc\t\n~", true},
		{"\x7f", true},
		{"ä", false},
		{"\xff", false},
	}

	for _, tt := range tests {
		if result := IsASCII(tt.input); result != tt.expected {
			t.Errorf("IsASCII(%q) = %v; want %v", tt.input, result, tt.expected)
		}
	}
}

func TestTransformerMatchesToASCII(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"Mötörhéäd vom Faß",
		"L'Alsace - pas très Français",
		"¼½ Łódź 日本語",
		strings.Repeat("Grüße aus Köln, ", 500),
	}

	for _, input := range inputs {
		got, _, err := transform.String(Transformer(), input)
		if err != nil {
			t.Fatalf("transform.String(%q) error: %v", input, err)
		}
		if want := ToASCII(input); got != want {
			t.Errorf("Transformer output %q; ToASCII %q", got, want)
		}
	}
}

func TestTransformerStreaming(t *testing.T) {
	input := "Schöne Grüße, ½ Maß"
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(input)), Transformer())
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if got, want := string(out), ToASCII(input); got != want {
		t.Errorf("streamed %q; want %q", got, want)
	}
}

func TestTransformerShortBuffers(t *testing.T) {
	tr := Transformer()

	t.Run("short destination", func(t *testing.T) {
		dst := make([]byte, 3)
		nDst, nSrc, err := tr.Transform(dst, []byte("a½"), true)
		if err != transform.ErrShortDst {
			t.Fatalf("err = %v; want ErrShortDst", err)
		}
		if nDst != 1 || nSrc != 1 {
			t.Errorf("nDst, nSrc = %d, %d; want 1, 1", nDst, nSrc)
		}
	})

	t.Run("incomplete source", func(t *testing.T) {
		dst := make([]byte, 16)
		nDst, nSrc, err := tr.Transform(dst, []byte("a\xc3"), false)
		if err != transform.ErrShortSrc {
			t.Fatalf("err = %v; want ErrShortSrc", err)
		}
		if nDst != 1 || nSrc != 1 {
			t.Errorf("nDst, nSrc = %d, %d; want 1, 1", nDst, nSrc)
		}
	})

	t.Run("invalid byte at EOF", func(t *testing.T) {
		dst := make([]byte, 16)
		nDst, _, err := tr.Transform(dst, []byte("ü\xc3"), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := string(dst[:nDst]); got != "ue\xc3" {
			t.Errorf("got %q; want %q", got, "ue\xc3")
		}
	})
}

func TestStripMarks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii", "cafe", "cafe"},
		{"decomposed acute", "cafe\u0301", "cafe"},
		{"precomposed kept", "caf\u00e9", "caf\u00e9"},
		{"several marks", "a\u0308o\u0308u\u0308", "aou"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := StripMarks(tt.input); result != tt.expected {
				t.Errorf("StripMarks(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTableIsCopy(t *testing.T) {
	table := Table()
	if len(table) != 23 {
		t.Fatalf("len(Table()) = %d; want 23", len(table))
	}
	if table[0].Sources[0] != "á" || table[len(table)-1].Target != "Half" {
		t.Errorf("unexpected table order: first %v, last %v", table[0], table[len(table)-1])
	}

	table[0].Sources[0] = "x"
	table[0].Target = "y"
	if ToASCII("á") != "a" {
		t.Error("mutating Table() changed the package table")
	}
}

func BenchmarkToASCII(b *testing.B) {
	s := strings.Repeat("Mötörhéäd vom Faß ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToASCII(s)
	}
}

func BenchmarkTransformer(b *testing.B) {
	s := strings.Repeat("Mötörhéäd vom Faß ", 20)
	tr := Transformer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = transform.String(tr, s)
	}
}
