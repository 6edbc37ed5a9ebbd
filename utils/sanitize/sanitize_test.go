// File: sanitize_test.go
// Title: Unit Tests for URL and Filename Sanitizers
// Description: Tests Urlify and BaseFilename on accented, punctuated and
//              whitespace-heavy input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package sanitize

import (
	"regexp"
	"testing"
)

func TestUrlify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"french", "L'Alsace - pas très Français", "L_Alsace---pas-tres-Francais"},
		{"german", "Mötörhéäd vom Faß", "Moetoerheaed-vom-Fass"},
		{"whitespace run", "a \t\n\v\f\r b", "a-b"},
		{"dot replaced", "index.html", "index_html"},
		{"unknown letter", "Łódź", "_od_"},
		{"cjk", "日本", "__"},
		{"fractions", "½ Liter", "Half-Liter"},
		{"underscore and hyphen kept", "a_b-c", "a_b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Urlify(tt.input); result != tt.expected {
				t.Errorf("Urlify(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBaseFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"with suffix", "Mein Lebenslauf 2024.pdf", "Mein_Lebenslauf_2024.pdf"},
		{"umlauts", "Grüße an Köln.txt", "Gruesse_an_Koeln.txt"},
		{"slashes", "a/b\\c:d", "a_b_c_d"},
		{"whitespace run", "x  \t y", "x_y"},
		{"french", "L'Alsace - pas très Français", "L_Alsace_-_pas_tres_Francais"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := BaseFilename(tt.input); result != tt.expected {
				t.Errorf("BaseFilename(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestOutputAlphabet(t *testing.T) {
	url := regexp.MustCompile(`^[A-Za-z0-9_-]*$`)
	file := regexp.MustCompile(`^[A-Za-z0-9_.-]*$`)

	inputs := []string{
		"L'Alsace - pas très Français",
		"¿Qué tal? ¡Muy bien!",
		"C:\\Program Files\\Œuvre (1).doc",
		"emoji 😀 and ¼",
	}
	for _, s := range inputs {
		if got := Urlify(s); !url.MatchString(got) {
			t.Errorf("Urlify(%q) = %q contains unsafe characters", s, got)
		}
		if got := BaseFilename(s); !file.MatchString(got) {
			t.Errorf("BaseFilename(%q) = %q contains unsafe characters", s, got)
		}
	}
}

func BenchmarkUrlify(b *testing.B) {
	s := "L'Alsace - pas très Français, Mötörhéäd vom Faß"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Urlify(s)
	}
}
