// File: table.go
// Title: ASCII Transliteration Table
// Description: The ordered replacement table used to fold accented
//              letters, ligatures and fractions into ASCII.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package translit

// Replacement replaces each of Sources with Target
type Replacement struct {
	Sources []string
	Target  string
}

// replacements is applied in order. Every source is a single non-ASCII
// rune and every target is ASCII.
var replacements = []Replacement{
	{[]string{"á", "à", "â", "ã"}, "a"},
	{[]string{"ä", "æ"}, "ae"},
	{[]string{"Á", "À", "Â", "Ã"}, "A"},
	{[]string{"Ä", "Æ"}, "Ae"},
	{[]string{"ç"}, "c"},
	{[]string{"Ç"}, "C"},
	{[]string{"é", "è", "ê", "ë"}, "e"},
	{[]string{"É", "È", "Ê", "Ë"}, "E"},
	{[]string{"í", "ì", "î", "ï"}, "i"},
	{[]string{"Í", "Ì", "Î", "Ï"}, "I"},
	{[]string{"ó", "ò", "ô", "õ"}, "o"},
	{[]string{"ö", "œ"}, "oe"},
	{[]string{"Ó", "Ò", "Ô", "Õ"}, "O"},
	{[]string{"Ö", "Œ"}, "Oe"},
	{[]string{"ú", "ù", "û"}, "u"},
	{[]string{"ü"}, "ue"},
	{[]string{"Ú", "Ù", "Û"}, "U"},
	{[]string{"Ü"}, "Ue"},
	{[]string{"ß"}, "ss"},
	{[]string{"ñ"}, "n"},
	{[]string{"Ñ"}, "N"},
	{[]string{"¼"}, "Quarter"},
	{[]string{"½"}, "Half"},
}

// byRune indexes replacements for the streaming transformer
var byRune = func() map[rune]string {
	m := make(map[rune]string)
	for _, rep := range replacements {
		for _, src := range rep.Sources {
			r := []rune(src)[0]
			m[r] = rep.Target
		}
	}
	return m
}()

// Table returns a copy of the replacement table in application order
func Table() []Replacement {
	out := make([]Replacement, len(replacements))
	for i, rep := range replacements {
		out[i] = Replacement{
			Sources: append([]string(nil), rep.Sources...),
			Target:  rep.Target,
		}
	}
	return out
}
