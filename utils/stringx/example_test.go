// File: example_test.go
// Title: Example Tests for stringx Package Documentation
// Description: Executable examples for the text extension surface.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial example implementation

package stringx_test

import (
	"fmt"

	mdwconfig "github.com/msto63/mDW/textx/core/config"
	"github.com/msto63/mDW/textx/utils/stringx"
)

func ExampleExtender_Urlify() {
	ext := stringx.New()
	slug, err := ext.Urlify("L'Alsace - pas très Français")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(slug)
	// Output: L_Alsace---pas-tres-Francais
}

func ExampleFromConfig() {
	cfg, err := mdwconfig.LoadFromString(`
[wrap]
columns = 12
[codec]
char_separator = "|"
`, mdwconfig.FormatTOML)
	if err != nil {
		fmt.Println(err)
		return
	}

	ext, err := stringx.FromConfig(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	wrapped, _ := ext.Wrap("Where are you?")
	fmt.Print(wrapped)
	hex, _ := ext.ToHex("Faß")
	fmt.Println(hex)
	// Output:
	// Where are
	// you?
	// 46|61|C3.9F
}
