// File: example_test.go
// Title: Example Tests for sanitize Package Documentation
// Description: Executable examples for the sanitizers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial example implementation

package sanitize_test

import (
	"fmt"

	"github.com/msto63/mDW/textx/utils/sanitize"
)

func ExampleUrlify() {
	fmt.Println(sanitize.Urlify("L'Alsace - pas très Français"))
	// Output: L_Alsace---pas-tres-Francais
}

func ExampleBaseFilename() {
	fmt.Println(sanitize.BaseFilename("Grüße an Köln.txt"))
	// Output: Gruesse_an_Koeln.txt
}
