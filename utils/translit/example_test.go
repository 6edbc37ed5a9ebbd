// File: example_test.go
// Title: Example Tests for translit Package Documentation
// Description: Executable examples for ASCII transliteration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial example implementation

package translit_test

import (
	"fmt"

	"golang.org/x/text/transform"

	"github.com/msto63/mDW/textx/utils/translit"
)

func ExampleToASCII() {
	fmt.Println(translit.ToASCII("Mötörhéäd vom Faß"))
	// Output: Moetoerheaed vom Fass
}

func ExampleTransformer() {
	out, _, err := transform.String(translit.Transformer(), "½ Maß Bier")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: Half Mass Bier
}
