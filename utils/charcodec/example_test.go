// File: example_test.go
// Title: Example Tests for charcodec Package Documentation
// Description: Executable examples for the character byte codec.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial example implementation

package charcodec_test

import (
	"fmt"

	"github.com/msto63/mDW/textx/utils/charcodec"
)

func ExampleParse() {
	c, err := charcodec.Parse("ä")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Binary(charcodec.DefaultByteSeparator))
	fmt.Println(c.Hex(charcodec.DefaultByteSeparator))
	fmt.Println(c.Decimal(charcodec.DefaultByteSeparator))
	fmt.Println(c.IsMultiByte())
	// Output:
	// 11000011 10100100
	// C3 A4
	// 195 164
	// true
}

func ExampleToHex() {
	out, _ := charcodec.ToHex("Faß", charcodec.DefaultCharSeparator, charcodec.DefaultStringByteSeparator)
	fmt.Println(out)
	// Output: 46 61 C3.9F
}
