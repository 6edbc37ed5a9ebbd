// File: example_test.go
// Title: Example Tests for reflow Package Documentation
// Description: Executable examples for wrapping and indenting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial example implementation

package reflow_test

import (
	"fmt"

	"github.com/msto63/mDW/textx/utils/reflow"
)

func ExampleWrap() {
	out, err := reflow.Wrap("Hello.\nHere we are.\nWhere are you?", 12)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// Hello.
	// Here we are.
	// Where are
	// you?
}

func ExampleIndent() {
	out, _ := reflow.Indent("eins\n zwei\n  drei", 1, true)
	fmt.Println(out)
	// Output:
	//  eins
	//   zwei
	//    drei
}
