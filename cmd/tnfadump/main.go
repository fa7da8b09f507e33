// Command tnfadump compiles a pattern given on the command line and
// prints its disassembled bytecode, or the parse diagnostic if it
// does not compile.
package main

import (
	"fmt"
	"os"

	"github.com/chronoscope/tnfa"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <pattern>\n", os.Args[0])
		os.Exit(2)
	}
	pattern := os.Args[1]

	if err := tnfa.Validate(pattern); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prog, err := tnfa.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := prog.Dump(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
