// Command wisp runs Wisp source files or starts an interactive shell.
package main

import (
	"fmt"
	"os"

	"github.com/wisplang/wisp"
	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/repl"
)

func main() {
	if len(os.Args) < 2 {
		if err := repl.New().Run(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	runFile(os.Args[1])
}

// runFile reads a script, runs it to completion, and prints any error to
// stderr. A script error does not produce a non-zero exit code in this
// revision.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	interp := interpreter.New()
	if err := wisp.Run(string(source), interp, false); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
