/*
Package repl implements the interactive Read-Eval-Print loop: one line
of Wisp source at a time, against a single interpreter that persists
across lines (so a `var` declared on one line is visible on the next).
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wisplang/wisp"
	"github.com/wisplang/wisp/interpreter"
)

const helpText = `Interpreter directives:
    .exit - exit the interpreter
    .help - display this text`

var (
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgCyan)
)

// REPL is an interactive session: a prompt string and a banner shown
// once at startup.
type REPL struct {
	Prompt string
	Banner string
}

// New creates a REPL with Wisp's default prompt and banner.
func New() *REPL {
	return &REPL{Prompt: "wisp> ", Banner: "Wisp interactive shell. Type '.help' for directives, '.exit' to quit."}
}

// Run starts the read-eval-print loop, reading lines via readline (for
// history and line editing) and writing to w until EOF or `.exit`.
func (r *REPL) Run(w io.Writer) error {
	bannerColor.Fprintln(w, r.Banner)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return fmt.Errorf("repl: failed to start readline: %w", err)
	}
	defer rl.Close()

	interp := interpreter.New()
	interp.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Goodbye")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			directive("", w)
			continue
		}

		if strings.HasPrefix(line, ".") {
			if directive(line, w) {
				return nil
			}
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(w, interp, line)
	}
}

// directive handles a leading-dot interpreter command, or an empty line
// (treated the same as .help). It returns true when the REPL should exit.
func directive(line string, w io.Writer) bool {
	switch line {
	case ".exit":
		fmt.Fprintln(w, "Goodbye")
		return true
	case ".help", "":
		fmt.Fprintln(w, helpText)
	default:
		errorColor.Fprintf(w, "Unrecognized interpreter directive: %s\n", line)
		fmt.Fprintln(w, helpText)
	}
	return false
}

// evalLine runs one line of source through the shared interpreter,
// allowing the top-level-expression fallback so that a bare expression
// like `1 + 2` prints its value instead of failing to parse as a
// statement. A recovered panic is reported the same way as any other
// runtime error: the REPL keeps running.
func (r *REPL) evalLine(w io.Writer, interp *interpreter.Interpreter, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			errorColor.Fprintf(w, "Runtime error: %v\n", recovered)
		}
	}()

	if err := wisp.Run(line, interp, true); err != nil {
		errorColor.Fprintln(w, err.Error())
	}
}
