/*
Package wisp wires the scanner, parser, and interpreter into a single
entry point used by both the file runner and the REPL.
*/
package wisp

import (
	"fmt"
	"strings"

	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
)

// Run scans, parses, and interprets source against interp. When
// allowTopLevelExpression is true and the source does not parse as a
// statement vector, Run retries by reinterpreting it as a single
// expression wrapped in an implicit print — the REPL's fallback for
// lines like `1 + 2` that aren't valid standalone statements. If the
// fallback also fails, the original parse error is returned, not the
// fallback's.
func Run(source string, interp *interpreter.Interpreter, allowTopLevelExpression bool) error {
	scanner := lexer.NewScanner(source)
	tokens, scanErrs := scanner.ScanTokens()
	if len(scanErrs) > 0 {
		var messages []string
		for _, e := range scanErrs {
			messages = append(messages, e.Error())
		}
		return fmt.Errorf("failed to scan:\n%s", strings.Join(messages, "\n"))
	}

	p := parser.New(tokens)
	statements, err := p.Parse()
	if err != nil {
		if !allowTopLevelExpression {
			return err
		}
		fallback, fallbackErr := parser.New(tokens).ParseTopLevelExpression()
		if fallbackErr != nil {
			return err
		}
		statements = fallback
	}

	return interp.Run(statements)
}
