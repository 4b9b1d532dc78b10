/*
Package interpreter walks the statement tree produced by package parser,
evaluating it against a persistent environment.
*/
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/environment"
	"github.com/wisplang/wisp/value"
)

// RuntimeError is any error raised while executing the AST, always
// line-prefixed to match the scanner and parser error conventions.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

func newRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Interpreter holds the one mutable environment that persists across
// successive Run calls, which is what gives the REPL its persistence:
// a variable declared on one line is visible on the next.
type Interpreter struct {
	env *environment.Environment
	out io.Writer
}

// New creates an Interpreter with a fresh global environment, writing
// print output to stdout.
func New() *Interpreter {
	return &Interpreter{env: environment.New(), out: os.Stdout}
}

// SetWriter redirects print output, used by tests to capture output
// without touching stdout.
func (i *Interpreter) SetWriter(w io.Writer) {
	i.out = w
}

// Run executes statements in order against the interpreter's environment.
// It stops at the first runtime error.
func (i *Interpreter) Run(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExpressionStmt:
		return i.execExpressionStmt(stmt)
	case *ast.PrintStmt:
		return i.execPrintStmt(stmt)
	case *ast.Declaration:
		return i.execDeclaration(stmt)
	case *ast.Block:
		return i.execBlock(stmt)
	case *ast.IfStmt:
		return i.execIfStmt(stmt)
	case *ast.WhileStmt:
		return i.execWhileStmt(stmt)
	default:
		return newRuntimeError(stmt.Line(), "unknown statement type %T", stmt)
	}
}

func (i *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch expr := expr.(type) {
	case *ast.Grouping:
		return i.evalGrouping(expr)
	case *ast.Literal:
		return i.evalLiteral(expr)
	case *ast.Unary:
		return i.evalUnary(expr)
	case *ast.Logical:
		return i.evalLogical(expr)
	case *ast.Binary:
		return i.evalBinary(expr)
	case *ast.Ternary:
		return i.evalTernary(expr)
	case *ast.Variable:
		return i.evalVariable(expr)
	case *ast.Assignment:
		return i.evalAssignment(expr)
	default:
		return nil, newRuntimeError(expr.Line(), "unknown expression type %T", expr)
	}
}
