package ast

import (
	"fmt"
	"strings"
)

// PrintExpr renders e as a parenthesized prefix (S-expression) form, e.g.
// `(+ 1 (* 2 3))`. Used by tests to check structural equivalence between
// two parses without comparing Go struct pointers.
func PrintExpr(e Expr) string {
	switch e := e.(type) {
	case *Binary:
		return parenthesize(e.Operator, e.LeftExpr, e.RightExpr)
	case *Logical:
		return parenthesize(e.Operator, e.LeftExpr, e.RightExpr)
	case *Grouping:
		return parenthesize("group", e.Inner)
	case *Literal:
		if e.Val == nil {
			return "nil"
		}
		return e.Val.String()
	case *Unary:
		return parenthesize(e.Operator, e.Operand)
	case *Ternary:
		return parenthesize("?:", e.Test, e.WhenTrue, e.WhenFalse)
	case *Variable:
		return e.Name
	case *Assignment:
		return fmt.Sprintf("(= %s %s)", e.Name, PrintExpr(e.Value))
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(PrintExpr(e))
	}
	sb.WriteByte(')')
	return sb.String()
}

// PrintStmt renders s in the same prefix style as PrintExpr, recursing
// into nested statements and expressions.
func PrintStmt(s Stmt) string {
	switch s := s.(type) {
	case *ExpressionStmt:
		return fmt.Sprintf("(; %s)", PrintExpr(s.Expression))
	case *PrintStmt:
		return fmt.Sprintf("(print %s)", PrintExpr(s.Expression))
	case *Declaration:
		if s.Initializer == nil {
			return fmt.Sprintf("(var %s)", s.Name)
		}
		return fmt.Sprintf("(var %s %s)", s.Name, PrintExpr(s.Initializer))
	case *Block:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, child := range s.Statements {
			sb.WriteByte(' ')
			sb.WriteString(PrintStmt(child))
		}
		sb.WriteByte(')')
		return sb.String()
	case *IfStmt:
		if s.WhenFalse == nil {
			return fmt.Sprintf("(if %s %s)", PrintExpr(s.Test), PrintStmt(s.WhenTrue))
		}
		return fmt.Sprintf("(if %s %s %s)", PrintExpr(s.Test), PrintStmt(s.WhenTrue), PrintStmt(s.WhenFalse))
	case *WhileStmt:
		return fmt.Sprintf("(while %s %s)", PrintExpr(s.Test), PrintStmt(s.Body))
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}
