/*
Package ast defines the syntax tree produced by the parser and consumed by
the interpreter and the debug printer.

Unlike the teacher's node.go, nodes here do not implement a NodeVisitor;
the two consumers of this tree (interpreter, print) type-switch directly,
the same way the teacher's own evaluator actually dispatches.
*/
package ast

import "github.com/wisplang/wisp/value"

// Expr is any expression node. exprNode is a marker method: only types in
// this package may implement Expr.
type Expr interface {
	Line() int
	exprNode()
}

// Stmt is any statement node. stmtNode is a marker method: only types in
// this package may implement Stmt.
type Stmt interface {
	Line() int
	stmtNode()
}

// Binary is a left-op-right expression for arithmetic, comparison, and
// equality operators.
type Binary struct {
	LeftExpr  Expr
	Operator  string
	RightExpr Expr
	Ln        int
}

func (b *Binary) Line() int { return b.Ln }
func (*Binary) exprNode()   {}

// Logical is `and`/`or`. Kept distinct from Binary because it short-
// circuits and never coerces its result to a boolean.
type Logical struct {
	LeftExpr  Expr
	Operator  string
	RightExpr Expr
	Ln        int
}

func (l *Logical) Line() int { return l.Ln }
func (*Logical) exprNode()   {}

// Grouping is a parenthesized expression; transparent at evaluation time,
// kept only so the debug printer can round-trip source structure.
type Grouping struct {
	Inner Expr
	Ln    int
}

func (g *Grouping) Line() int { return g.Ln }
func (*Grouping) exprNode()   {}

// Literal wraps a runtime value produced directly by a token: string,
// integer, number, boolean, or nil.
type Literal struct {
	Val value.Value
	Ln  int
}

func (l *Literal) Line() int { return l.Ln }
func (*Literal) exprNode()   {}

// Unary is a prefix `+ - !` applied to a single operand.
type Unary struct {
	Operator string
	Operand  Expr
	Ln       int
}

func (u *Unary) Line() int { return u.Ln }
func (*Unary) exprNode()   {}

// Ternary is `test ? when_true : when_false`.
type Ternary struct {
	Test      Expr
	WhenTrue  Expr
	WhenFalse Expr
	Ln        int
}

func (t *Ternary) Line() int { return t.Ln }
func (*Ternary) exprNode()   {}

// Variable is a bare identifier reference, resolved against the
// environment at evaluation time.
type Variable struct {
	Name string
	Ln   int
}

func (v *Variable) Line() int { return v.Ln }
func (*Variable) exprNode()   {}

// Assignment is `name = value`. The parser only ever builds this with a
// Variable on the left; there is no general lvalue expression.
type Assignment struct {
	Name  string
	Value Expr
	Ln    int
}

func (a *Assignment) Line() int { return a.Ln }
func (*Assignment) exprNode()   {}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
	Ln         int
}

func (e *ExpressionStmt) Line() int { return e.Ln }
func (*ExpressionStmt) stmtNode()   {}

// PrintStmt evaluates an expression and writes its displayed form.
type PrintStmt struct {
	Expression Expr
	Ln         int
}

func (p *PrintStmt) Line() int { return p.Ln }
func (*PrintStmt) stmtNode()   {}

// Declaration is `var name = initializer;`.
type Declaration struct {
	Name        string
	Initializer Expr
	Ln          int
}

func (d *Declaration) Line() int { return d.Ln }
func (*Declaration) stmtNode()   {}

// Block is `{ declaration* }`. Evaluating it forks a new scope before its
// children and joins it afterward, on every exit path.
type Block struct {
	Statements []Stmt
	Ln         int
}

func (b *Block) Line() int { return b.Ln }
func (*Block) stmtNode()   {}

// IfStmt is `if (test) whenTrue (else whenFalse)?`. WhenFalse is nil when
// there is no else clause.
type IfStmt struct {
	Test      Expr
	WhenTrue  Stmt
	WhenFalse Stmt
	Ln        int
}

func (i *IfStmt) Line() int { return i.Ln }
func (*IfStmt) stmtNode()   {}

// WhileStmt is `while (test) body`. The parser also uses this to desugar
// `for` loops: a for-loop becomes a Block wrapping an optional
// initializer statement and a WhileStmt. When the loop has an update
// expression, the WhileStmt's Body is a Block containing the original body
// followed by the update; otherwise Body is the original body itself.
type WhileStmt struct {
	Test Expr
	Body Stmt
	Ln   int
}

func (w *WhileStmt) Line() int { return w.Ln }
func (*WhileStmt) stmtNode()   {}
