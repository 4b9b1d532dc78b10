package interpreter

import (
	"fmt"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/value"
)

func (i *Interpreter) execExpressionStmt(stmt *ast.ExpressionStmt) error {
	_, err := i.evalExpr(stmt.Expression)
	return err
}

func (i *Interpreter) execPrintStmt(stmt *ast.PrintStmt) error {
	v, err := i.evalExpr(stmt.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, v.String())
	return nil
}

func (i *Interpreter) execDeclaration(stmt *ast.Declaration) error {
	v, err := i.evalExpr(stmt.Initializer)
	if err != nil {
		return err
	}
	i.env.Define(stmt.Name, v)
	return nil
}

// execBlock forks a fresh scope, runs every child in order, and joins
// the scope on every exit path — including the error path, which is the
// one non-trivial resource invariant the environment stack has.
func (i *Interpreter) execBlock(block *ast.Block) error {
	i.env.Fork()
	defer i.env.Join()

	for _, stmt := range block.Statements {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execIfStmt(stmt *ast.IfStmt) error {
	test, err := i.evalExpr(stmt.Test)
	if err != nil {
		return err
	}
	if value.Truthy(test) {
		return i.execStmt(stmt.WhenTrue)
	}
	if stmt.WhenFalse != nil {
		return i.execStmt(stmt.WhenFalse)
	}
	return nil
}

func (i *Interpreter) execWhileStmt(stmt *ast.WhileStmt) error {
	for {
		test, err := i.evalExpr(stmt.Test)
		if err != nil {
			return err
		}
		if !value.Truthy(test) {
			return nil
		}
		if err := i.execStmt(stmt.Body); err != nil {
			return err
		}
	}
}
