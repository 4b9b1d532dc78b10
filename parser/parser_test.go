package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	scanner := lexer.NewScanner(src)
	tokens, errs := scanner.ScanTokens()
	require.Empty(t, errs)
	stmts, err := New(tokens).Parse()
	require.NoError(t, err)
	return stmts
}

func TestParse_VarDeclarationAndPrint(t *testing.T) {
	stmts := parse(t, `var x = 1 + 2; print x;`)
	require.Len(t, stmts, 2)
	assert.Equal(t, "(var x (+ 1 2))", ast.PrintStmt(stmts[0]))
	assert.Equal(t, "(print x)", ast.PrintStmt(stmts[1]))
}

func TestParse_TernaryBindsLooserThanLogic(t *testing.T) {
	stmts := parse(t, `print true or false ? 1 : 2;`)
	require.Len(t, stmts, 1)
	assert.Equal(t, "(print (?: (or true false) 1 2))", ast.PrintStmt(stmts[0]))
}

func TestParse_AssignmentRightAssociative(t *testing.T) {
	stmts := parse(t, `var a = 0; var b = 0; a = b = 3;`)
	require.Len(t, stmts, 3)
	assert.Equal(t, "(; (= a (= b 3)))", ast.PrintStmt(stmts[2]))
}

func TestParse_IfElse(t *testing.T) {
	stmts := parse(t, `if (x) print 1; else print 2;`)
	require.Len(t, stmts, 1)
	assert.Equal(t, "(if x (print 1) (print 2))", ast.PrintStmt(stmts[0]))
}

func TestParse_WhileLoop(t *testing.T) {
	stmts := parse(t, `while (x) { x = x - 1; }`)
	require.Len(t, stmts, 1)
	assert.Equal(t, "(while x (block (; (= x (- x 1)))))", ast.PrintStmt(stmts[0]))
}

func TestParse_ForLoopDesugarsToBlockAndWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	assert.IsType(t, &ast.Declaration{}, block.Statements[0])
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	assert.Equal(t, "(< i 3)", ast.PrintExpr(whileStmt.Test))
	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestParse_ForLoopOmittedCondition(t *testing.T) {
	stmts := parse(t, `for (;;) { print 1; }`)
	block := stmts[0].(*ast.Block)
	whileStmt := block.Statements[0].(*ast.WhileStmt)
	assert.Equal(t, "true", ast.PrintExpr(whileStmt.Test))
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	scanner := lexer.NewScanner(`1 + 2 = 3;`)
	tokens, _ := scanner.ScanTokens()
	_, err := New(tokens).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target")
}

func TestParse_InvalidPrefixOperatorRequiresLeftOperand(t *testing.T) {
	scanner := lexer.NewScanner(`print * 2;`)
	tokens, _ := scanner.ScanTokens()
	_, err := New(tokens).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operator requires left operand")
}

func TestParse_MissingSemicolonIsError(t *testing.T) {
	scanner := lexer.NewScanner(`var x = 1`)
	tokens, _ := scanner.ScanTokens()
	_, err := New(tokens).Parse()
	require.Error(t, err)
}

func TestParse_SynchronizationSkipsToNextStatement(t *testing.T) {
	scanner := lexer.NewScanner("var = 1; print 2;")
	tokens, _ := scanner.ScanTokens()
	p := New(tokens)
	_, err := p.Parse()
	require.Error(t, err)
	assert.Len(t, p.errors, 1)
}

func TestParseTopLevelExpression(t *testing.T) {
	scanner := lexer.NewScanner(`1 + 2 * 3`)
	tokens, _ := scanner.ScanTokens()
	stmts, err := New(tokens).ParseTopLevelExpression()
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, "(print (+ 1 (* 2 3)))", ast.PrintStmt(stmts[0]))
}

func TestPrintStmtRoundTripsThroughGrouping(t *testing.T) {
	stmts := parse(t, `print (1 + 2) * 3;`)
	assert.Equal(t, "(print (* (group (+ 1 2)) 3))", ast.PrintStmt(stmts[0]))
}
