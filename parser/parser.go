/*
Package parser implements a hand-written recursive-descent parser that
turns a token stream into a statement tree (package ast).
*/
package parser

import (
	"fmt"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
)

// ParseError reports a single parse failure, line-prefixed like every
// other error surfaced by this implementation.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

func newParseError(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Parser walks a token vector, producing ast.Stmt nodes.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []*ParseError
}

// New creates a Parser over tokens. tokens must be terminated with an EOF
// token, as produced by lexer.Scanner.ScanTokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every parse error accumulated across synchronization,
// not just the first one Parse returns.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// Parse parses the whole token stream as a program. It keeps parsing
// declarations past the first error (synchronising the cursor after
// each), but only the first error encountered is returned; the caller
// does not see the partial statement vector when there was a failure.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return statements, nil
}

// ParseTopLevelExpression reinterprets the whole token stream as a single
// expression wrapped in an implicit print statement, for interactive use
// when a line doesn't parse as a statement.
func (p *Parser) ParseTopLevelExpression() ([]ast.Stmt, error) {
	line := 1
	if len(p.tokens) > 0 {
		line = p.tokens[0].Line
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, newParseError(p.peek().Line, "Unexpected token '%s' after expression", p.peek().Lexeme)
	}
	return []ast.Stmt{&ast.PrintStmt{Expression: expr, Ln: line}}, nil
}

// synchronize discards tokens until a statement-starter keyword or a
// consumed semicolon realigns the cursor with a new declaration. It
// suppresses no error; it only makes subsequent parsing meaningful.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == lexer.Semicolon {
			return
		}
		switch p.peek().Type {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.For, lexer.If, lexer.While, lexer.Print, lexer.Return:
			return
		}
		p.advance()
	}
}
