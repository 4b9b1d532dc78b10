package parser

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/value"
)

// while := "while" "(" expression ")" statement
func (p *Parser) whileStatement() (ast.Stmt, *ParseError) {
	line := p.advance().Line // consume "while"
	if _, err := p.consume(lexer.LeftParen, "'('"); err != nil {
		return nil, err
	}
	test, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, cerr := p.consume(lexer.RightParen, "')'"); cerr != nil {
		return nil, cerr
	}
	body, serr := p.statement()
	if serr != nil {
		return nil, serr
	}
	return &ast.WhileStmt{Test: test, Body: body, Ln: line}, nil
}

// for := "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// Desugars `for (init; cond; update) body` into
// `{ init; while (cond) { body; update; } }`. An absent condition becomes
// the literal `true`; an absent init or update produces no corresponding
// statement. Both semicolons inside the clause are required: a missing
// one is a propagated ParseError, not silently swallowed.
func (p *Parser) forStatement() (ast.Stmt, *ParseError) {
	line := p.advance().Line // consume "for"
	if _, err := p.consume(lexer.LeftParen, "'('"); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	switch {
	case p.match(lexer.Semicolon):
		// no initializer
	case p.check(lexer.Var):
		p.advance()
		decl, err := p.varDeclaration()
		if err != nil {
			return nil, err
		}
		initializer = decl
	default:
		stmt, err := p.expressionStatement()
		if err != nil {
			return nil, err
		}
		initializer = stmt
	}

	var condition ast.Expr
	if !p.check(lexer.Semicolon) {
		cond, err := p.expression()
		if err != nil {
			return nil, err
		}
		condition = cond
	} else {
		condition = &ast.Literal{Val: value.True, Ln: line}
	}
	if _, err := p.consume(lexer.Semicolon, "';'"); err != nil {
		return nil, err
	}

	var update ast.Expr
	if !p.check(lexer.RightParen) {
		upd, err := p.expression()
		if err != nil {
			return nil, err
		}
		update = upd
	}
	if _, err := p.consume(lexer.RightParen, "')'"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if update != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: update, Ln: update.Line()}}, Ln: line}
	}

	loop := &ast.WhileStmt{Test: condition, Body: body, Ln: line}
	statements := []ast.Stmt{loop}
	if initializer != nil {
		statements = []ast.Stmt{initializer, loop}
	}
	return &ast.Block{Statements: statements, Ln: line}, nil
}
