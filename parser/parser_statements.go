package parser

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
)

// declaration := "var" ID "=" expression ";" | statement
func (p *Parser) declaration() (ast.Stmt, *ParseError) {
	if p.match(lexer.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, *ParseError) {
	line := p.previous().Line
	name, err := p.consume(lexer.Identifier, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Equal, "'='"); err != nil {
		return nil, err
	}
	initializer, verr := p.expression()
	if verr != nil {
		return nil, verr
	}
	if _, err := p.consume(lexer.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.Declaration{Name: name.Lexeme, Initializer: initializer, Ln: line}, nil
}

// statement := print | block | if | while | for | exprStmt
func (p *Parser) statement() (ast.Stmt, *ParseError) {
	switch {
	case p.check(lexer.Print):
		return p.printStatement()
	case p.check(lexer.LeftBrace):
		return p.block()
	case p.check(lexer.If):
		return p.ifStatement()
	case p.check(lexer.While):
		return p.whileStatement()
	case p.check(lexer.For):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

// print := "print" expression ";"
func (p *Parser) printStatement() (ast.Stmt, *ParseError) {
	line := p.advance().Line // consume "print"
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expr, Ln: line}, nil
}

// exprStmt := expression ";"
func (p *Parser) expressionStatement() (ast.Stmt, *ParseError) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr, Ln: expr.Line()}, nil
}

// block := "{" declaration* "}"
func (p *Parser) block() (ast.Stmt, *ParseError) {
	line := p.advance().Line // consume "{"
	var statements []ast.Stmt
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RightBrace, "'}'"); err != nil {
		return nil, err
	}
	return &ast.Block{Statements: statements, Ln: line}, nil
}
