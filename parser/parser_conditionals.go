package parser

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
)

// if := "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() (ast.Stmt, *ParseError) {
	line := p.advance().Line // consume "if"
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
	whenTrue, serr := p.statement()
	if serr != nil {
		return nil, serr
	}
	var whenFalse ast.Stmt
	if p.match(lexer.Else) {
		whenFalse, serr = p.statement()
		if serr != nil {
			return nil, serr
		}
	}
	return &ast.IfStmt{Test: test, WhenTrue: whenTrue, WhenFalse: whenFalse, Ln: line}, nil
}
