package parser

import "github.com/wisplang/wisp/lexer"

func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token has type t.
func (p *Parser) match(t lexer.TokenType) bool {
	if !p.check(t) {
		return false
	}
	p.advance()
	return true
}

// consume advances past a token of type t, or fails with a ParseError at
// the current line describing what was expected instead.
func (p *Parser) consume(t lexer.TokenType, what string) (lexer.Token, *ParseError) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, newParseError(p.peek().Line, "Expected %s but got '%s'", what, p.peek().Lexeme)
}
