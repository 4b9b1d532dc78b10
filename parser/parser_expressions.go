package parser

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
)

// expression := assignment
func (p *Parser) expression() (ast.Expr, *ParseError) {
	return p.assignment()
}

// assignment := ID "=" assignment | ternary
func (p *Parser) assignment() (ast.Expr, *ParseError) {
	lhs, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.Equal) {
		return lhs, nil
	}
	equalsLine := p.previous().Line
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	variable, ok := lhs.(*ast.Variable)
	if !ok {
		return nil, newParseError(equalsLine, "Invalid assignment target")
	}
	return &ast.Assignment{Name: variable.Name, Value: value, Ln: variable.Ln}, nil
}

// ternary := logicOr ("?" logicOr ":" logicOr)?
func (p *Parser) ternary() (ast.Expr, *ParseError) {
	test, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.Question) {
		return test, nil
	}
	line := p.previous().Line
	whenTrue, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if _, cerr := p.consume(lexer.Colon, "':'"); cerr != nil {
		return nil, cerr
	}
	whenFalse, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Test: test, WhenTrue: whenTrue, WhenFalse: whenFalse, Ln: line}, nil
}

// logicOr := logicAnd ("or" logicAnd)*
func (p *Parser) logicOr() (ast.Expr, *ParseError) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.Or) {
		operator := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{LeftExpr: expr, Operator: string(operator.Type), RightExpr: right, Ln: expr.Line()}
	}
	return expr, nil
}

// logicAnd := equality ("and" equality)*
func (p *Parser) logicAnd() (ast.Expr, *ParseError) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.And) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{LeftExpr: expr, Operator: string(operator.Type), RightExpr: right, Ln: expr.Line()}
	}
	return expr, nil
}

// equality := comparison (("==" | "!=") comparison)*
func (p *Parser) equality() (ast.Expr, *ParseError) {
	return p.binary(p.comparison, lexer.EqualEqual, lexer.BangEqual)
}

// comparison := addition ((">" | ">=" | "<" | "<=") addition)*
func (p *Parser) comparison() (ast.Expr, *ParseError) {
	return p.binary(p.addition, lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual)
}

// addition := mult (("+" | "-") mult)*
func (p *Parser) addition() (ast.Expr, *ParseError) {
	return p.binary(p.multiplication, lexer.Plus, lexer.Minus)
}

// mult := unary (("*" | "/") unary)*
func (p *Parser) multiplication() (ast.Expr, *ParseError) {
	return p.binary(p.unary, lexer.Star, lexer.Slash)
}

// binary factors out the shared left-associative loop shared by equality,
// comparison, addition, and multiplication: the productions differ only
// in their next-higher-precedence parser and their operator set.
func (p *Parser) binary(next func() (ast.Expr, *ParseError), ops ...lexer.TokenType) (ast.Expr, *ParseError) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchAny(ops...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{LeftExpr: expr, Operator: string(operator.Type), RightExpr: right, Ln: expr.Line()}
	}
	return expr, nil
}

func (p *Parser) matchAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// unary := ("+" | "-") unary | primary
//
// A binary operator appearing where a unary/primary is expected (e.g.
// leading `* 2`) is reported as a missing left operand rather than as an
// unrecognised primary; the attempted right operand is still consumed so
// the cursor lands past it, aiding REPL diagnostics. `!` is not a unary
// operator in this grammar, so a leading `!` falls into the same
// missing-left-operand case.
func (p *Parser) unary() (ast.Expr, *ParseError) {
	switch p.peek().Type {
	case lexer.Plus, lexer.Minus:
		operator := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: string(operator.Type), Operand: operand, Ln: operator.Line}, nil
	case lexer.Star, lexer.Slash, lexer.EqualEqual, lexer.BangEqual, lexer.Greater, lexer.GreaterEqual,
		lexer.Less, lexer.LessEqual, lexer.And, lexer.Or, lexer.Bang:
		operator := p.advance()
		p.primary() //nolint:errcheck // best-effort consumption of the attempted right operand
		return nil, newParseError(operator.Line, "'%s' operator requires left operand", operator.Lexeme)
	default:
		return p.primary()
	}
}

// primary := LITERAL | ID | "(" expression ")"
func (p *Parser) primary() (ast.Expr, *ParseError) {
	tok := p.peek()
	switch tok.Type {
	case lexer.LiteralTok:
		p.advance()
		return &ast.Literal{Val: tok.Value, Ln: tok.Line}, nil
	case lexer.Identifier:
		p.advance()
		return &ast.Variable{Name: tok.Lexeme, Ln: tok.Line}, nil
	case lexer.LeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, cerr := p.consume(lexer.RightParen, "')'"); cerr != nil {
			return nil, cerr
		}
		return &ast.Grouping{Inner: expr, Ln: tok.Line}, nil
	default:
		return nil, newParseError(tok.Line, "Unexpected token '%s'; expected expression", tok.Lexeme)
	}
}
