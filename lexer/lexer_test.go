package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisplang/wisp/value"
)

type tokenCase struct {
	Input    string
	Expected []TokenType
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `( ) { } , . ; ? :`,
			Expected: []TokenType{LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Semicolon, Question, Colon, EOF},
		},
		{
			Input:    `! != = == > >= < <=`,
			Expected: []TokenType{Bang, BangEqual, Equal, EqualEqual, Greater, GreaterEqual, Less, LessEqual, EOF},
		},
		{
			Input:    `1 + 2 * 3`,
			Expected: []TokenType{LiteralTok, Plus, LiteralTok, Star, LiteralTok, EOF},
		},
	}

	for _, tc := range tests {
		scanner := NewScanner(tc.Input)
		tokens, errs := scanner.ScanTokens()
		assert.Empty(t, errs)
		got := make([]TokenType, len(tokens))
		for i, tok := range tokens {
			got[i] = tok.Type
		}
		assert.Equal(t, tc.Expected, got)
	}
}

func TestScanTokens_Comments(t *testing.T) {
	scanner := NewScanner("1 // this is a comment\n+ 2")
	tokens, errs := scanner.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{LiteralTok, Plus, LiteralTok, EOF}, tokenTypes(tokens))
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_NumericInference(t *testing.T) {
	scanner := NewScanner(`42 3.14 5.`)
	tokens, _ := scanner.ScanTokens()
	assert.Equal(t, value.IntegerKind, tokens[0].Value.Kind())
	assert.Equal(t, value.NumberKind, tokens[1].Value.Kind())
	// "5." leaves the trailing dot unconsumed: Integer(5), Dot
	assert.Equal(t, value.IntegerKind, tokens[2].Value.Kind())
	assert.Equal(t, Dot, tokens[3].Type)
}

func TestScanTokens_StringEscapes(t *testing.T) {
	scanner := NewScanner(`"a\tb\nc\\d\"e"`)
	tokens, errs := scanner.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, "a\tb\nc\\d\"e", tokens[0].Value.String())
}

func TestScanTokens_LineContinuation(t *testing.T) {
	scanner := NewScanner("\"a\\\nb\"")
	tokens, errs := scanner.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, "ab", tokens[0].Value.String())
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	scanner := NewScanner(`"abc`)
	_, errs := scanner.ScanTokens()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unterminated string literal")
}

func TestScanTokens_InvalidEscape(t *testing.T) {
	scanner := NewScanner(`"a\qb"`)
	_, errs := scanner.ScanTokens()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Invalid escape sequence")
}

func TestScanTokens_UnknownCharacterContinuesScanning(t *testing.T) {
	scanner := NewScanner("1 @ 2")
	tokens, errs := scanner.ScanTokens()
	assert.Len(t, errs, 1)
	assert.Equal(t, []TokenType{LiteralTok, LiteralTok, EOF}, tokenTypes(tokens))
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	scanner := NewScanner("var x = true and false or nil while for if else print")
	tokens, errs := scanner.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{
		Var, Identifier, Equal, LiteralTok, And, LiteralTok, Or, LiteralTok, While, For, If, Else, Print, EOF,
	}, tokenTypes(tokens))
}

func TestScanTokens_LineTracking(t *testing.T) {
	scanner := NewScanner("var a = 1;\nvar b = 2;\n")
	tokens, errs := scanner.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, 1, tokens[0].Line)
	// first token of the second statement is on line 2
	var secondLine int
	for _, tok := range tokens {
		if tok.Type == Var {
			secondLine = tok.Line
		}
	}
	assert.Equal(t, 2, secondLine)
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}
