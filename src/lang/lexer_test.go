package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	tokens, err := Lex("(x) => x * 2")
	assert.NoError(t, err)

	ids := []int{}
	literals := []string{}
	for _, token := range tokens {
		ids = append(ids, tokenID(token))
		literals = append(literals, token.Literal)
	}
	assert.Equal(t, []int{LPAREN, IDENTIFIER, RPAREN, ARROW, IDENTIFIER, OPERATOR, NUMBER}, ids)
	assert.Equal(t, []string{"(", "x", ")", "=>", "x", "*", "2"}, literals)
}

func TestLexKeywords(t *testing.T) {
	tokens, err := Lex("function f(a) { return a; }")
	assert.NoError(t, err)

	ids := []int{}
	for _, token := range tokens {
		ids = append(ids, tokenID(token))
	}
	assert.Equal(t, []int{FUNCTION, IDENTIFIER, LPAREN, IDENTIFIER, RPAREN, LBRACE, RETURN, IDENTIFIER, SEMICOLON, RBRACE}, ids)
}

func TestLexUnknownToken(t *testing.T) {
	_, err := Lex("@")
	assert.Error(t, err)

	var codeErr *CodeError
	assert.ErrorAs(t, err, &codeErr)
}

func TestLexEmpty(t *testing.T) {
	_, err := Lex("")
	assert.EqualError(t, err, "no token")
}
