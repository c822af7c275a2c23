package lang

import (
	"errors"
	"strings"

	"github.com/macrat/simplexer"
)

const (
	FUNCTION = iota
	CONST
	RETURN
	IDENTIFIER
	NUMBER
	STRING
	ARROW
	ASSIGN
	COMMA
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	SEMICOLON
	OPERATOR
)

// Lex tokenizes the code surface syntax: just enough of a C-family
// grammar to recognize one parameter list and one expression.
func Lex(code string) ([]*simplexer.Token, error) {
	reader := strings.NewReader(code)
	l := simplexer.NewLexer(reader)

	l.TokenTypes = []simplexer.TokenType{
		simplexer.NewRegexpTokenType(FUNCTION, "function"),
		simplexer.NewRegexpTokenType(CONST, "const"),
		simplexer.NewRegexpTokenType(RETURN, "return"),
		simplexer.NewRegexpTokenType(IDENTIFIER, `[a-zA-Z_][a-zA-Z0-9_]*`),
		simplexer.NewRegexpTokenType(NUMBER, `[0-9]+(\.[0-9]+)?`),
		simplexer.NewRegexpTokenType(STRING, `"([^"]*)"`),
		simplexer.NewRegexpTokenType(ARROW, `=>`),
		simplexer.NewRegexpTokenType(ASSIGN, `=`),
		simplexer.NewRegexpTokenType(COMMA, `,`),
		simplexer.NewRegexpTokenType(LPAREN, `\(`),
		simplexer.NewRegexpTokenType(RPAREN, `\)`),
		simplexer.NewRegexpTokenType(LBRACE, `\{`),
		simplexer.NewRegexpTokenType(RBRACE, `\}`),
		simplexer.NewRegexpTokenType(SEMICOLON, `;`),
		simplexer.NewRegexpTokenType(OPERATOR, `[-+*/%<>!&|^.?:]+`),
	}

	tokens := []*simplexer.Token{}

	for {
		token, err := l.Scan()

		if err != nil {
			var unknownTokenError simplexer.UnknownTokenError
			if errors.As(err, &unknownTokenError) {
				return nil, NewCodeError(
					NewRangeFromToken(simplexer.Token{
						Literal:  unknownTokenError.Literal,
						Position: unknownTokenError.Position,
					}),
					err.Error(),
				)
			} else {
				return nil, err
			}
		}

		if token == nil {
			break
		}

		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		return nil, NewCodeError(Range{}, "no token")
	}

	return tokens, nil
}

func tokenID(t *simplexer.Token) int {
	return int(t.Type.GetID())
}
