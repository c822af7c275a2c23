package lang

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/macrat/simplexer"
)

// arrowSurface is a textual fallback for when the lexer rejects the
// input but an arrow function shape is still recognizable.
var arrowSurface = regexp.MustCompile(`^\s*(?:const\s+\w+\s*=\s*)?\(([^)]*)\)\s*=>\s*(.+)$`)

// ParseCode converts a function or arrow-function declaration into
// nested abstractions around a converted body expression. Anything it
// cannot recognize decays to a Constant holding the source text.
func ParseCode(input string) Term {
	tokens, err := Lex(input)
	if err == nil {
		p := &codeParser{tokens: tokens}
		if term, ok := p.parseFunction(); ok {
			return term
		}
		p.pos = 0
		if term, ok := p.parseArrow(); ok {
			return term
		}
	}
	if m := arrowSurface.FindStringSubmatch(input); m != nil {
		params := []string{}
		for _, p := range strings.Split(m[1], ",") {
			if p = strings.TrimSpace(p); p != "" {
				params = append(params, p)
			}
		}
		return curry(params, ConvertExpression(m[2]))
	}
	return Constant{Value: strings.TrimSpace(input)}
}

// ConvertExpression converts an expression snippet: identifiers, call
// chains and literals. Anything else becomes a parenthesized Constant
// holding the snippet.
func ConvertExpression(src string) Term {
	src = strings.TrimSpace(src)
	tokens, err := Lex(src)
	if err != nil {
		return Constant{Value: src}
	}
	return convertExpr(tokens)
}

type codeParser struct {
	tokens []*simplexer.Token
	pos    int
}

func (p *codeParser) at(id int) bool {
	return p.pos < len(p.tokens) && tokenID(p.tokens[p.pos]) == id
}

func (p *codeParser) atOffset(offset, id int) bool {
	i := p.pos + offset
	return i < len(p.tokens) && tokenID(p.tokens[i]) == id
}

func (p *codeParser) next() *simplexer.Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// until collects tokens up to (not including) the first token matching
// one of the given ids, or the end of the stream.
func (p *codeParser) until(ids ...int) []*simplexer.Token {
	rest := []*simplexer.Token{}
	for p.pos < len(p.tokens) {
		id := tokenID(p.tokens[p.pos])
		for _, stop := range ids {
			if id == stop {
				return rest
			}
		}
		rest = append(rest, p.next())
	}
	return rest
}

// parseFunction recognizes `function name(a, b) { return expr }` with
// the return keyword and function name both optional.
func (p *codeParser) parseFunction() (Term, bool) {
	if !p.at(FUNCTION) {
		return nil, false
	}
	p.next()
	if p.at(IDENTIFIER) {
		p.next()
	}
	params, ok := p.parseParams()
	if !ok || !p.at(LBRACE) {
		return nil, false
	}
	p.next()
	if p.at(RETURN) {
		p.next()
	}
	body := p.until(SEMICOLON, RBRACE)
	if len(body) == 0 {
		return nil, false
	}
	return curry(params, convertExpr(body)), true
}

// parseArrow recognizes `(a, b) => expr` and `x => expr`, with an
// optional `const name =` prefix.
func (p *codeParser) parseArrow() (Term, bool) {
	if p.at(CONST) {
		p.next()
		if !p.at(IDENTIFIER) {
			return nil, false
		}
		p.next()
		if !p.at(ASSIGN) {
			return nil, false
		}
		p.next()
	}
	var params []string
	switch {
	case p.at(LPAREN):
		ps, ok := p.parseParams()
		if !ok {
			return nil, false
		}
		params = ps
	case p.at(IDENTIFIER) && p.atOffset(1, ARROW):
		params = []string{p.next().Literal}
	default:
		return nil, false
	}
	if !p.at(ARROW) {
		return nil, false
	}
	p.next()
	body := p.until(SEMICOLON)
	if len(body) == 0 {
		return nil, false
	}
	return curry(params, convertExpr(body)), true
}

func (p *codeParser) parseParams() ([]string, bool) {
	if !p.at(LPAREN) {
		return nil, false
	}
	p.next()
	params := []string{}
	for !p.at(RPAREN) {
		if !p.at(IDENTIFIER) {
			return nil, false
		}
		params = append(params, p.next().Literal)
		if p.at(COMMA) {
			p.next()
		}
	}
	p.next()
	return params, true
}

// curry wraps a body in one abstraction per parameter, first parameter
// outermost.
func curry(params []string, body Term) Term {
	term := body
	for i := len(params) - 1; i >= 0; i-- {
		term = Abstraction{Param: params[i], Body: term}
	}
	return term
}

// convertExpr recognizes identifiers, literals and call chains like
// `f(x, y)(z)`, left-folding every argument into an Application. Any
// other shape becomes a Constant carrying the parenthesized snippet.
func convertExpr(tokens []*simplexer.Token) Term {
	switch len(tokens) {
	case 0:
		return Constant{Value: ""}
	case 1:
		return convertSingle(tokens[0])
	}

	// unwrap one pair of grouping parens
	if tokenID(tokens[0]) == LPAREN {
		if inner, tail, ok := splitGroup(tokens); ok && len(tail) == 0 {
			return convertExpr(inner)
		}
	}

	if tokenID(tokens[0]) == IDENTIFIER && tokenID(tokens[1]) == LPAREN {
		term := Term(Variable{Name: tokens[0].Literal})
		rest := tokens[1:]
		for len(rest) > 0 && tokenID(rest[0]) == LPAREN {
			group, tail, ok := splitGroup(rest)
			if !ok {
				return fallbackConstant(tokens)
			}
			for _, arg := range splitArgs(group) {
				term = Application{Func: term, Arg: convertExpr(arg)}
			}
			rest = tail
		}
		if len(rest) == 0 {
			return term
		}
	}

	return fallbackConstant(tokens)
}

func convertSingle(t *simplexer.Token) Term {
	switch tokenID(t) {
	case IDENTIFIER:
		return Variable{Name: t.Literal}
	case NUMBER:
		if n, err := strconv.Atoi(t.Literal); err == nil {
			return Constant{Value: n, ValueType: "number"}
		}
		f, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return Constant{Value: t.Literal}
		}
		return Constant{Value: f, ValueType: "number"}
	case STRING:
		return Constant{Value: strings.Trim(t.Literal, `"`), ValueType: "string"}
	default:
		return Constant{Value: t.Literal}
	}
}

func fallbackConstant(tokens []*simplexer.Token) Term {
	literals := []string{}
	for _, t := range tokens {
		literals = append(literals, t.Literal)
	}
	return Constant{Value: "(" + strings.Join(literals, " ") + ")"}
}

// splitGroup splits `( ... ) tail` into the tokens inside the balanced
// parens and the tokens after them.
func splitGroup(tokens []*simplexer.Token) (group, tail []*simplexer.Token, ok bool) {
	depth := 0
	for i, t := range tokens {
		switch tokenID(t) {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			if depth == 0 {
				return tokens[1:i], tokens[i+1:], true
			}
		}
	}
	return nil, nil, false
}

// splitArgs splits a call argument list on top-level commas.
func splitArgs(tokens []*simplexer.Token) [][]*simplexer.Token {
	args := [][]*simplexer.Token{}
	depth := 0
	start := 0
	for i, t := range tokens {
		switch tokenID(t) {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
		case COMMA:
			if depth == 0 {
				args = append(args, tokens[start:i])
				start = i + 1
			}
		}
	}
	if start < len(tokens) {
		args = append(args, tokens[start:])
	}
	return args
}
