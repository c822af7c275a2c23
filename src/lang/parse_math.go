package lang

import (
	"regexp"
	"strings"
)

var binderSurface = regexp.MustCompile(`^\\\s*([a-zA-Z][a-zA-Z0-9_]*)\s*\.\s*(.*)$`)

// ParseMath converts informal lambda notation. The lambda glyph is
// normalized to a backslash, binders are peeled recursively, and the
// residue is split on whitespace into a left-folded application chain.
func ParseMath(input string) Term {
	src := strings.ReplaceAll(input, "λ", `\`)
	return parseMathTerm(strings.TrimSpace(src), input)
}

func parseMathTerm(src, raw string) Term {
	if m := binderSurface.FindStringSubmatch(src); m != nil {
		rest := strings.TrimSpace(m[2])
		return Abstraction{Param: m[1], Body: parseMathTerm(rest, rest)}
	}

	fields := strings.Fields(src)
	switch len(fields) {
	case 0:
		return Constant{Value: strings.TrimSpace(raw)}
	case 1:
		return Variable{Name: fields[0]}
	}
	term := Term(Variable{Name: fields[0]})
	for _, f := range fields[1:] {
		term = Application{Func: term, Arg: Variable{Name: f}}
	}
	return term
}
