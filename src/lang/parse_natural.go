package lang

import (
	"regexp"
	"strings"
)

var (
	mapSurface     = regexp.MustCompile(`map\s+(\w+)\s+to\s+(.+)`)
	applySurface   = regexp.MustCompile(`apply\s+(\w+)\s+to\s+(\w+)`)
	composeSurface = regexp.MustCompile(`compose\s+(\w+)\s+and\s+(\w+)`)
)

// ParseNatural matches a small set of phrase templates against the
// lowercased input. Unmatched phrases decay to a Constant holding the
// original text.
func ParseNatural(input string) Term {
	text := strings.ToLower(strings.TrimSpace(input))

	if m := mapSurface.FindStringSubmatch(text); m != nil {
		return Abstraction{Param: m[1], Body: parseNaturalBody(m[2])}
	}
	if m := applySurface.FindStringSubmatch(text); m != nil {
		return Application{Func: Variable{Name: m[1]}, Arg: Variable{Name: m[2]}}
	}
	if m := composeSurface.FindStringSubmatch(text); m != nil {
		return Abstraction{
			Param: "x",
			Body: Application{
				Func: Variable{Name: m[1]},
				Arg:  Application{Func: Variable{Name: m[2]}, Arg: Variable{Name: "x"}},
			},
		}
	}
	return Constant{Value: input}
}

// parseNaturalBody handles the body of a `map X to Y` phrase: another
// template when one matches, otherwise an expression like `f(x)`.
func parseNaturalBody(body string) Term {
	if mapSurface.MatchString(body) || applySurface.MatchString(body) || composeSurface.MatchString(body) {
		return ParseNatural(body)
	}
	return ConvertExpression(body)
}
