package lang

import (
	"fmt"
	"strings"
)

// Notation renders a term in canonical lambda notation. Application
// arguments are parenthesized exactly when they are themselves
// abstractions or applications.
func Notation(t Term) string {
	switch t := t.(type) {
	case Variable:
		return t.Name
	case Constant:
		return constantString(t)
	case Abstraction:
		return "λ" + t.Param + ". " + Notation(t.Body)
	case Application:
		arg := Notation(t.Arg)
		if needsParens(t.Arg) {
			arg = "(" + arg + ")"
		}
		return Notation(t.Func) + " " + arg
	}
	return ""
}

// CurriedForm collapses a chain of nested abstractions into a single
// header of space-separated parameters. Other terms render as Notation.
func CurriedForm(t Term) string {
	abs, ok := t.(Abstraction)
	if !ok {
		return Notation(t)
	}
	params := []string{}
	body := Term(abs)
	for {
		a, ok := body.(Abstraction)
		if !ok {
			break
		}
		params = append(params, a.Param)
		body = a.Body
	}
	return "λ" + strings.Join(params, " ") + ". " + Notation(body)
}

func needsParens(t Term) bool {
	switch t.(type) {
	case Abstraction, Application:
		return true
	}
	return false
}

func constantString(c Constant) string {
	if s, ok := c.Value.(string); ok {
		return s
	}
	return fmt.Sprint(c.Value)
}
