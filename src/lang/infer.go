package lang

import (
	"fmt"
	"strings"
)

const typeArrow = " → "

var typeVarNames = []string{"α", "β", "γ", "δ", "ε", "ζ", "η", "θ"}

// InferType sketches an approximate type signature. Fresh type
// variables are drawn in traversal order; applications take the
// textual codomain of their function's arrow type. This is a display
// heuristic, not unification: nothing checks consistency across the
// term.
func InferType(t Term) string {
	counter := 0
	return inferType(t, &counter)
}

func inferType(t Term, counter *int) string {
	switch t := t.(type) {
	case Variable:
		return freshTypeVar(counter)
	case Constant:
		return constantType(t, counter)
	case Abstraction:
		param := freshTypeVar(counter)
		return param + typeArrow + inferType(t.Body, counter)
	case Application:
		fnType := inferType(t.Func, counter)
		if i := strings.LastIndex(fnType, "→"); i >= 0 {
			return strings.TrimSpace(fnType[i+len("→"):])
		}
		return freshTypeVar(counter)
	}
	return freshTypeVar(counter)
}

// constantType uses a declared value type when the parser recorded
// one, the dynamic kind for real literals, and a fresh type variable
// for raw source-text snippets whose kind is unknowable.
func constantType(c Constant, counter *int) string {
	if c.ValueType != "" {
		return c.ValueType
	}
	switch c.Value.(type) {
	case int, int64, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return freshTypeVar(counter)
	}
}

func freshTypeVar(counter *int) string {
	i := *counter
	*counter++
	if i < len(typeVarNames) {
		return typeVarNames[i]
	}
	return fmt.Sprintf("t%d", i-len(typeVarNames)+1)
}
