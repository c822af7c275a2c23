package lang

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// Variables returns every distinct name appearing as a reference or as
// a binder parameter, in insertion order.
func Variables(t Term) []string {
	return lo.Uniq(collectNames(t))
}

func collectNames(t Term) []string {
	switch t := t.(type) {
	case Variable:
		return []string{t.Name}
	case Abstraction:
		return append([]string{t.Param}, collectNames(t.Body)...)
	case Application:
		return append(collectNames(t.Func), collectNames(t.Arg)...)
	default:
		return nil
	}
}

// FreeVariables returns the names referenced without an enclosing
// binder, in insertion order.
func FreeVariables(t Term) []string {
	return lo.Uniq(freeNames(t, set.New[string](4)))
}

func freeNames(t Term, bound *set.Set[string]) []string {
	switch t := t.(type) {
	case Variable:
		if bound.Contains(t.Name) {
			return nil
		}
		return []string{t.Name}
	case Abstraction:
		inner := bound.Copy()
		inner.Insert(t.Param)
		return freeNames(t.Body, inner)
	case Application:
		return append(freeNames(t.Func, bound), freeNames(t.Arg, bound)...)
	default:
		return nil
	}
}

// Complexity is a structural-depth proxy: leaves count 1, an
// abstraction adds 1 to its body, an application adds 1 to its deeper
// side.
func Complexity(t Term) int {
	switch t := t.(type) {
	case Abstraction:
		return 1 + Complexity(t.Body)
	case Application:
		return 1 + max(Complexity(t.Func), Complexity(t.Arg))
	default:
		return 1
	}
}
