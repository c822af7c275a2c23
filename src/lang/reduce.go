package lang

// maxReduceSteps caps how many redexes a single BetaReduce call may
// contract, so divergent terms like (λx. x x) (λx. x x) cannot hang
// the engine.
const maxReduceSteps = 512

// BetaReduce performs one normalizing pass of normal-order reduction:
// function and argument subterms are reduced first, then the outermost
// redex is contracted and the result reduced again, up to the step cap.
func BetaReduce(t Term) Term {
	fuel := maxReduceSteps
	return reduce(t, &fuel)
}

func reduce(t Term, fuel *int) Term {
	if *fuel <= 0 {
		return t
	}
	switch t := t.(type) {
	case Application:
		fn := reduce(t.Func, fuel)
		arg := reduce(t.Arg, fuel)
		if abs, ok := fn.(Abstraction); ok && *fuel > 0 {
			*fuel--
			return reduce(substitute(abs.Body, abs.Param, arg), fuel)
		}
		return Application{Func: fn, Arg: arg}
	case Abstraction:
		return Abstraction{Param: t.Param, Body: reduce(t.Body, fuel), ParamType: t.ParamType}
	default:
		return t
	}
}

// substitute replaces free occurrences of name in t with replacement.
// A binder with the same name shadows the substitution for its whole
// subtree. No alpha-renaming is performed, so a free variable in the
// replacement can be captured by a distinct inner binder that happens
// to share its name.
func substitute(t Term, name string, replacement Term) Term {
	switch t := t.(type) {
	case Variable:
		if t.Name == name {
			return replacement
		}
		return t
	case Abstraction:
		if t.Param == name {
			return t
		}
		return Abstraction{Param: t.Param, Body: substitute(t.Body, name, replacement), ParamType: t.ParamType}
	case Application:
		return Application{
			Func: substitute(t.Func, name, replacement),
			Arg:  substitute(t.Arg, name, replacement),
		}
	default:
		return t
	}
}
