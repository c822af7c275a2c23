package lang

// Result is the record produced by one Abstract call.
type Result struct {
	Input         string   `json:"input"`
	Kind          Kind     `json:"inputKind"`
	Term          Term     `json:"-"`
	Notation      string   `json:"notation"`
	CurriedForm   string   `json:"curriedForm"`
	BetaReduced   string   `json:"betaReduced,omitempty"`
	TypeSignature string   `json:"typeSignature,omitempty"`
	Complexity    int      `json:"complexity"`
	Variables     []string `json:"variables"`
	FreeVariables []string `json:"freeVariables"`
	Success       bool     `json:"success"`
}

// Abstract turns an input string into a lambda calculus term and
// analyzes it. An empty kind means detect; malformed input never
// fails, it degrades to a Constant term per the parsers' policy.
// The call keeps no state and is safe to invoke concurrently.
func Abstract(input string, kind Kind) Result {
	if kind == "" {
		kind = Classify(input)
	}

	var term Term
	switch kind {
	case KindCode:
		term = ParseCode(input)
	case KindMath:
		term = ParseMath(input)
	default:
		kind = KindNatural
		term = ParseNatural(input)
	}

	notation := Notation(term)
	result := Result{
		Input:         input,
		Kind:          kind,
		Term:          term,
		Notation:      notation,
		CurriedForm:   CurriedForm(term),
		TypeSignature: InferType(term),
		Complexity:    Complexity(term),
		Variables:     Variables(term),
		FreeVariables: FreeVariables(term),
		Success:       true,
	}

	if reduced := BetaReduce(term); Notation(reduced) != notation {
		result.BetaReduced = Notation(reduced)
	}
	return result
}
