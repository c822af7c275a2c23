package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetaReduce(t *testing.T) {
	tests := []struct {
		name     string
		term     Term
		expected Term
	}{
		{
			name:     "identity applied to a variable",
			term:     ap(ab("x", vr("x")), vr("y")),
			expected: vr("y"),
		},
		{
			name:     "constant function drops its argument",
			term:     ap(ab("x", vr("z")), vr("y")),
			expected: vr("z"),
		},
		{
			name: "two-step currying",
			term: ap(ap(ab("f", ab("x", ap(vr("f"), vr("x")))), vr("g")), vr("y")),
			expected: ap(vr("g"), vr("y")),
		},
		{
			name:     "redex under a binder",
			term:     ab("y", ap(ab("x", vr("x")), vr("y"))),
			expected: ab("y", vr("y")),
		},
		{
			name:     "normal form stays put",
			term:     ab("x", vr("x")),
			expected: ab("x", vr("x")),
		},
		{
			name:     "application of a free name stays put",
			term:     ap(vr("f"), vr("x")),
			expected: ap(vr("f"), vr("x")),
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, BetaReduce(test.term), "test is:\n%s", test.name)
	}
}

// Reducing a normal form keeps its rendered notation, which is the
// condition under which the facade omits the reduced field.
func TestBetaReduceIdempotent(t *testing.T) {
	term := ab("f", ab("x", ap(vr("f"), vr("x"))))
	assert.Equal(t, Notation(term), Notation(BetaReduce(term)))
}

// A self-application term never normalizes; the step cap has to cut
// the reduction off instead of hanging.
func TestBetaReduceDivergent(t *testing.T) {
	omega := ab("x", ap(vr("x"), vr("x")))
	result := BetaReduce(ap(omega, omega))
	assert.NotNil(t, result)
}

func TestSubstitute(t *testing.T) {
	// free occurrences are replaced wholesale
	assert.Equal(t, vr("y"), substitute(vr("x"), "x", vr("y")))
	// a same-named binder shadows the substitution below it
	assert.Equal(t, ab("x", vr("x")), substitute(ab("x", vr("x")), "x", vr("y")))
	// other binders recurse structurally
	assert.Equal(t, ab("z", vr("y")), substitute(ab("z", vr("x")), "x", vr("y")))
}

// No alpha-renaming happens: a free variable in the replacement is
// captured by an inner binder sharing its name.
func TestSubstituteCapture(t *testing.T) {
	captured := substitute(ab("y", vr("x")), "x", vr("y"))
	assert.Equal(t, ab("y", vr("y")), captured)
}
