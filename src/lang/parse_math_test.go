package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMath(t *testing.T) {
	tests := []struct {
		input    string
		expected Term
	}{
		{
			input:    `\x. x`,
			expected: ab("x", vr("x")),
		},
		{
			input:    "λx. x",
			expected: ab("x", vr("x")),
		},
		{
			input:    "λx. λy. x",
			expected: ab("x", ab("y", vr("x"))),
		},
		{
			input:    "λf. λx. f x",
			expected: ab("f", ab("x", ap(vr("f"), vr("x")))),
		},
		{
			input:    "λx. x + 1",
			expected: ab("x", ap(ap(vr("x"), vr("+")), vr("1"))),
		},
		{
			input:    "f x y",
			expected: ap(ap(vr("f"), vr("x")), vr("y")),
		},
		{
			input:    "x",
			expected: vr("x"),
		},
		{
			input:    "λx.",
			expected: ab("x", ct("")),
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseMath(test.input), "input is:\n%s", test.input)
	}
}

// Rendered notation of binder chains over simple application spines
// reparses to the same tree.
func TestParseMathRoundTrip(t *testing.T) {
	terms := []Term{
		ab("x", vr("x")),
		ab("f", ab("x", ap(vr("f"), vr("x")))),
		ab("x", ab("y", ab("z", ap(ap(vr("x"), vr("y")), vr("z"))))),
		ap(ap(vr("f"), vr("x")), vr("y")),
	}

	for _, term := range terms {
		assert.Equal(t, term, ParseMath(Notation(term)), "term is:\n%s", Notation(term))
	}
}
