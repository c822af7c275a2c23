package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNatural(t *testing.T) {
	tests := []struct {
		input    string
		expected Term
	}{
		{
			input:    "map x to f(x)",
			expected: ab("x", ap(vr("f"), vr("x"))),
		},
		{
			input:    "map x to x",
			expected: ab("x", vr("x")),
		},
		{
			input:    "Map N to square(n)",
			expected: ab("n", ap(vr("square"), vr("n"))),
		},
		{
			input:    "apply f to x",
			expected: ap(vr("f"), vr("x")),
		},
		{
			input: "compose f and g",
			expected: ab("x", ap(
				vr("f"),
				ap(vr("g"), vr("x")),
			)),
		},
		{
			input:    "map x to map y to x",
			expected: ab("x", ab("y", vr("x"))),
		},
		{
			input:    "just some words",
			expected: ct("just some words"),
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseNatural(test.input), "input is:\n%s", test.input)
	}
}
