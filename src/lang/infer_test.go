package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		term     Term
		expected string
	}{
		{vr("x"), "α"},
		{Constant{Value: 42, ValueType: "number"}, "number"},
		{Constant{Value: 3.5}, "number"},
		{Constant{Value: true}, "boolean"},
		{Constant{Value: "hi", ValueType: "string"}, "string"},
		{ct("(x * 2)"), "α"},
		{ab("x", vr("x")), "α → β"},
		{ab("x", ct("(x * 2)")), "α → β"},
		{ab("x", ab("y", vr("x"))), "α → β → γ"},
		{ab("x", Constant{Value: 1, ValueType: "number"}), "α → number"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, InferType(test.term), "term is:\n%s", Notation(test.term))
	}
}

// An application takes the textual codomain of its function's arrow
// type when one is present, and a fresh variable otherwise.
func TestInferTypeApplication(t *testing.T) {
	assert.Equal(t, "β", InferType(ap(ab("x", vr("x")), vr("y"))))
	assert.Equal(t, "β", InferType(ap(vr("f"), vr("x"))))
}

// The fallback naming after the Greek alphabet runs out stays distinct.
func TestFreshTypeVarOverflow(t *testing.T) {
	counter := len(typeVarNames)
	assert.Equal(t, "t1", freshTypeVar(&counter))
	assert.Equal(t, "t2", freshTypeVar(&counter))
}
