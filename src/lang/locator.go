package lang

import (
	"fmt"

	"github.com/macrat/simplexer"
)

type Position struct {
	Line   int
	Column int
}

type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start.Line, r.Start.Column)
}

func NewRangeFromToken(t simplexer.Token) Range {
	start := Position{Line: t.Position.Line, Column: t.Position.Column}
	end := start
	for _, c := range t.Literal {
		if c == '\n' {
			end.Line++
			end.Column = 0
		} else {
			end.Column++
		}
	}
	return Range{Start: start, End: end}
}
