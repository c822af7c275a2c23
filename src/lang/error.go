package lang

import "fmt"

// CodeError is a lexing failure with a source location. Parsers never
// surface it to callers; they catch it and degrade to a Constant term.
type CodeError struct {
	Range   Range
	Message string
}

func (e *CodeError) Error() string {
	return e.Message
}

func (e *CodeError) Pretty(source string) string {
	return fmt.Sprintf("%s:%s: %s", source, e.Range.String(), e.Message)
}

func NewCodeError(r Range, m string) *CodeError {
	return &CodeError{
		Range:   r,
		Message: m,
	}
}
