package lang

import "regexp"

// Kind identifies the surface form of an input string.
type Kind string

const (
	KindCode    Kind = "code"
	KindMath    Kind = "mathematical"
	KindNatural Kind = "natural_language"
)

var (
	codeSurface = regexp.MustCompile(`\bfunction\b|=>|\bconst\b|\breturn\b`)
	mathSurface = regexp.MustCompile(`λ|\\|^\s*[a-z]\s*\.`)
)

// Classify guesses the kind of an input string. Code markers win over
// mathematical markers; anything unrecognized is treated as natural
// language. A caller-supplied kind always overrides this guess.
func Classify(input string) Kind {
	switch {
	case codeSurface.MatchString(input):
		return KindCode
	case mathSurface.MatchString(input):
		return KindMath
	default:
		return KindNatural
	}
}
