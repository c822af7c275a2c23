package lang

// Term represents a node of an untyped lambda calculus tree. The four
// implementations below form a closed set; every consumer switches
// exhaustively over them. Terms are immutable: transformations build new
// trees and share unchanged subtrees.
type Term interface {
	term()
	String() string
}

// Variable represents a reference to a binder or a free name.
type Variable struct {
	Name string
}

// Abstraction represents a single-parameter binder. Multi-parameter
// functions are nested abstractions, first parameter outermost.
type Abstraction struct {
	Param     string
	Body      Term
	ParamType string
}

// Application represents a left-associative function application.
type Application struct {
	Func Term
	Arg  Term
}

// Constant represents an opaque literal, used whenever surface syntax
// cannot be reduced to variables, applications and abstractions.
type Constant struct {
	Value     any
	ValueType string
}

func (Variable) term()    {}
func (Abstraction) term() {}
func (Application) term() {}
func (Constant) term()    {}

func (t Variable) String() string    { return Notation(t) }
func (t Abstraction) String() string { return Notation(t) }
func (t Application) String() string { return Notation(t) }
func (t Constant) String() string    { return Notation(t) }
