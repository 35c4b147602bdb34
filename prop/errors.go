package prop

import "fmt"

// A TokenizeError is returned when the input cannot be split into tokens at all,
// i.e when it is not valid UTF-8 text.
type TokenizeError struct {
	Input string
	Pos   int // Byte offset of the first invalid byte
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("input %q is not valid text: invalid byte at position %d", e.Input, e.Pos)
}

// A ParseError is returned when the tokens of a formula do not follow the grammar.
type ParseError struct {
	Input string
	Msg   string
	Token string // Offending token, empty at end of input
	Pos   int    // Byte offset of the offending token, or length of Input at end of input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d in %q", e.Msg, e.Pos, e.Input)
}

// An UnboundError is returned by EvalStrict when a model lacks a binding for a variable.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("model lacks binding for variable %s", e.Name)
}
