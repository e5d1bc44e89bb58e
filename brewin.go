package brewin

import "fmt"

// --- Errors ----------------------------------------------------------------

// ErrorKind categorizes the errors a Brewin program may run into. Both kinds
// are fatal: the language has no way to recover from them.
type ErrorKind int

// The error kinds of the language.
const (
	NoError ErrorKind = iota
	NameError
	TypeError
)

func (k ErrorKind) String() string {
	switch k {
	case NameError:
		return "NAME_ERROR"
	case TypeError:
		return "TYPE_ERROR"
	}
	return "NO_ERROR"
}

// ErrorKindFromString is the inverse of ErrorKind.String. Unknown strings map
// to NoError.
func ErrorKindFromString(s string) ErrorKind {
	switch s {
	case "NAME_ERROR":
		return NameError
	case "TYPE_ERROR":
		return TypeError
	}
	return NoError
}

// Error is a runtime error of a Brewin program. Line is the source line of
// the statement which failed, or 0 if unknown.
type Error struct {
	Kind ErrorKind
	Msg  string
	Line int
}

// Errorf creates a new runtime error of kind k.
func Errorf(k ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// AtLine sets the line of an error, if it has not been set before.
func (e *Error) AtLine(line int) *Error {
	if e.Line == 0 {
		e.Line = line
	}
	return e
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Constants are defined by the
// scanner producing the tokens.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the language.
//
// An example would be a token for an integer literal:
//
//    TokType = Int      // identifier for this kind of tokens
//    Lexeme  = "42"     // lexeme how it appeared in the input stream
//    Value   = 42       // int64 value, set by the scanner
//    Span    = 67…69    // occured from position 67 in the input stream
//    Line    = 3        // source line, 1-based
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Line() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
