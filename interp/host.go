package interp

import (
	"fmt"
	"io"

	"github.com/solomonckwon/brewin"
)

// Host is the environment a Brewin program runs in. All externally observable
// effects of a program happen through its host.
type Host interface {
	Output(text string)                     // append a line of output
	GetInput() (string, error)              // read a line of input
	Fail(kind brewin.ErrorKind, msg string) // report the error aborting a run
}

// ScriptedHost is a host which reads input lines from a slice and collects
// output lines. It is handy for tests and for embedding the interpreter.
type ScriptedHost struct {
	Inputs  []string         // lines to be returned by GetInput
	Lines   []string         // lines produced by Output
	Kind    brewin.ErrorKind // kind of a reported error, or NoError
	Message string           // message of a reported error
	next    int
}

var _ Host = (*ScriptedHost)(nil)

// NewScriptedHost creates a host which will feed the given input lines to
// the program.
func NewScriptedHost(inputs ...string) *ScriptedHost {
	return &ScriptedHost{Inputs: inputs}
}

// Output is part of the Host interface.
func (h *ScriptedHost) Output(text string) {
	h.Lines = append(h.Lines, text)
}

// GetInput is part of the Host interface. It returns io.EOF after the input
// lines are used up.
func (h *ScriptedHost) GetInput() (string, error) {
	if h.next >= len(h.Inputs) {
		return "", fmt.Errorf("no more input lines: %w", io.EOF)
	}
	line := h.Inputs[h.next]
	h.next++
	return line, nil
}

// Fail is part of the Host interface.
func (h *ScriptedHost) Fail(kind brewin.ErrorKind, msg string) {
	h.Kind = kind
	h.Message = msg
}
