package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/interp"
)

// consoleHost runs Brewin programs on a terminal.
type consoleHost struct {
	repl *readline.Instance // created on first input
	out  io.Writer
}

var _ interp.Host = (*consoleHost)(nil)

func newConsoleHost() *consoleHost {
	return &consoleHost{}
}

// Output is part of interface interp.Host.
func (h *consoleHost) Output(text string) {
	if h.out != nil {
		fmt.Fprintln(h.out, text)
		return
	}
	pterm.Println(text)
}

// GetInput is part of interface interp.Host. It reads a line from the
// terminal. Ending input with <ctrl>D results in io.EOF.
func (h *consoleHost) GetInput() (string, error) {
	if h.repl == nil {
		repl, err := readline.New("")
		if err != nil {
			return "", fmt.Errorf("cannot read from terminal: %w", err)
		}
		h.repl = repl
	}
	line, err := h.repl.Readline()
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Fail is part of interface interp.Host.
func (h *consoleHost) Fail(kind brewin.ErrorKind, msg string) {
	tracer().Errorf("program failed with %s", kind)
	pterm.Error.Println(msg)
}

// Close releases the terminal, if input has been read.
func (h *consoleHost) Close() error {
	if h.repl == nil {
		return nil
	}
	return h.repl.Close()
}
