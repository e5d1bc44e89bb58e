package interp

import (
	"strconv"
	"strings"

	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/value"
)

// builtin is a function provided by the interpreter. Built-ins receive the
// call site unevaluated and evaluate their arguments themselves.
type builtin func(intp *Interpreter, call *ast.Call) (value.Value, error)

// lookupBuiltin finds a built-in function. Built-ins shadow user functions
// and variables of the same name.
func lookupBuiltin(name string) (builtin, bool) {
	switch name {
	case "print":
		return builtinPrint, true
	case "inputi":
		return builtinInputi, true
	case "inputs":
		return builtinInputs, true
	}
	return nil, false
}

// print(args...) emits the concatenation of its arguments as a single line.
func builtinPrint(intp *Interpreter, call *ast.Call) (value.Value, error) {
	var sb strings.Builder
	for _, arg := range call.Args {
		v, err := intp.eval(arg)
		if err != nil {
			return nil, err
		}
		s, err := value.Printable(v)
		if err != nil {
			return nil, err
		}
		sb.WriteString(s)
	}
	intp.host.Output(sb.String())
	return value.Nil, nil
}

// inputi(prompt?) reads a line of input and parses it as a decimal integer.
func builtinInputi(intp *Interpreter, call *ast.Call) (value.Value, error) {
	line, err := intp.input(call)
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return nil, brewin.Errorf(brewin.TypeError, "inputi: %q is not an integer", line)
	}
	return value.Int(n), nil
}

// inputs(prompt?) reads a line of input as a string.
func builtinInputs(intp *Interpreter, call *ast.Call) (value.Value, error) {
	line, err := intp.input(call)
	if err != nil {
		return nil, err
	}
	return value.Str(line), nil
}

// input prints an optional prompt, then reads a line from the host.
func (intp *Interpreter) input(call *ast.Call) (string, error) {
	if len(call.Args) > 1 {
		return "", brewin.Errorf(brewin.NameError, "no %s() function that takes > 1 parameter", call.Name)
	}
	if len(call.Args) == 1 {
		v, err := intp.eval(call.Args[0])
		if err != nil {
			return "", err
		}
		prompt, err := value.Printable(v)
		if err != nil {
			return "", err
		}
		intp.host.Output(prompt)
	}
	return intp.host.GetInput()
}
