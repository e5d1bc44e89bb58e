package interp

import (
	"errors"
	"fmt"

	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/runtime"
	"github.com/solomonckwon/brewin/value"
)

// DefaultMaxCallDepth is the default limit for nested calls.
const DefaultMaxCallDepth = 10000

// Interpreter executes Brewin programs.
type Interpreter struct {
	host     Host
	maxDepth int
	funcs    *FunctionTable
	rt       *runtime.Runtime
}

// Option configures an interpreter.
type Option func(intp *Interpreter)

// MaxCallDepth limits the nesting of calls. Exceeding the limit aborts a run
// with runtime.ErrCallDepthExceeded. A limit of 0 lifts any limit, leaving
// deep recursion to exhaust the Go stack.
func MaxCallDepth(n int) Option {
	return func(intp *Interpreter) {
		intp.maxDepth = n
	}
}

// New creates an interpreter which will run programs in host.
func New(host Host, opts ...Option) *Interpreter {
	intp := &Interpreter{
		host:     host,
		maxDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(intp)
	}
	return intp
}

// Run creates an interpreter and runs a program in host.
func Run(prog *ast.Program, host Host, opts ...Option) error {
	return New(host, opts...).Run(prog)
}

// Run executes a program by calling its function main(). Every run starts
// with a fresh runtime environment.
//
// If the program fails with a NAME_ERROR or TYPE_ERROR, the error is reported
// to the host via Fail and returned as a *brewin.Error. Other errors, e.g.
// failing input or exceeding the maximum call depth, are returned without
// calling Fail.
func (intp *Interpreter) Run(prog *ast.Program) error {
	intp.funcs = NewFunctionTable(prog)
	intp.rt = runtime.NewRuntimeEnvironment(intp.maxDepth)
	tracer().Debugf("running program with %d functions", intp.funcs.Size())
	err := intp.runMain()
	var berr *brewin.Error
	if errors.As(err, &berr) {
		tracer().Errorf("program aborted: %v", berr)
		intp.host.Fail(berr.Kind, berr.Error())
	}
	return err
}

func (intp *Interpreter) runMain() error {
	main, ok := intp.funcs.Lookup("main", 0)
	if !ok {
		return brewin.Errorf(brewin.NameError, "no main() function found")
	}
	_, err := intp.invoke(functionCallee(main), nil)
	return err
}

// env returns the active environment.
func (intp *Interpreter) env() *runtime.Environment {
	return intp.rt.Env()
}

// copyReturned decouples a returned value from the callee. Plain values are
// immutable and handed up as they are. A closure gets a deep copy of its
// captured environment, so it no longer equals its origin and keeps its own
// state.
func (intp *Interpreter) copyReturned(v value.Value) value.Value {
	c, ok := v.(value.Closure)
	if !ok {
		return v
	}
	id, ok := intp.rt.Closures.Copy(c.Env)
	if !ok {
		panic(fmt.Sprintf("closure %v refers to unknown environment", c))
	}
	tracer().Debugf("returned closure #%d copied as #%d", c.Env, id)
	return value.Closure{Lambda: c.Lambda, Env: id}
}

// makeClosure captures the active environment for a lambda literal.
// Every evaluation of a lambda literal creates a new captured environment.
func (intp *Interpreter) makeClosure(lambda *ast.Lambda) value.Closure {
	id := intp.rt.Closures.Capture(intp.env())
	tracer().Debugf("lambda at line %d captured as #%d", lambda.Line(), id)
	return value.Closure{Lambda: lambda, Env: id}
}
