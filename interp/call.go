package interp

import (
	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/runtime"
	"github.com/solomonckwon/brewin/value"
)

// argument is an evaluated actual argument. For a parameter passed by
// reference, ref is the caller's tag of the variable; otherwise v is set.
type argument struct {
	v   value.Value
	ref *runtime.Tag
}

// evalCall evaluates a call of a built-in, a function or a closure.
func (intp *Interpreter) evalCall(call *ast.Call) (value.Value, error) {
	if b, ok := lookupBuiltin(call.Name); ok {
		return b(intp, call)
	}
	fn, err := intp.resolve(call.Name, len(call.Args))
	if err != nil {
		return nil, err
	}
	args, err := intp.evalArgs(fn, call.Args)
	if err != nil {
		return nil, err
	}
	return intp.invoke(fn, args)
}

// evalArgs evaluates actual arguments in the caller's environment, left to
// right, before any parameter is bound.
func (intp *Interpreter) evalArgs(fn *callee, actuals []ast.Expr) ([]argument, error) {
	env := intp.env()
	args := make([]argument, len(actuals))
	for i, actual := range actuals {
		if fn.params[i].IsRef {
			if variable, ok := actual.(*ast.Variable); ok {
				if tag := env.ResolveTag(variable.Name); tag != nil {
					args[i].ref = tag
					continue
				}
			}
		}
		v, err := intp.eval(actual)
		if err != nil {
			return nil, err
		}
		args[i].v = v
	}
	return args, nil
}

// invoke runs a callee with evaluated arguments. Functions run in the active
// environment, closures in their captured environment. In both cases a call
// scope holds the parameters. A return statement within the callee ends
// this call only.
func (intp *Interpreter) invoke(fn *callee, args []argument) (value.Value, error) {
	env := fn.env
	if env == nil {
		env = intp.env()
	}
	if _, err := intp.rt.CallStack.PushCallFrame(fn.name, env); err != nil {
		return nil, err
	}
	defer intp.rt.CallStack.PopCallFrame()
	env.PushScope("call " + fn.name)
	defer env.PopScope()
	for i, param := range fn.params {
		if args[i].ref != nil {
			env.DeclareSlot(param.Name, args[i].ref)
		} else {
			env.Declare(param.Name, args[i].v)
		}
	}
	tracer().Debugf("calling %s at depth %d", fn.name, intp.rt.CallStack.Size())
	_, result, err := intp.runBlock(fn.body, fn.name)
	if err != nil {
		return nil, err
	}
	return result, nil
}
