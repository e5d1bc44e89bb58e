package interp

import (
	"fmt"

	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/runtime"
	"github.com/solomonckwon/brewin/value"
)

// callee is the target of a call, as determined by the resolver.
type callee struct {
	name   string
	params []*ast.Param
	body   []ast.Stmt
	env    *runtime.Environment // captured environment of a closure, nil for functions
}

func functionCallee(fn *ast.Function) *callee {
	return &callee{
		name:   fmt.Sprintf("%s/%d", fn.Name, fn.Arity()),
		params: fn.Params,
		body:   fn.Body,
	}
}

// resolve maps a call site to its callee. Top-level functions take precedence
// over variables. A variable used as a callee must hold a function or a closure
// with a matching number of parameters.
func (intp *Interpreter) resolve(name string, argc int) (*callee, error) {
	if intp.funcs.Has(name) {
		fn, ok := intp.funcs.Lookup(name, argc)
		if !ok {
			return nil, brewin.Errorf(brewin.NameError, "function %s taking %d params not found (declared for %s)",
				name, argc, intp.funcs.arityList(name))
		}
		tracer().Debugf("resolved %s(%d args) to function %s/%d", name, argc, fn.Name, fn.Arity())
		return functionCallee(fn), nil
	}
	v, ok := intp.env().Lookup(name)
	if !ok {
		return nil, brewin.Errorf(brewin.NameError, "function %s not found", name)
	}
	return intp.calleeFor(name, v, argc)
}

// calleeFor checks a first-class function value for being callable with
// argc arguments.
func (intp *Interpreter) calleeFor(name string, v value.Value, argc int) (*callee, error) {
	if !value.IsCallable(v) {
		return nil, brewin.Errorf(brewin.TypeError, "variable %s of type %s is not a function", name, value.KindOf(v))
	}
	switch f := v.(type) {
	case value.Function:
		if f.Decl.Arity() != argc {
			return nil, brewin.Errorf(brewin.TypeError, "%s takes %d params, called with %d",
				name, f.Decl.Arity(), argc)
		}
		tracer().Debugf("resolved %s(%d args) to function value %v", name, argc, f)
		return functionCallee(f.Decl), nil
	case value.Closure:
		if f.Lambda.Arity() != argc {
			return nil, brewin.Errorf(brewin.TypeError, "%s takes %d params, called with %d",
				name, f.Lambda.Arity(), argc)
		}
		env, ok := intp.rt.Closures.Environment(f.Env)
		if !ok {
			panic(fmt.Sprintf("closure %v refers to unknown environment", f))
		}
		tracer().Debugf("resolved %s(%d args) to closure %v", name, argc, f)
		return &callee{
			name:   fmt.Sprintf("%s=lambda#%d", name, f.Env),
			params: f.Lambda.Params,
			body:   f.Lambda.Body,
			env:    env,
		}, nil
	}
	panic(fmt.Sprintf("unknown callable %T", v))
}

// resolveName evaluates a bare name. A bound variable takes precedence. If
// there is none, the name may denote a top-level function as a first-class
// value, as long as the function is not overloaded.
func (intp *Interpreter) resolveName(name string) (value.Value, error) {
	if v, ok := intp.env().Lookup(name); ok {
		return v, nil
	}
	if !intp.funcs.Has(name) {
		return nil, brewin.Errorf(brewin.NameError, "variable %s not found", name)
	}
	fn, ok := intp.funcs.Unique(name)
	if !ok {
		return nil, brewin.Errorf(brewin.NameError, "ambiguous reference to overloaded function %s (declared for %s)",
			name, intp.funcs.arityList(name))
	}
	return value.Function{Decl: fn}, nil
}
