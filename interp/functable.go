package interp

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/solomonckwon/brewin/ast"
)

// FunctionTable maps function names to the overloads of a function.
// It is built once from the top-level declarations of a program.
type FunctionTable struct {
	funcs map[string]*overloads
}

// overloads holds the declarations of a function name, keyed by arity.
type overloads struct {
	byArity map[int]*ast.Function
	arities *treeset.Set // ordered set of ints
}

// NewFunctionTable creates a function table for the functions of a program.
// A later declaration of the same name and arity replaces an earlier one.
func NewFunctionTable(prog *ast.Program) *FunctionTable {
	ft := &FunctionTable{funcs: make(map[string]*overloads)}
	if prog == nil {
		return ft
	}
	for _, fn := range prog.Functions {
		ovl, ok := ft.funcs[fn.Name]
		if !ok {
			ovl = &overloads{
				byArity: make(map[int]*ast.Function),
				arities: treeset.NewWith(utils.IntComparator),
			}
			ft.funcs[fn.Name] = ovl
		}
		if _, dup := ovl.byArity[fn.Arity()]; dup {
			tracer().Infof("function %s/%d declared more than once", fn.Name, fn.Arity())
		}
		ovl.byArity[fn.Arity()] = fn
		ovl.arities.Add(fn.Arity())
	}
	return ft
}

// Has is a predicate: is name declared as a top-level function?
func (ft *FunctionTable) Has(name string) bool {
	_, ok := ft.funcs[name]
	return ok
}

// Lookup returns the overload of a function for a given arity.
func (ft *FunctionTable) Lookup(name string, arity int) (*ast.Function, bool) {
	ovl, ok := ft.funcs[name]
	if !ok {
		return nil, false
	}
	fn, ok := ovl.byArity[arity]
	return fn, ok
}

// Unique returns the declaration of a function which is not overloaded.
func (ft *FunctionTable) Unique(name string) (*ast.Function, bool) {
	ovl, ok := ft.funcs[name]
	if !ok || ovl.arities.Size() != 1 {
		return nil, false
	}
	arity := ovl.arities.Values()[0].(int)
	return ovl.byArity[arity], true
}

// Arities returns the arities a function is declared with, in ascending order.
func (ft *FunctionTable) Arities(name string) []int {
	ovl, ok := ft.funcs[name]
	if !ok {
		return nil
	}
	arities := make([]int, 0, ovl.arities.Size())
	it := ovl.arities.Iterator()
	for it.Next() {
		arities = append(arities, it.Value().(int))
	}
	return arities
}

// Size returns the number of function names.
func (ft *FunctionTable) Size() int {
	return len(ft.funcs)
}

func (ft *FunctionTable) arityList(name string) string {
	var s []string
	for _, a := range ft.Arities(name) {
		s = append(s, fmt.Sprintf("%d", a))
	}
	return strings.Join(s, ", ")
}
