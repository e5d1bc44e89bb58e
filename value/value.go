/*
Package value implements the runtime values of Brewin and the dispatch of
operators on them.

Values are immutable. A Brewin variable is re-bound to a new value on
assignment, values are never modified in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"fmt"
	"strconv"

	"github.com/solomonckwon/brewin/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindInt
	KindBool
	KindString
	KindFunction
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindClosure:
		return "closure"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

// KindOf returns the kind of a value. An unset value is nil.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNil
	}
	return v.Kind()
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type Int int64

func (Int) Kind() Kind { return KindInt }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

type Bool bool

func (Bool) Kind() Kind { return KindBool }

func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

type Str string

func (Str) Kind() Kind { return KindString }

func (v Str) String() string { return strconv.Quote(string(v)) }

// NilValue is the type of Nil.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

func (NilValue) String() string { return "nil" }

// Nil is the one and only nil value.
var Nil = NilValue{}

// True and False are the boolean values.
const (
	True  = Bool(true)
	False = Bool(false)
)

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// Function is a top-level function used as a first-class value.
type Function struct {
	Decl *ast.Function
}

func (Function) Kind() Kind { return KindFunction }

func (f Function) String() string {
	return fmt.Sprintf("<func %s/%d>", f.Decl.Name, f.Decl.Arity())
}

// SnapshotID is a handle to a captured environment. Snapshots are owned
// by the runtime of a single run of the interpreter.
type SnapshotID int

// Closure is a lambda bound to the environment captured when the lambda
// literal was evaluated. Copies of a closure share the captured environment.
type Closure struct {
	Lambda *ast.Lambda
	Env    SnapshotID
}

func (Closure) Kind() Kind { return KindClosure }

func (c Closure) String() string {
	return fmt.Sprintf("<lambda #%d/%d>", c.Env, c.Lambda.Arity())
}

// IsCallable is a predicate: may v be called?
func IsCallable(v Value) bool {
	k := KindOf(v)
	return k == KindFunction || k == KindClosure
}
