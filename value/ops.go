package value

import (
	"strconv"

	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
)

// binaryFn applies an operator to two operands of a given operand class.
type binaryFn func(x, y Value) (Value, error)

// binaryOps is the operator dispatch table, keyed by operand class and operator.
// Ints and Bools form the numeric class: for arithmetic a Bool counts as 0 or 1,
// for logical operators an Int counts as true if it is non-zero.
// Equality is not part of the table, as it is defined for any pair of values.
var binaryOps = map[Kind]map[ast.BinaryOp]binaryFn{
	KindInt: {
		ast.OpAdd: arith(func(a, b int64) int64 { return a + b }),
		ast.OpSub: arith(func(a, b int64) int64 { return a - b }),
		ast.OpMul: arith(func(a, b int64) int64 { return a * b }),
		ast.OpDiv: divide,
		ast.OpLt:  compare(func(a, b int64) bool { return a < b }),
		ast.OpLte: compare(func(a, b int64) bool { return a <= b }),
		ast.OpGt:  compare(func(a, b int64) bool { return a > b }),
		ast.OpGte: compare(func(a, b int64) bool { return a >= b }),
		ast.OpAnd: logical(func(a, b bool) bool { return a && b }),
		ast.OpOr:  logical(func(a, b bool) bool { return a || b }),
	},
	KindString: {
		ast.OpAdd: func(x, y Value) (Value, error) {
			return x.(Str) + y.(Str), nil
		},
	},
}

// Apply applies a binary operator to two values.
// Operators other than == and != fail with a TYPE_ERROR if
// they are not defined for the operands.
func Apply(op ast.BinaryOp, x, y Value) (Value, error) {
	switch op {
	case ast.OpEq:
		return Bool(Equal(x, y)), nil
	case ast.OpNeq:
		return Bool(!Equal(x, y)), nil
	}
	class, ok := operandClass(x, y)
	if !ok {
		return nil, brewin.Errorf(brewin.TypeError, "incompatible types for %s operation: %s and %s",
			op, KindOf(x), KindOf(y))
	}
	fn, ok := binaryOps[class][op]
	if !ok {
		return nil, brewin.Errorf(brewin.TypeError, "incompatible operator %s for type %s", op, class)
	}
	return fn(x, y)
}

// ApplyUnary applies a unary operator to a value.
func ApplyUnary(op ast.UnaryOp, v Value) (Value, error) {
	switch op {
	case ast.OpNeg:
		if n, ok := asNumber(v); ok {
			return Int(-n), nil
		}
	case ast.OpNot:
		if b, ok := asTruth(v); ok {
			return Bool(!b), nil
		}
	}
	return nil, brewin.Errorf(brewin.TypeError, "incompatible type for %s operation: %s", op, KindOf(v))
}

// Equal is the equality of Brewin. It is defined for values of any kind.
// Values of different kinds are unequal, with the exception of ints compared
// to bools, where the int is taken as a truth value.
// Functions are equal if they share a declaration, closures if they share the
// lambda and the captured environment.
func Equal(x, y Value) bool {
	if x == nil {
		x = Nil
	}
	if y == nil {
		y = Nil
	}
	switch a := x.(type) {
	case Int:
		switch b := y.(type) {
		case Int:
			return a == b
		case Bool:
			return (a != 0) == bool(b)
		}
	case Bool:
		switch b := y.(type) {
		case Bool:
			return a == b
		case Int:
			return bool(a) == (b != 0)
		}
	case Str:
		if b, ok := y.(Str); ok {
			return a == b
		}
	case NilValue:
		_, ok := y.(NilValue)
		return ok
	case Function:
		if b, ok := y.(Function); ok {
			return a.Decl == b.Decl
		}
	case Closure:
		if b, ok := y.(Closure); ok {
			return a.Lambda == b.Lambda && a.Env == b.Env
		}
	}
	return false
}

// Truth interprets a value as a condition of an if or while statement.
// Bools and ints are accepted, everything else is a TYPE_ERROR.
func Truth(v Value) (bool, error) {
	if b, ok := asTruth(v); ok {
		return b, nil
	}
	return false, brewin.Errorf(brewin.TypeError, "condition of type %s is not boolean", KindOf(v))
}

// Printable returns the text print() emits for a value.
func Printable(v Value) (string, error) {
	switch x := v.(type) {
	case Int:
		return strconv.FormatInt(int64(x), 10), nil
	case Bool:
		return strconv.FormatBool(bool(x)), nil
	case Str:
		return string(x), nil
	case NilValue, nil:
		return "nil", nil
	}
	return "", brewin.Errorf(brewin.TypeError, "cannot print value of type %s", KindOf(v))
}

// --- Helpers ---------------------------------------------------------------

// operandClass returns the dispatch class for a pair of operands.
func operandClass(x, y Value) (Kind, bool) {
	kx, ky := KindOf(x), KindOf(y)
	if isNumeric(kx) && isNumeric(ky) {
		return KindInt, true
	}
	if kx == KindString && ky == KindString {
		return KindString, true
	}
	return KindNil, false
}

func isNumeric(k Kind) bool {
	return k == KindInt || k == KindBool
}

func asNumber(v Value) (int64, bool) {
	switch x := v.(type) {
	case Int:
		return int64(x), true
	case Bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func asTruth(v Value) (bool, bool) {
	switch x := v.(type) {
	case Bool:
		return bool(x), true
	case Int:
		return x != 0, true
	}
	return false, false
}

func arith(f func(a, b int64) int64) binaryFn {
	return func(x, y Value) (Value, error) {
		a, _ := asNumber(x)
		b, _ := asNumber(y)
		return Int(f(a, b)), nil
	}
}

func compare(f func(a, b int64) bool) binaryFn {
	return func(x, y Value) (Value, error) {
		a, _ := asNumber(x)
		b, _ := asNumber(y)
		return Bool(f(a, b)), nil
	}
}

func logical(f func(a, b bool) bool) binaryFn {
	return func(x, y Value) (Value, error) {
		a, _ := asTruth(x)
		b, _ := asTruth(y)
		return Bool(f(a, b)), nil
	}
}

func divide(x, y Value) (Value, error) {
	a, _ := asNumber(x)
	b, _ := asNumber(y)
	if b == 0 {
		return nil, brewin.Errorf(brewin.TypeError, "division by zero")
	}
	return Int(FloorDiv(a, b)), nil
}

// FloorDiv divides a by b, rounding toward negative infinity: 7/2 = 3, -7/2 = -4.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
