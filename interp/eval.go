package interp

import (
	"fmt"

	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/value"
)

// eval reduces an expression to a value.
func (intp *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return value.Int(e.Val), nil
	case *ast.StringLit:
		return value.Str(e.Val), nil
	case *ast.BoolLit:
		return value.Bool(e.Val), nil
	case *ast.NilLit:
		return value.Nil, nil
	case *ast.Variable:
		return intp.resolveName(e.Name)
	case *ast.Call:
		return intp.evalCall(e)
	case *ast.Unary:
		v, err := intp.eval(e.Operand)
		if err != nil {
			return nil, err
		}
		return value.ApplyUnary(e.Op, v)
	case *ast.Binary:
		// both operands are evaluated, even for && and ||
		left, err := intp.eval(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := intp.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return value.Apply(e.Op, left, right)
	case *ast.Lambda:
		return intp.makeClosure(e), nil
	}
	panic(fmt.Sprintf("unknown expression type %T", expr))
}
