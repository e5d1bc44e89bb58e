package interp

import (
	"errors"
	"fmt"

	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/value"
)

// execStatus tells a block whether to go on with the next statement.
type execStatus int

const (
	statusContinue execStatus = iota // keep executing
	statusReturn                     // unwind to the call boundary, carrying a value
)

func (s execStatus) String() string {
	if s == statusReturn {
		return "RETURN"
	}
	return "CONTINUE"
}

// runBlock executes statements in a new scope of the active environment.
// The scope is popped on every exit path.
func (intp *Interpreter) runBlock(stmts []ast.Stmt, name string) (execStatus, value.Value, error) {
	env := intp.env()
	env.PushScope(name)
	defer env.PopScope()
	for _, stmt := range stmts {
		status, v, err := intp.exec(stmt)
		if err != nil {
			return statusContinue, nil, atLine(err, stmt.Line())
		}
		if status == statusReturn {
			return status, v, nil
		}
	}
	return statusContinue, value.Nil, nil
}

// exec executes a single statement.
func (intp *Interpreter) exec(stmt ast.Stmt) (execStatus, value.Value, error) {
	switch s := stmt.(type) {
	case *ast.Call:
		_, err := intp.evalCall(s)
		return statusContinue, value.Nil, err
	case *ast.Assign:
		v, err := intp.eval(s.Expr)
		if err != nil {
			return statusContinue, nil, err
		}
		intp.env().Assign(s.Name, v)
		return statusContinue, value.Nil, nil
	case *ast.Return:
		if s.Expr == nil {
			return statusReturn, value.Nil, nil
		}
		v, err := intp.eval(s.Expr)
		if err != nil {
			return statusContinue, nil, err
		}
		return statusReturn, intp.copyReturned(v), nil
	case *ast.If:
		return intp.execIf(s)
	case *ast.While:
		return intp.execWhile(s)
	}
	panic(fmt.Sprintf("unknown statement type %T", stmt))
}

func (intp *Interpreter) execIf(s *ast.If) (execStatus, value.Value, error) {
	cond, err := intp.condition(s.Cond, "if")
	if err != nil {
		return statusContinue, nil, err
	}
	if cond {
		return intp.runBlock(s.Then, "if")
	}
	if s.Else != nil {
		return intp.runBlock(s.Else, "else")
	}
	return statusContinue, value.Nil, nil
}

func (intp *Interpreter) execWhile(s *ast.While) (execStatus, value.Value, error) {
	for {
		cond, err := intp.condition(s.Cond, "while")
		if err != nil {
			return statusContinue, nil, err
		}
		if !cond {
			return statusContinue, value.Nil, nil
		}
		status, v, err := intp.runBlock(s.Body, "while")
		if err != nil || status == statusReturn {
			return status, v, err
		}
	}
}

// condition evaluates the condition of an if or while statement.
func (intp *Interpreter) condition(expr ast.Expr, stmt string) (bool, error) {
	v, err := intp.eval(expr)
	if err != nil {
		return false, err
	}
	b, err := value.Truth(v)
	if err != nil {
		return false, brewin.Errorf(brewin.TypeError, "incompatible type %s for %s condition", value.KindOf(v), stmt)
	}
	return b, nil
}

// atLine attaches a source line to a Brewin error, unless a statement nested
// deeper already did.
func atLine(err error, line int) error {
	var berr *brewin.Error
	if line > 0 && errors.As(err, &berr) {
		berr.AtLine(line)
	}
	return err
}
