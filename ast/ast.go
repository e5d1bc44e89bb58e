package ast

import (
	"fmt"
	"strings"
)

// Node is implemented by all nodes of the syntax tree.
type Node interface {
	node()
}

// Stmt is a statement node. The marker method seals the set of statements.
type Stmt interface {
	Node
	Line() int
	stmt()
}

// Expr is an expression node. The marker method seals the set of expressions.
type Expr interface {
	Node
	expr()
}

// Pos is the source line a node has been parsed from. Nodes built by hand may
// leave it at zero.
type Pos int

// Line returns the 1-based source line, or 0 if unknown.
func (p Pos) Line() int {
	return int(p)
}

// --- Declarations ----------------------------------------------------------

// Program is the root of a syntax tree.
type Program struct {
	Functions []*Function
}

// Param is a formal parameter. Parameters declared with 'ref' are passed by
// reference, if the actual argument is a variable.
type Param struct {
	Name  string
	IsRef bool
}

func (p *Param) String() string {
	if p.IsRef {
		return "ref " + p.Name
	}
	return p.Name
}

// Function is a top-level function declaration.
type Function struct {
	Pos
	Name   string
	Params []*Param
	Body   []Stmt
}

// Arity returns the number of formal parameters.
func (f *Function) Arity() int {
	return len(f.Params)
}

func (f *Function) String() string {
	return fmt.Sprintf("func %s(%s)", f.Name, paramList(f.Params))
}

// Lambda is an anonymous function literal. Evaluating it creates a closure.
type Lambda struct {
	Pos
	Params []*Param
	Body   []Stmt
}

// Arity returns the number of formal parameters.
func (l *Lambda) Arity() int {
	return len(l.Params)
}

func (l *Lambda) String() string {
	return fmt.Sprintf("lambda(%s)", paramList(l.Params))
}

func paramList(params []*Param) string {
	p := make([]string, len(params))
	for i, param := range params {
		p[i] = param.String()
	}
	return strings.Join(p, ", ")
}

// --- Statements ------------------------------------------------------------

// Assign is an assignment 'name = expr;'.
type Assign struct {
	Pos
	Name string
	Expr Expr
}

// Return is a return statement. Expr is nil for a bare 'return;'.
type Return struct {
	Pos
	Expr Expr
}

// If is a conditional statement. Else is nil if there is no else-branch.
type If struct {
	Pos
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// While is a loop statement.
type While struct {
	Pos
	Cond Expr
	Body []Stmt
}

// --- Expressions -----------------------------------------------------------

// IntLit is an integer literal.
type IntLit struct {
	Val int64
}

// StringLit is a string literal.
type StringLit struct {
	Val string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Val bool
}

// NilLit is the literal nil.
type NilLit struct{}

// Variable is a reference to a name. It may denote a variable or, if no
// variable of that name is bound, a top-level function.
type Variable struct {
	Name string
}

// Call is a call 'name(args...)'. It is both an expression and a statement.
type Call struct {
	Pos
	Name string
	Args []Expr
}

// Unary is a unary operation.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary is a binary operation.
type Binary struct {
	Op          BinaryOp
	Left, Right Expr
}

func (*Program) node() {}
func (*Function) node() {}
func (*Lambda) node() {}
func (*Assign) node() {}
func (*Return) node() {}
func (*If) node() {}
func (*While) node() {}
func (*IntLit) node() {}
func (*StringLit) node() {}
func (*BoolLit) node() {}
func (*NilLit) node() {}
func (*Variable) node() {}
func (*Call) node() {}
func (*Unary) node() {}
func (*Binary) node() {}

func (*Assign) stmt() {}
func (*Return) stmt() {}
func (*If) stmt() {}
func (*While) stmt() {}
func (*Call) stmt() {}

func (*IntLit) expr() {}
func (*StringLit) expr() {}
func (*BoolLit) expr() {}
func (*NilLit) expr() {}
func (*Variable) expr() {}
func (*Call) expr() {}
func (*Unary) expr() {}
func (*Binary) expr() {}
func (*Lambda) expr() {}

var _ Stmt = (*Call)(nil)
var _ Expr = (*Call)(nil)
var _ Expr = (*Lambda)(nil)
