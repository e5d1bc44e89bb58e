package syntax

import (
	"fmt"

	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
)

// Error is a syntax error in Brewin source text.
type Error struct {
	Line int
	Msg  string
}

func errorf(line int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error (line %d): %s", e.Line, e.Msg)
}

// Parse parses a Brewin program.
func Parse(source string) (*ast.Program, error) {
	toks, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	prog, err := p.program()
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	tracer().Debugf("parsed %d functions", len(prog.Functions))
	return prog, nil
}

type parser struct {
	toks []brewin.Token
	pos  int
}

// --- Token handling --------------------------------------------------------

func (p *parser) peek() brewin.Token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) brewin.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() brewin.Token {
	tok := p.toks[p.pos]
	if tok.TokType() != EOF {
		p.pos++
	}
	return tok
}

// is checks if the next token is an operator or keyword with the given lexeme.
func (p *parser) is(lexeme string) bool {
	return isLexeme(p.peek(), lexeme)
}

func isLexeme(tok brewin.Token, lexeme string) bool {
	t := tok.TokType()
	return (t == Op || t == Keyword) && tok.Lexeme() == lexeme
}

// match consumes the next token if it has the given lexeme.
func (p *parser) match(lexeme string) bool {
	if p.is(lexeme) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(lexeme string) (brewin.Token, error) {
	if !p.is(lexeme) {
		return nil, p.unexpected("'" + lexeme + "'")
	}
	return p.advance(), nil
}

func (p *parser) ident() (string, error) {
	if p.peek().TokType() != Ident {
		return "", p.unexpected("identifier")
	}
	return p.advance().Lexeme(), nil
}

func (p *parser) unexpected(what string) *Error {
	tok := p.peek()
	return errorf(tok.Line(), "expected %s, found %v", what, tok)
}

// --- Declarations ----------------------------------------------------------

func (p *parser) program() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.peek().TokType() != EOF {
		fn, err := p.function()
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fn)
	}
	return prog, nil
}

func (p *parser) function() (*ast.Function, error) {
	start, err := p.expect("func")
	if err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	params, err := p.params()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Pos: ast.Pos(start.Line()), Name: name, Params: params, Body: body}, nil
}

func (p *parser) params() ([]*ast.Param, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var params []*ast.Param
	if p.match(")") {
		return params, nil
	}
	for {
		param := &ast.Param{IsRef: p.match("ref")}
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		param.Name = name
		params = append(params, param)
		if p.match(")") {
			return params, nil
		}
		if _, err := p.expect(","); err != nil {
			return nil, err
		}
	}
}

// --- Statements ------------------------------------------------------------

func (p *parser) block() ([]ast.Stmt, error) {
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	stmts := []ast.Stmt{}
	for !p.match("}") {
		if p.peek().TokType() == EOF {
			return nil, p.unexpected("'}'")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *parser) statement() (ast.Stmt, error) {
	tok := p.peek()
	pos := ast.Pos(tok.Line())
	switch {
	case isLexeme(tok, "if"):
		return p.ifStmt()
	case isLexeme(tok, "while"):
		return p.whileStmt()
	case isLexeme(tok, "return"):
		p.advance()
		ret := &ast.Return{Pos: pos}
		if !p.is(";") {
			expr, err := p.expr()
			if err != nil {
				return nil, err
			}
			ret.Expr = expr
		}
		_, err := p.expect(";")
		return ret, err
	case tok.TokType() == Ident && isLexeme(p.peekAt(1), "="):
		p.advance()
		p.advance()
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		_, err = p.expect(";")
		return &ast.Assign{Pos: pos, Name: tok.Lexeme(), Expr: expr}, err
	case tok.TokType() == Ident && isLexeme(p.peekAt(1), "("):
		call, err := p.call()
		if err != nil {
			return nil, err
		}
		_, err = p.expect(";")
		return call, err
	}
	return nil, p.unexpected("statement")
}

func (p *parser) ifStmt() (ast.Stmt, error) {
	pos := ast.Pos(p.advance().Line())
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Pos: pos, Cond: cond, Then: then}
	if p.match("else") {
		if stmt.Else, err = p.block(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *parser) whileStmt() (ast.Stmt, error) {
	pos := ast.Pos(p.advance().Line())
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{Pos: pos, Cond: cond, Body: body}, nil
}

func (p *parser) condition() (ast.Expr, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	_, err = p.expect(")")
	return cond, err
}

// --- Expressions -----------------------------------------------------------

// precedence lists the binary operators by ascending precedence.
var precedence = [][]string{
	{"||"},
	{"&&"},
	{"==", "!="},
	{"<", "<=", ">", ">="},
	{"+", "-"},
	{"*", "/"},
}

func (p *parser) expr() (ast.Expr, error) {
	return p.binary(0)
}

// binary parses a left-associative chain of operators of a precedence level.
func (p *parser) binary(level int) (ast.Expr, error) {
	if level == len(precedence) {
		return p.unary()
	}
	left, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.binaryOp(precedence[level])
		if !ok {
			return left, nil
		}
		right, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) binaryOp(ops []string) (ast.BinaryOp, bool) {
	for _, sym := range ops {
		if p.match(sym) {
			op, _ := ast.BinaryOpFor(sym)
			return op, true
		}
	}
	return 0, false
}

func (p *parser) unary() (ast.Expr, error) {
	var op ast.UnaryOp
	switch {
	case p.match("-"):
		op = ast.OpNeg
	case p.match("!"):
		op = ast.OpNot
	default:
		return p.primary()
	}
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Operand: operand}, nil
}

func (p *parser) primary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.TokType() {
	case Int:
		p.advance()
		return &ast.IntLit{Val: tok.Value().(int64)}, nil
	case String:
		p.advance()
		return &ast.StringLit{Val: tok.Value().(string)}, nil
	case Ident:
		if isLexeme(p.peekAt(1), "(") {
			return p.call()
		}
		p.advance()
		return &ast.Variable{Name: tok.Lexeme()}, nil
	}
	switch {
	case p.match("true"):
		return &ast.BoolLit{Val: true}, nil
	case p.match("false"):
		return &ast.BoolLit{Val: false}, nil
	case p.match("nil"):
		return &ast.NilLit{}, nil
	case isLexeme(tok, "lambda"):
		p.advance()
		params, err := p.params()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Pos: ast.Pos(tok.Line()), Params: params, Body: body}, nil
	case p.match("("):
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		_, err = p.expect(")")
		return expr, err
	}
	return nil, p.unexpected("expression")
}

func (p *parser) call() (*ast.Call, error) {
	tok := p.advance()
	call := &ast.Call{Pos: ast.Pos(tok.Line()), Name: tok.Lexeme()}
	p.advance() // '('
	if p.match(")") {
		return call, nil
	}
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.match(")") {
			return call, nil
		}
		if _, err := p.expect(","); err != nil {
			return nil, err
		}
	}
}
