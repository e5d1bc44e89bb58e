package syntax

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/solomonckwon/brewin"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types produced by the scanner.
const (
	EOF     brewin.TokType = iota // end of input
	Ident                         // identifier
	Int                           // decimal integer literal
	String                        // string literal in double quotes
	Keyword                       // reserved word
	Op                            // operator or punctuation
)

// The operator and punctuation tokens
var literals = []string{"(", ")", "{", "}", ",", ";", "=",
	"+", "-", "*", "/", "!", "<", ">",
	"==", "!=", "<=", ">=", "&&", "||"}

// The reserved words. They are scanned as identifiers first, as the
// lexer would otherwise prefer keywords over identifiers with a keyword
// as a prefix, e.g. 'iffy'.
var keywords = map[string]bool{
	"func": true, "ref": true, "lambda": true,
	"if": true, "else": true, "while": true, "return": true,
	"true": true, "false": true, "nil": true,
}

var lexer *lexmachine.Lexer
var lexerErr error
var lexOnce sync.Once // monitors one-time compilation of the lexer

// Lexer returns the lexmachine lexer for Brewin. The DFA is compiled on
// first use.
func Lexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`//[^\n]*\n?`), skip)
		lx.Add([]byte(`\"[^"\n]*\"`), makeToken(String))
		lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(Ident))
		lx.Add([]byte(`[0-9]+`), makeToken(Int))
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lx.Add([]byte(r), makeToken(Op))
		}
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexer action which wraps a scanned match into a token.
func makeToken(typ brewin.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// --- Tokens ----------------------------------------------------------------

// token is the token type of Brewin.
type token struct {
	typ    brewin.TokType
	lexeme string
	value  interface{}
	span   brewin.Span
	line   int
}

var _ brewin.Token = token{}

func (t token) TokType() brewin.TokType { return t.typ }
func (t token) Lexeme() string { return t.lexeme }
func (t token) Value() interface{} { return t.value }
func (t token) Span() brewin.Span { return t.span }
func (t token) Line() int { return t.line }

func (t token) String() string {
	if t.typ == EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.lexeme)
}

// --- Scanning --------------------------------------------------------------

// Scanner reads tokens from Brewin source text.
type Scanner struct {
	scanner *lexmachine.Scanner
	source  []byte
	last    int // line of the last token read
}

// NewScanner creates a scanner for a source text.
func NewScanner(source string) (*Scanner, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	text := []byte(source)
	s, err := lx.Scanner(text)
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, source: text, last: 1}, nil
}

// NextToken returns the next token of the input, or a token of type EOF
// at the end of the input. Input which cannot be scanned results in
// a *syntax.Error.
func (sc *Scanner) NextToken() (brewin.Token, error) {
	tok, err, eof := sc.scanner.Next()
	if err != nil {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			sc.scanner.TC = ui.FailTC
			return nil, errorf(sc.lineAt(ui.FailTC), "unexpected input %q", sc.excerpt(ui.FailTC))
		}
		return nil, errorf(sc.last, "%v", err)
	}
	if eof {
		return token{typ: EOF, line: sc.last}, nil
	}
	lmtok := tok.(*lexmachine.Token)
	t := token{
		typ:    brewin.TokType(lmtok.Type),
		lexeme: string(lmtok.Lexeme),
		span:   brewin.Span{uint64(lmtok.TC), uint64(lmtok.TC + len(lmtok.Lexeme))},
		line:   sc.lineAt(lmtok.TC),
	}
	sc.last = t.line
	switch t.typ {
	case Ident:
		if keywords[t.lexeme] {
			t.typ = Keyword
		}
	case Int:
		n, err := strconv.ParseInt(t.lexeme, 10, 64)
		if err != nil {
			return nil, errorf(t.line, "integer literal %s out of range", t.lexeme)
		}
		t.value = n
	case String:
		t.value = t.lexeme[1 : len(t.lexeme)-1]
	}
	tracer().Debugf("token %d | %s", t.typ, t.lexeme)
	return t, nil
}

// Tokenize scans a complete source text.
func Tokenize(source string) ([]brewin.Token, error) {
	sc, err := NewScanner(source)
	if err != nil {
		return nil, err
	}
	var toks []brewin.Token
	for {
		tok, err := sc.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.TokType() == EOF {
			return toks, nil
		}
	}
}

// lineAt returns the 1-based line of a text position.
func (sc *Scanner) lineAt(tc int) int {
	if tc > len(sc.source) {
		tc = len(sc.source)
	}
	return 1 + bytes.Count(sc.source[:tc], []byte{'\n'})
}

// excerpt returns the source text from tc to the end of its line.
func (sc *Scanner) excerpt(tc int) string {
	if tc >= len(sc.source) {
		return ""
	}
	rest := sc.source[tc:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return string(rest)
}
