/*
Package syntax is a front end for Brewin. It scans and parses Brewin source
text into a syntax tree, as defined by package ast.

The scanner is generated by lexmachine from a small set of regular
expressions. The parser is a hand-written recursive descent parser, with one
function per precedence level of the expression grammar:

	program   := function*
	function  := 'func' IDENT '(' params? ')' block
	param     := 'ref'? IDENT
	block     := '{' statement* '}'
	statement := IDENT '=' expr ';'
	           | IDENT '(' args? ')' ';'
	           | 'if' '(' expr ')' block ( 'else' block )?
	           | 'while' '(' expr ')' block
	           | 'return' expr? ';'

Operators, from lowest to highest precedence, are

	||   &&   == !=   < <= > >=   + -   * /   unary - !

Comments start with '//' and extend to the end of the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brewin.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("brewin.syntax")
}
