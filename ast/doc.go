/*
Package ast defines the syntax tree consumed by the Brewin interpreter.

The set of node types is closed: statements and expressions are sealed
interfaces, implemented only by the types of this package. Interpreters
dispatch with exhaustive type switches over them.

	Program   ← Function*
	Function  ← name, Param*, Stmt*
	Stmt      ∈ { *Call, *Assign, *Return, *If, *While }
	Expr      ∈ { *IntLit, *StringLit, *BoolLit, *NilLit, *Variable,
	              *Call, *Unary, *Binary, *Lambda }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
