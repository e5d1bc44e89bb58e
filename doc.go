/*
Package brewin is the execution core of a tree-walking interpreter for Brewin,
a small dynamically-typed teaching language.

Brewin knows integers, booleans, strings, nil, first-class functions and
lexical closures. Parameters may be passed by reference, and top-level
functions may be overloaded by arity. Package structure is as follows:

■ ast: Package ast defines the closed set of syntax tree nodes the interpreter
consumes.

■ value: Package value implements runtime values and the operator dispatch table.

■ runtime: Package runtime provides scopes, storage cells, reference slots,
closure snapshots and call frames.

■ interp: Package interp resolves functions, executes statements and evaluates
expressions.

■ syntax: Package syntax is a small front end turning source text into an AST.

The base package contains types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package brewin
