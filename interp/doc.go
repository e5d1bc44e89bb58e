/*
Package interp implements the evaluation engine of Brewin: the function
resolver, the statement executor and the expression evaluator.

The executor runs blocks of statements, each in a scope of its own.
Statements report an execution status together with a value: either
execution continues with the next statement, or a return statement
has been executed and the block unwinds, carrying the returned value
up to the call boundary.

Calls

Arguments are evaluated in the caller's environment, left to right.
Calls to top-level functions run in the caller's environment, extended
by a scope for the parameters. Calls to closures run in the environment
captured when the lambda literal was evaluated. A parameter declared with
'ref' is bound to the caller's variable, if the argument is a variable;
otherwise it receives a copy of the argument's value, as do plain parameters.

Errors

Errors of a Brewin program are either a NAME_ERROR or a TYPE_ERROR. Both are
fatal. They are returned as *brewin.Error and reported to the host exactly
once, via Host.Fail.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brewin.interp'.
func tracer() tracing.Trace {
	return tracing.Select("brewin.interp")
}
