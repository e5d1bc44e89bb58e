/*
Command brewin runs a Brewin program.

	brewin [flags] program.brwn

The program's function main() is called. Input for inputi() and inputs() is
read from the terminal, output of print() goes to standard output.

Flags are

	-trace    trace level [Debug|Info|Error], default Error
	-ast      display the syntax tree of the program before running it
	-max-depth  maximum nesting depth of calls, 0 for unlimited

The exit status is 1 if the program fails with a NAME_ERROR or TYPE_ERROR,
2 if it cannot be parsed and 3 for any other error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brewin.cli'
func tracer() tracing.Trace {
	return tracing.Select("brewin.cli")
}
