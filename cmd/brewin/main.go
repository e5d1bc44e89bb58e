package main

import (
	"errors"
	"flag"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/interp"
	"github.com/solomonckwon/brewin/syntax"
)

// Exit codes
const (
	exitOK = iota
	exitProgramError
	exitSyntaxError
	exitFailure
)

// Trace keys of the interpreter's packages
var traceKeys = []string{"brewin.cli", "brewin.syntax", "brewin.runtime", "brewin.interp"}

// main() reads a Brewin program from a file, parses it and runs it.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	dumpAST := flag.Bool("ast", false, "Display the syntax tree before running")
	maxDepth := flag.Int("max-depth", interp.DefaultMaxCallDepth, "Maximum call depth, 0 for unlimited")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	if flag.NArg() != 1 {
		pterm.Error.Println("usage: brewin [flags] program")
		flag.PrintDefaults()
		os.Exit(exitFailure)
	}
	os.Exit(run(flag.Arg(0), *dumpAST, *maxDepth))
}

func run(filename string, dumpAST bool, maxDepth int) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitFailure
	}
	prog, err := syntax.Parse(string(source))
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitSyntaxError
	}
	tracer().Infof("Successfully parsed %s", filename)
	if dumpAST {
		displayTree(filename, prog)
	}
	host := newConsoleHost()
	defer host.Close()
	return execute(prog, host, maxDepth)
}

// execute runs a program and maps the outcome to an exit code.
func execute(prog *ast.Program, host interp.Host, maxDepth int) int {
	err := interp.Run(prog, host, interp.MaxCallDepth(maxDepth))
	var berr *brewin.Error
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &berr): // already reported by the host
		return exitProgramError
	}
	pterm.Error.Println(err.Error())
	return exitFailure
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
