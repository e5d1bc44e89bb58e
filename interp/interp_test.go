package interp

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/solomonckwon/brewin"
	"github.com/solomonckwon/brewin/ast"
	"github.com/solomonckwon/brewin/runtime"
	"github.com/solomonckwon/brewin/syntax"
)

// runSource parses and runs a program, returning the host it ran in.
func runSource(t *testing.T, source string, inputs ...string) (*ScriptedHost, error) {
	t.Helper()
	prog, err := syntax.Parse(source)
	if err != nil {
		t.Fatalf("cannot parse test program: %v", err)
	}
	host := NewScriptedHost(inputs...)
	err = Run(prog, host)
	return host, err
}

func expectOutput(t *testing.T, host *ScriptedHost, err error, lines ...string) {
	t.Helper()
	if err != nil {
		t.Fatalf("program failed: %v", err)
	}
	if strings.Join(host.Lines, "\n") != strings.Join(lines, "\n") {
		t.Errorf("expected output %q, got %q", lines, host.Lines)
	}
}

func expectError(t *testing.T, host *ScriptedHost, err error, kind brewin.ErrorKind) *brewin.Error {
	t.Helper()
	var berr *brewin.Error
	if !errors.As(err, &berr) {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	if berr.Kind != kind {
		t.Errorf("expected %s, got %v", kind, berr)
	}
	if host.Kind != kind {
		t.Errorf("expected host to be notified of %s, got %s", kind, host.Kind)
	}
	return berr
}

func TestHelloWorld(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `func main() { print("hello ", "world ", 42, " ", true, " ", nil); }`)
	expectOutput(t, host, err, "hello world 42 true nil")
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func f(x) { print(x); x = 3; print(x); }
	func main() {
		x = 1;
		f(2);
		print(x);
		if (true) { x = 4; y = 5; }
		print(x);
	}`)
	expectOutput(t, host, err, "2", "3", "1", "4")
}

func TestBlockScopedVariablesVanish(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func main() {
		if (true) { y = 5; }
		print(y);
	}`)
	expectError(t, host, err, brewin.NameError)
}

func TestValueParameterIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func change(a) { a = a + 100; return a; }
	func main() {
		x = 1;
		print(change(x));
		print(x);
	}`)
	expectOutput(t, host, err, "101", "1")
}

func TestReferencePropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func inc(ref a) { a = a + 1; }
	func twice(ref b) { inc(b); inc(b); }
	func main() {
		x = 1;
		inc(x);
		print(x);
		twice(x);
		print(x);
		inc(5);
		inc(x + 1);
		print(x);
	}`)
	expectOutput(t, host, err, "2", "4", "4")
}

func TestReferenceToClosureParameter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func main() {
		x = 1;
		inc = lambda(ref a) { a = a + 1; };
		inc(x);
		print(x);
	}`)
	expectOutput(t, host, err, "2")
}

func TestClosureStatefulness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func counter() {
		c = 0;
		return lambda() { c = c + 1; return c; };
	}
	func main() {
		f = counter();
		print(f());
		print(f());
		g = counter();
		print(g());
		print(f());
	}`)
	expectOutput(t, host, err, "1", "2", "1", "3")
}

func TestLambdaLiteralInLoopCapturesAnew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func main() {
		n = 0;
		i = 0;
		while (i < 2) {
			f = lambda() { n = n + 1; return n; };
			print(f(), f());
			i = i + 1;
		}
		print(n);
	}`)
	expectOutput(t, host, err, "12", "12", "0")
}

func TestClosureCapturesSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func main() {
		x = 1;
		f = lambda(y) { return x + y; };
		x = 2;
		print(f(10));
		print(x);
	}`)
	expectOutput(t, host, err, "11", "2")
}

func TestClosureEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func mk() { return lambda() { return 1; }; }
	func id(v) { return v; }
	func main() {
		f = mk();
		g = f;
		print(f == g, " ", id(f) == f, " ", mk() == mk(), " ", f == nil);
	}`)
	expectOutput(t, host, err, "true false false false")
}

func TestReturnedClosureHasOwnState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func pass(fn) { return fn; }
	func call(fn) { return fn(); }
	func main() {
		c = 0;
		f = lambda() { c = c + 1; return c; };
		g = pass(f);
		print(g == f);
		print(f());
		print(g());
		print(call(f));
		print(f());
		print(c);
	}`)
	expectOutput(t, host, err, "false", "1", "1", "2", "3", "0")
}

func TestOverloadResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func f() { return 0; }
	func f(a) { return a; }
	func f(a, b) { return a + b; }
	func main() {
		print(f(), f(1), f(1, 2));
	}`)
	expectOutput(t, host, err, "013")
	//
	host, err = runSource(t, `
	func f() { return 0; }
	func f(a) { return a; }
	func main() { f(1, 2, 3); }`)
	expectError(t, host, err, brewin.NameError)
}

func TestFunctionsAsValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func sq(x) { return x * x; }
	func apply(fn, v) { return fn(v); }
	func main() {
		h = sq;
		print(h(3), " ", apply(sq, 4), " ", h == sq);
	}`)
	expectOutput(t, host, err, "9 16 true")
	//
	host, err = runSource(t, `
	func f() { return 0; }
	func f(a) { return a; }
	func main() { g = f; }`)
	expectError(t, host, err, brewin.NameError)
}

func TestCallErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	programs := []struct {
		src  string
		kind brewin.ErrorKind
	}{
		{`func main() { nosuch(); }`, brewin.NameError},
		{`func main() { x = 1; x(); }`, brewin.TypeError},
		{`func main() { f = lambda(a) { return a; }; f(); }`, brewin.TypeError},
		{`func sq(a) { return a; } func main() { g = sq; g(1, 2); }`, brewin.TypeError},
		{`func main() { print(y); }`, brewin.NameError},
		{`func notmain() { }`, brewin.NameError},
		{`func main(x) { }`, brewin.NameError},
	}
	for _, p := range programs {
		host, err := runSource(t, p.src)
		expectError(t, host, err, p.kind)
	}
}

func TestControlFlow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func find(limit) {
		i = 0;
		while (true) {
			if (i * i > limit) {
				return i;
			}
			i = i + 1;
		}
		print("not reached");
	}
	func nothing() { x = 1; }
	func bare() { return; print("not reached"); }
	func main() {
		print(find(10));
		print(nothing(), bare());
		if (0) { print("zero"); } else { print("else"); }
		if (2) { print("two"); }
	}`)
	expectOutput(t, host, err, "4", "nilnil", "else", "two")
}

func TestRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func fact(n) {
		if (n <= 1) { return 1; }
		return n * fact(n - 1);
	}
	func main() { print(fact(10)); }`)
	expectOutput(t, host, err, "3628800")
}

func TestDynamicScopeOfFunctionCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func show() { print(x); }
	func main() { x = 5; show(); }`)
	expectOutput(t, host, err, "5")
}

func TestOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func main() {
		print(7 / 2, " ", -7 / 2, " ", 7 / -2);
		print(1 == true, 0 == false, 5 != true, "a" == 1, nil == nil);
		print(true + true, " ", "a" + "b", " ", !0, " ", -true);
		print(1 && 0, 1 || 0, 3 < 4, 4 <= 3);
	}`)
	expectOutput(t, host, err, "3 -4 -4", "truetruefalsefalsetrue", "2 ab true -1", "falsetruetruefalse")
}

func TestTypeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	programs := []string{
		`func main() { x = 1 / 0; }`,
		`func main() { x = "a" + 1; }`,
		`func main() { x = "a" < "b"; }`,
		`func main() { x = nil + 1; }`,
		`func main() { x = -"a"; }`,
		`func main() { if ("yes") { } }`,
		`func main() { while (nil) { } }`,
		`func f() { } func main() { print(f); }`,
		`func main() { f = lambda() { }; x = f + 1; }`,
	}
	for _, src := range programs {
		host, err := runSource(t, src)
		expectError(t, host, err, brewin.TypeError)
	}
}

func TestErrorCarriesLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, "func main() {\n  x = 1;\n  if (true) {\n    y = x + \"a\";\n  }\n}")
	berr := expectError(t, host, err, brewin.TypeError)
	if berr.Line != 4 {
		t.Errorf("expected error on line 4, got line %d", berr.Line)
	}
}

func TestInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `
	func main() {
		n = inputi("number: ");
		s = inputs();
		print(n + 1, s);
	}`, "41", "!")
	expectOutput(t, host, err, "number: ", "42!")
	//
	host, err = runSource(t, `func main() { n = inputi(); }`, "forty-two")
	expectError(t, host, err, brewin.TypeError)
	//
	host, err = runSource(t, `func main() { n = inputs("a", "b"); }`, "x")
	expectError(t, host, err, brewin.NameError)
}

func TestInputExhausted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	host, err := runSource(t, `func main() { n = inputi(); }`)
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if host.Kind != brewin.NoError {
		t.Errorf("expected no error reported to host, got %s", host.Kind)
	}
}

func TestCallDepthIsLimited(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	prog, err := syntax.Parse(`
	func down(n) { return down(n + 1); }
	func main() { down(0); }`)
	if err != nil {
		t.Fatal(err)
	}
	host := NewScriptedHost()
	err = Run(prog, host, MaxCallDepth(50))
	if !errors.Is(err, runtime.ErrCallDepthExceeded) {
		t.Errorf("expected call depth to be exceeded, got %v", err)
	}
	if host.Kind != brewin.NoError {
		t.Errorf("expected no error reported to host, got %s", host.Kind)
	}
}

// countingHost counts the failures reported to it.
type countingHost struct {
	ScriptedHost
	failures int
}

func (h *countingHost) Fail(kind brewin.ErrorKind, msg string) {
	h.failures++
	h.ScriptedHost.Fail(kind, msg)
}

func TestFailIsReportedOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	prog, err := syntax.Parse(`
	func inner() { return 1 + "x"; }
	func outer() { while (true) { if (true) { return inner(); } } }
	func main() { outer(); }`)
	if err != nil {
		t.Fatal(err)
	}
	host := &countingHost{}
	intp := New(host)
	if err = intp.Run(prog); err == nil {
		t.Fatal("expected program to fail")
	}
	if host.failures != 1 || host.Kind != brewin.TypeError {
		t.Errorf("expected exactly one TYPE_ERROR, got %d failures of kind %s", host.failures, host.Kind)
	}
	if !strings.Contains(host.Message, "TYPE_ERROR") {
		t.Errorf("expected message to name the error kind, got %q", host.Message)
	}
}

func TestHandBuiltProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	// func main() { x = 6 * 7; print(x); }
	prog := &ast.Program{Functions: []*ast.Function{{
		Name: "main",
		Body: []ast.Stmt{
			&ast.Assign{Name: "x", Expr: &ast.Binary{
				Op:    ast.OpMul,
				Left:  &ast.IntLit{Val: 6},
				Right: &ast.IntLit{Val: 7},
			}},
			&ast.Call{Name: "print", Args: []ast.Expr{&ast.Variable{Name: "x"}}},
		},
	}}}
	host := NewScriptedHost()
	err := Run(prog, host)
	expectOutput(t, host, err, "42")
}

func TestRunsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.interp")
	defer teardown()
	//
	prog, err := syntax.Parse(`func main() { print(x); x = 1; }`)
	if err != nil {
		t.Fatal(err)
	}
	host := NewScriptedHost()
	intp := New(host)
	for i := 0; i < 2; i++ {
		err = intp.Run(prog)
		expectError(t, host, err, brewin.NameError)
	}
}
