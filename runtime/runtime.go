package runtime

// Runtime is a type implementing a runtime environment for an interpreter.
// A runtime is good for a single run of a program.
type Runtime struct {
	Globals   *Environment // environment of the program's main call chain
	CallStack *CallStack   // runtime stack of call frames
	Closures  *Arena       // captured environments of closures
}

// NewRuntimeEnvironment constructs
// a new runtime environment, initialized. The global call frame is pushed,
// running in a fresh global environment. maxDepth limits the call stack,
// 0 means unlimited.
//
func NewRuntimeEnvironment(maxDepth int) *Runtime {
	rt := &Runtime{}
	rt.Globals = NewEnvironment("globals")        // environment for the main program
	rt.CallStack = &CallStack{MaxDepth: maxDepth} // initialize call stack
	rt.Closures = NewArena()
	if _, err := rt.CallStack.PushCallFrame("global", rt.Globals); err != nil {
		panic(err) // cannot happen for an empty stack
	}
	return rt
}

// Env returns the environment active for the current call.
func (rt *Runtime) Env() *Environment {
	return rt.CallStack.Env()
}
