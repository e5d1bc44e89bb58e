package runtime

import (
	"github.com/solomonckwon/brewin/value"
)

// Environment is a chain of scopes, treated as a stack: blocks push a new
// scope on entry and pop it on exit. The bottommost scope is the base frame
// of a program run or of a captured closure environment.
//
type Environment struct {
	Name      string
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// NewEnvironment creates an environment with a single base scope.
func NewEnvironment(nm string) *Environment {
	env := &Environment{Name: nm}
	env.PushScope(nm)
	return env
}

// Current gets the current scope of a stack (TOS).
func (env *Environment) Current() *Scope {
	if env.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return env.ScopeTOS
}

// PushScope pushes a scope onto the stack of scopes. A scope is constructed, including a symbol table
// for variable declarations.
func (env *Environment) PushScope(nm string) *Scope {
	scp := env.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the base scope
		env.ScopeBase = newsc // make new scope anchor
	}
	env.ScopeTOS = newsc // new scope now TOS
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (env *Environment) PopScope() *Scope {
	if env.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := env.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	env.ScopeTOS = env.ScopeTOS.Parent
	if env.ScopeTOS == nil {
		env.ScopeBase = nil
	}
	return sc
}

// Depth returns the number of scopes on the stack.
func (env *Environment) Depth() int {
	d := 0
	for sc := env.ScopeTOS; sc != nil; sc = sc.Parent {
		d++
	}
	return d
}

// ResolveTag finds the innermost tag for a name, or nil.
func (env *Environment) ResolveTag(name string) *Tag {
	tag, _ := env.Current().ResolveTag(name)
	return tag
}

// Lookup searches the scopes innermost to outermost and returns the value
// of the first binding for name. Slots are read through.
func (env *Environment) Lookup(name string) (value.Value, bool) {
	tag := env.ResolveTag(name)
	if tag == nil {
		return nil, false
	}
	return tag.Get(), true
}

// Assign overwrites the innermost binding for name, writing through slots.
// If name is not bound in any scope, it is bound in the innermost scope.
func (env *Environment) Assign(name string, v value.Value) {
	tag := env.ResolveTag(name)
	if tag == nil {
		tag, _ = env.Current().Tags().ResolveOrDefineTag(name)
		tracer().Debugf("implicit declaration of %s in %v", name, env.Current())
	}
	tag.Set(v)
}

// Declare binds name in the innermost scope, shadowing bindings of outer
// scopes and replacing a binding in the innermost scope.
func (env *Environment) Declare(name string, v value.Value) *Tag {
	tag, _ := env.Current().DefineTag(name)
	tag.Set(v)
	return tag
}

// DeclareSlot binds name in the innermost scope to a slot referring to target.
func (env *Environment) DeclareSlot(name string, target *Tag) *Tag {
	slot := NewSlot(name, target)
	env.Current().Tags().InsertTag(slot)
	return slot
}

// Snapshot creates a structural copy of the environment. Every scope is
// copied, and every binding is copied into a fresh storage cell holding the
// binding's current value. Slots do not survive a snapshot, as the call
// frame which introduced them may end before the snapshot does; the copy
// holds the value the slot refers to at the time of the snapshot.
//
// Snapshot and original do not share any storage afterwards.
func (env *Environment) Snapshot(nm string) *Environment {
	var chain []*Scope
	for sc := env.ScopeTOS; sc != nil; sc = sc.Parent {
		chain = append(chain, sc)
	}
	snap := &Environment{Name: nm}
	for i := len(chain) - 1; i >= 0; i-- {
		copied := snap.PushScope(chain[i].Name)
		chain[i].Tags().Each(func(name string, tag *Tag) {
			cell, _ := copied.DefineTag(name)
			cell.Set(tag.Get())
		})
	}
	tracer().Debugf("snapshot %s of %s has %d scopes", nm, env.Name, len(chain))
	return snap
}
