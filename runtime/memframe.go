package runtime

import (
	"errors"
	"fmt"
)

// This module implements a stack of call frames.
// Call frames are used by an interpreter to remember which environment is
// active during a call, and which one to return to after the call.

// ErrCallDepthExceeded is returned if a program nests calls deeper than
// a call stack allows. This is a resource limit of the host, not an error
// of the Brewin program.
var ErrCallDepthExceeded = errors.New("maximum call depth exceeded")

// CallFrame is a frame of the call stack, representing an active call.
type CallFrame struct {
	Name   string       // name of the callee, for tracing
	Env    *Environment // environment active during the call
	Parent *CallFrame
	depth  int
}

// NewCallFrame creates a new call frame.
func NewCallFrame(nm string, env *Environment) *CallFrame {
	cf := &CallFrame{
		Name: nm,
		Env:  env,
	}
	return cf
}

func (cf *CallFrame) String() string {
	return fmt.Sprintf("<frame %s -> %s>", cf.Name, cf.Env.Name)
}

// Depth returns the number of frames up to and including this one.
func (cf *CallFrame) Depth() int {
	return cf.depth
}

// ---------------------------------------------------------------------------

// CallStack is a stack of call frames. A call stack may be limited to a
// maximum depth; a limit of 0 means unlimited.
type CallStack struct {
	MaxDepth  int
	frameBase *CallFrame
	frameTOS  *CallFrame
}

// Current gets the current call frame of a stack (TOS).
func (cst *CallStack) Current() *CallFrame {
	if cst.frameTOS == nil {
		panic("attempt to access call frame from empty stack")
	}
	return cst.frameTOS
}

// Env is a shortcut for the environment of the current frame.
func (cst *CallStack) Env() *Environment {
	return cst.Current().Env
}

// Size returns the number of frames on the stack.
func (cst *CallStack) Size() int {
	if cst.frameTOS == nil {
		return 0
	}
	return cst.frameTOS.depth
}

// PushCallFrame pushes a new call frame as TOS, with env as the active
// environment. If the stack would grow beyond its maximum depth, no frame
// is pushed and ErrCallDepthExceeded is returned.
//
func (cst *CallStack) PushCallFrame(nm string, env *Environment) (*CallFrame, error) {
	cfp := cst.frameTOS
	if cst.MaxDepth > 0 && cst.Size() >= cst.MaxDepth {
		tracer().Errorf("call of %s exceeds call depth of %d", nm, cst.MaxDepth)
		return nil, ErrCallDepthExceeded
	}
	newcf := NewCallFrame(nm, env)
	newcf.Parent = cfp
	newcf.depth = 1
	if cfp == nil { // the new frame is the global frame
		cst.frameBase = newcf // make new frame anchor
	} else {
		newcf.depth = cfp.depth + 1
	}
	cst.frameTOS = newcf // new frame now TOS
	tracer().P("frame", newcf.Name).Debugf("pushing new call frame")
	return newcf, nil
}

// PopCallFrame pops the top-most call frame. Returns the popped frame.
// Afterwards the caller's environment is the active one.
func (cst *CallStack) PopCallFrame() *CallFrame {
	if cst.frameTOS == nil {
		panic("attempt to pop call frame from empty call stack")
	}
	cf := cst.frameTOS
	tracer().Debugf("popping call frame [%s]", cf.Name)
	cst.frameTOS = cst.frameTOS.Parent
	if cst.frameTOS == nil {
		cst.frameBase = nil
	}
	return cf
}

// FindCallFrameForEnv finds the top-most call frame running in env.
func (cst *CallStack) FindCallFrameForEnv(env *Environment) *CallFrame {
	cf := cst.frameTOS
	for cf != nil {
		if cf.Env == env {
			return cf
		}
		cf = cf.Parent
	}
	return nil
}
