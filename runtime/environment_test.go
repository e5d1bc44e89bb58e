package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/solomonckwon/brewin/value"
)

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	env := NewEnvironment("test")
	env.Declare("x", value.Int(1))
	env.PushScope("inner")
	env.Declare("x", value.Int(2))
	if v, _ := env.Lookup("x"); v != value.Int(2) {
		t.Errorf("expected inner x = 2, got %v", v)
	}
	env.PopScope()
	if v, _ := env.Lookup("x"); v != value.Int(1) {
		t.Errorf("expected outer x = 1 after pop, got %v", v)
	}
}

func TestAssignMutatesOuterOrDeclaresInner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	env := NewEnvironment("test")
	env.Assign("x", value.Int(1))
	env.PushScope("block")
	env.Assign("x", value.Int(10)) // visible: mutate in place
	env.Assign("y", value.Int(20)) // not visible: bind in innermost scope
	if env.Current().Tags().ResolveTag("x") != nil {
		t.Errorf("x should not have been bound in the inner scope")
	}
	env.PopScope()
	if v, _ := env.Lookup("x"); v != value.Int(10) {
		t.Errorf("expected x = 10, got %v", v)
	}
	if _, ok := env.Lookup("y"); ok {
		t.Errorf("y should have gone with its scope")
	}
}

func TestAssignWritesThroughSlot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	env := NewEnvironment("test")
	x := env.Declare("x", value.Int(5))
	env.PushScope("call incr")
	env.DeclareSlot("n", x)
	v, _ := env.Lookup("n")
	env.Assign("n", value.Int(int64(v.(value.Int))+1))
	env.PopScope()
	if v, _ := env.Lookup("x"); v != value.Int(6) {
		t.Errorf("expected x = 6, got %v", v)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	env := NewEnvironment("test")
	x := env.Declare("count", value.Int(0))
	env.PushScope("call f")
	env.DeclareSlot("r", x)
	snap := env.Snapshot("snap")
	if snap.Depth() != env.Depth() {
		t.Errorf("expected snapshot depth %d, got %d", env.Depth(), snap.Depth())
	}
	snap.Assign("count", value.Int(1))
	snap.Assign("r", value.Int(7))
	if v, _ := env.Lookup("count"); v != value.Int(0) {
		t.Errorf("snapshot writes leaked into the original: count = %v", v)
	}
	if tag := snap.ResolveTag("r"); tag == nil || tag.IsSlot() {
		t.Errorf("expected slot to be flattened into a cell in the snapshot")
	}
	env.Assign("count", value.Int(3))
	if v, _ := snap.Lookup("count"); v != value.Int(1) {
		t.Errorf("original writes leaked into the snapshot: count = %v", v)
	}
}

func TestPopScopeFromEmptyEnvironmentPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	env := NewEnvironment("test")
	env.PopScope()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected pop from empty environment to panic")
		}
	}()
	env.PopScope()
}

func TestArenaHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	env := NewEnvironment("test")
	env.Declare("a", value.Int(1))
	arena := NewArena()
	id1 := arena.Capture(env)
	id2 := arena.Capture(env)
	if id1 == id2 {
		t.Fatalf("expected distinct handles for distinct captures")
	}
	e1, ok1 := arena.Environment(id1)
	e2, ok2 := arena.Environment(id2)
	if !ok1 || !ok2 || e1 == e2 {
		t.Fatalf("expected two distinct captured environments")
	}
	e1.Assign("a", value.Int(100))
	if v, _ := e2.Lookup("a"); v != value.Int(1) {
		t.Errorf("captured environments share storage: a = %v", v)
	}
	if _, ok := arena.Environment(value.SnapshotID(42)); ok {
		t.Errorf("expected unknown handle to fail")
	}
}

func TestArenaCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	env := NewEnvironment("test")
	env.Declare("a", value.Int(1))
	arena := NewArena()
	id := arena.Capture(env)
	orig, _ := arena.Environment(id)
	orig.Assign("a", value.Int(2))
	cid, ok := arena.Copy(id)
	if !ok || cid == id {
		t.Fatalf("expected copy to get a handle of its own, got %d for %d", cid, id)
	}
	cp, _ := arena.Environment(cid)
	if v, _ := cp.Lookup("a"); v != value.Int(2) {
		t.Errorf("expected copy to start with current value 2, a = %v", v)
	}
	cp.Assign("a", value.Int(3))
	if v, _ := orig.Lookup("a"); v != value.Int(2) {
		t.Errorf("copy shares storage with its origin: a = %v", v)
	}
	if _, ok := arena.Copy(value.SnapshotID(42)); ok {
		t.Errorf("expected copy of unknown handle to fail")
	}
	if arena.Size() != 2 {
		t.Errorf("expected 2 environments in arena, got %d", arena.Size())
	}
}

func TestCallStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brewin.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment(3)
	closureEnv := NewEnvironment("closure")
	if _, err := rt.CallStack.PushCallFrame("main", rt.Globals); err != nil {
		t.Fatal(err)
	}
	if _, err := rt.CallStack.PushCallFrame("lambda", closureEnv); err != nil {
		t.Fatal(err)
	}
	if rt.Env() != closureEnv {
		t.Errorf("expected closure environment to be active")
	}
	if _, err := rt.CallStack.PushCallFrame("too-deep", rt.Globals); err != ErrCallDepthExceeded {
		t.Errorf("expected call depth to be exceeded, got %v", err)
	}
	if cf := rt.CallStack.FindCallFrameForEnv(rt.Globals); cf == nil || cf.Name != "main" {
		t.Errorf("expected to find frame 'main' for globals, got %v", cf)
	}
	rt.CallStack.PopCallFrame()
	if rt.Env() != rt.Globals {
		t.Errorf("expected caller's environment to be active after pop")
	}
	if rt.CallStack.Size() != 2 {
		t.Errorf("expected 2 frames, have %d", rt.CallStack.Size())
	}
}
