package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/solomonckwon/brewin/value"
)

// Arena holds the captured environments of closures for a single run of the
// interpreter. Environments are addressed by handle, handles are never
// re-used. Each evaluation of a lambda literal adds a new environment, whereas
// copies of a closure value share the handle and therefore the environment.
type Arena struct {
	snapshots *arraylist.List
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{snapshots: arraylist.New()}
}

// Capture snapshots env and stores the snapshot in the arena.
// Returns the handle of the snapshot.
func (a *Arena) Capture(env *Environment) value.SnapshotID {
	id := value.SnapshotID(a.snapshots.Size())
	snap := env.Snapshot(fmt.Sprintf("closure#%d", id))
	a.snapshots.Add(snap)
	return id
}

// Copy deep-copies the environment of a handle into a new environment of the
// arena. The copy starts out with the current values of the original and
// evolves independently afterwards.
func (a *Arena) Copy(id value.SnapshotID) (value.SnapshotID, bool) {
	env, ok := a.Environment(id)
	if !ok {
		return id, false
	}
	return a.Capture(env), true
}

// Environment returns the captured environment for a handle.
func (a *Arena) Environment(id value.SnapshotID) (*Environment, bool) {
	e, ok := a.snapshots.Get(int(id))
	if !ok {
		return nil, false
	}
	return e.(*Environment), true
}

// Size returns the number of environments in the arena.
func (a *Arena) Size() int {
	return a.snapshots.Size()
}
