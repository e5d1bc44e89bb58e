package runtime

import (
	"fmt"

	"github.com/solomonckwon/brewin/value"
)

// Symbol table for variables. Symbol tables are attached to scopes.
// Scopes are organized in a chain.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol' or 'Variable', but a tag
// is a storage location rather than a name: two scopes may hold tags of the
// same name, and a slot tag refers to the storage of another tag.
//
type Tag struct {
	name  string
	value value.Value // contents of a storage cell
	ref   *Tag        // target of a slot, nil for storage cells
}

// NewTag creates a new storage cell, holding nil.
func NewTag(nm string) *Tag {
	var tag = &Tag{
		name:  nm,
		value: value.Nil,
	}
	return tag
}

// NewSlot creates a slot, i.e. a tag referring to the storage of target.
// Use as
//
//    slot := NewSlot("n", callerScope.Tags().ResolveTag("x"))
//
func NewSlot(nm string, target *Tag) *Tag {
	if target == nil {
		panic(fmt.Sprintf("slot %s must refer to a tag", nm))
	}
	return &Tag{
		name: nm,
		ref:  target,
	}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	if s.IsSlot() {
		return fmt.Sprintf("<tag '%s' -> '%s'>", s.Name(), s.ref.Name())
	}
	return fmt.Sprintf("<tag '%s'=%v>", s.Name(), s.value)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// IsSlot is a predicate: does this tag refer to another tag's storage?
func (s *Tag) IsSlot() bool {
	return s.ref != nil
}

// Cell returns the storage cell of a tag. For a storage cell this is the
// tag itself. For a slot, the chain of slots is followed until a storage cell
// is reached. A slot referring to another slot therefore ends up at the
// original variable.
func (s *Tag) Cell() *Tag {
	t := s
	for t.ref != nil {
		t = t.ref
	}
	return t
}

// Get reads the value stored in a tag's cell.
func (s *Tag) Get() value.Value {
	return s.Cell().value
}

// Set overwrites the value stored in a tag's cell.
func (s *Tag) Set(v value.Value) {
	if v == nil {
		v = value.Nil
	}
	s.Cell().value = v
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table     map[string]*Tag
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Creates non-existent tags on the fly.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := t.createTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag, e.g. a slot.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain symbol definitions. Scopes link back to a
// parent scope, forming a chain.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
//
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-chain-path) the tag was found in.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	tag := s.symtab.ResolveTag(tagname)
	if tag != nil {
		return tag, s
	}
	for s.Parent != nil {
		s = s.Parent
		tag = s.symtab.ResolveTag(tagname)
		if tag != nil {
			return tag, s
		}
	}
	return nil, nil
}
