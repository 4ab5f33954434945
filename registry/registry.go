package registry

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/pcomb/comb"
)

// --- Entries ---------------------------------------------------------------

// Entry is a named parser, to be stored into a table.
type Entry struct {
	name   string
	Parser comb.Parser
	Doc    string // one-line description
}

// NewEntry creates a new entry. The parser will be wrapped by comb.Named,
// so runs of it are traced under its name.
func NewEntry(name string, p comb.Parser, doc string) *Entry {
	return &Entry{
		name:   name,
		Parser: comb.Named(name, p),
		Doc:    doc,
	}
}

// Name gets the entry's name.
func (e *Entry) Name() string {
	return e.name
}

// String is a debug Stringer for entries.
func (e *Entry) String() string {
	return fmt.Sprintf("<parser '%s'>", e.name)
}

// === Tables ================================================================

// Table stores named parsers (map-like semantics). Tables are not safe for
// concurrent modification.
type Table struct {
	entries map[string]*Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]*Entry),
	}
}

// Resolve checks for an entry in the table. Returns the entry or nil.
func (t *Table) Resolve(name string) *Entry {
	return t.entries[name]
}

// Lookup returns the parser stored under name, or an error if there is none.
func (t *Table) Lookup(name string) (comb.Parser, error) {
	e := t.Resolve(name)
	if e == nil {
		tracer().Debugf("no parser named '%s'", name)
		return nil, fmt.Errorf("unknown parser '%s'", name)
	}
	return e.Parser, nil
}

// Define creates a new entry and stores it into the table. The name may not
// be empty and the parser may not be nil. Overwrites an existing entry with
// this name, if any. Returns the new entry and the previously stored one
// (or nil).
func (t *Table) Define(name string, p comb.Parser, doc string) (*Entry, *Entry) {
	if len(name) == 0 || p == nil {
		return nil, nil
	}
	e := NewEntry(name, p, doc)
	old := t.Insert(e)
	tracer().Debugf("defined parser '%s'", name)
	return e, old
}

// ResolveOrDefine finds an entry in the table, inserts a new one if not
// found. Returns the entry and a flag, signalling whether the entry has
// already been present.
func (t *Table) ResolveOrDefine(name string, p comb.Parser, doc string) (*Entry, bool) {
	if len(name) == 0 {
		return nil, false
	}
	if e := t.Resolve(name); e != nil {
		return e, true
	}
	e, _ := t.Define(name, p, doc)
	return e, false
}

// Insert inserts a pre-created entry. Returns the entry previously stored
// under the same name, if any.
func (t *Table) Insert(e *Entry) *Entry {
	old := t.Resolve(e.name)
	t.entries[e.name] = e
	return old
}

// Size counts the entries in a table.
func (t *Table) Size() int {
	return len(t.entries)
}

// Names returns the names of all entries in alphabetical order.
func (t *Table) Names() []string {
	list := arraylist.New()
	for name := range t.entries {
		list.Add(name)
	}
	list.Sort(utils.StringComparator)
	names := make([]string, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		names = append(names, it.Value().(string))
	}
	return names
}

// Each iterates over the entries in alphabetical order, executing a mapper
// function.
func (t *Table) Each(mapper func(string, *Entry)) {
	for _, name := range t.Names() {
		mapper(name, t.entries[name])
	}
}
