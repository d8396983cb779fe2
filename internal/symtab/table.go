// Package symtab implements the dense, monotonic name-to-index mappings that
// back a Model's state and parameter vectors.
package symtab

// Index is a dense position into a StateVector or ParamVector. Once a name is
// interned it keeps the same Index for the model's lifetime.
type Index int

// NotFound is returned by Lookup for an unknown name.
const NotFound Index = -1

// Table is an injective name<->index mapping over a single namespace (species
// or parameters). Insertion assigns the next free index; indices are never
// reassigned or reused.
type Table struct {
	nameToIndex map[string]Index
	names       []string
}

// New returns an empty Table.
func New() *Table {
	return &Table{nameToIndex: map[string]Index{}}
}

// Intern returns the index for name, assigning the next free index on first
// sight. Interning the same name twice returns the same index.
func (t *Table) Intern(name string) Index {
	if idx, ok := t.nameToIndex[name]; ok {
		return idx
	}
	idx := Index(len(t.names))
	t.nameToIndex[name] = idx
	t.names = append(t.names, name)
	return idx
}

// Lookup returns the index for name, or NotFound if name was never interned.
func (t *Table) Lookup(name string) Index {
	if idx, ok := t.nameToIndex[name]; ok {
		return idx
	}
	return NotFound
}

// Has reports whether name has been interned.
func (t *Table) Has(name string) bool {
	_, ok := t.nameToIndex[name]
	return ok
}

// Name returns the name interned at idx. It panics if idx is out of range,
// which indicates a caller bug (an index must always have been produced by
// this same Table).
func (t *Table) Name(idx Index) string {
	return t.names[idx]
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the interned names in index order. The returned slice must
// not be mutated by the caller.
func (t *Table) Names() []string {
	return t.names
}
