package keymap

import (
	"strconv"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
)

// Table holds the bindings of one mode in insertion order.
type Table struct {
	// Name is the mode name the table belongs to, e.g. "normal".
	Name string

	bindings  []Binding
	installed bool
}

// NewTable creates an empty table.
func NewTable(name string) *Table {
	return &Table{
		Name:     name,
		bindings: make([]Binding, 0),
	}
}

// Bind appends a binding. An empty key sequence is ignored and Bind
// returns false.
func (t *Table) Bind(keys key.Sequence, cmd string, args ...string) bool {
	if keys.IsEmpty() {
		return false
	}
	t.bindings = append(t.bindings, NewBinding(keys, cmd, args...))
	return true
}

// Unbind removes the first binding whose keys equal keys exactly.
// Returns false if there was none.
func (t *Table) Unbind(keys key.Sequence) bool {
	i := t.index(keys)
	if i < 0 {
		return false
	}
	t.bindings = append(t.bindings[:i], t.bindings[i+1:]...)
	return true
}

// Find returns the first binding for keys.
func (t *Table) Find(keys key.Sequence) (Binding, bool) {
	i := t.index(keys)
	if i < 0 {
		return Binding{}, false
	}
	return t.bindings[i].Clone(), true
}

func (t *Table) index(keys key.Sequence) int {
	if keys.IsEmpty() {
		return -1
	}
	for i := range t.bindings {
		if t.bindings[i].Keys.Equals(keys) {
			return i
		}
	}
	return -1
}

// Len returns the number of bindings.
func (t *Table) Len() int {
	return len(t.bindings)
}

// Bindings returns a copy of all bindings in insertion order.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, len(t.bindings))
	for i, b := range t.bindings {
		out[i] = b.Clone()
	}
	return out
}

// Installed returns true between Install and Uninstall.
func (t *Table) Installed() bool {
	return t.installed
}

// Install registers every binding with the host in table order. Multi-key
// bindings get a freshly allocated sequence handle; single keys are
// dispatched under their own code. When two bindings share keys the later
// one wins, since it is bound last.
func (t *Table) Install(kb host.KeyBinder) {
	for i := range t.bindings {
		b := &t.bindings[i]
		if b.IsSequence() {
			b.Handle = kb.AddKeySequence(b.Keys)
		} else {
			b.Handle = b.Keys[0]
		}
		kb.BindKey(b.Handle, b.Command, b.Args...)
	}
	t.installed = true
}

// Uninstall removes every binding from the host and clears its handle.
// Sequence handles are released. A single real key is handed back to
// fallback (bound as "fallback <code>") when fallback is not empty, so the
// key keeps reaching the interpreter.
func (t *Table) Uninstall(kb host.KeyBinder, fallback string) {
	for i := range t.bindings {
		b := &t.bindings[i]
		if !b.Installed() {
			continue
		}
		kb.UnbindKey(b.Handle)
		switch {
		case b.IsSequence():
			kb.DeleteKeySequence(b.Handle)
		case fallback != "" && b.Handle.IsReal():
			kb.BindKey(b.Handle, fallback, strconv.Itoa(int(b.Handle)))
		}
		b.Handle = key.Null
	}
	t.installed = false
}

// Clear drops every binding. The table must not be installed.
func (t *Table) Clear() {
	t.bindings = t.bindings[:0]
}
