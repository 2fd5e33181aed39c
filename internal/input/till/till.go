// Package till implements the pending find-character motions f, t, F and T.
//
// An operator key arms the machine; the very next key, whatever it is, is
// consumed as the search target. The machine always returns to Inactive
// after one resolution attempt, whether the target was found or not.
package till

import (
	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
)

// State is the pending search direction.
type State uint8

const (
	// Inactive means no search is pending.
	Inactive State = iota

	// PendingForward searches right of the cursor (f, t).
	PendingForward

	// PendingBackward searches left of the cursor and lands on the match (F).
	PendingBackward

	// PendingBackwardStopBefore searches left of the cursor and lands one
	// glyph right of the match (T).
	PendingBackwardStopBefore
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case PendingForward:
		return "pending-forward"
	case PendingBackward:
		return "pending-backward"
	case PendingBackwardStopBefore:
		return "pending-backward-stop-before"
	default:
		return "unknown"
	}
}

// IsOperator returns true for the keys that arm a search.
func IsOperator(k key.Code) bool {
	switch k {
	case 'f', 't', 'F', 'T':
		return true
	}
	return false
}

// Machine tracks one pending search. The zero value is inactive.
type Machine struct {
	state   State
	op      key.Code
	lastKey key.Code
}

// Start arms the machine for op. Returns false, leaving the machine
// unchanged, if op is not a search operator.
func (m *Machine) Start(op key.Code) bool {
	switch op {
	case 'f', 't':
		m.state = PendingForward
	case 'F':
		m.state = PendingBackward
	case 'T':
		m.state = PendingBackwardStopBefore
	default:
		return false
	}
	m.op = op
	return true
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Pending returns true if the next key will be consumed as a target.
func (m *Machine) Pending() bool {
	return m.state != Inactive
}

// Op returns the operator key of the most recent search.
func (m *Machine) Op() key.Code {
	return m.op
}

// LastKey returns the most recently found target, or key.Null.
func (m *Machine) LastKey() key.Code {
	return m.lastKey
}

// Reset drops a pending search.
func (m *Machine) Reset() {
	m.state = Inactive
}

// Resolve consumes target as the search character and moves the cursor of
// f onto the match. It reports whether a match was found. A nil frame, a
// frame without a buffer or a missing cursor line resolve to not found.
// The machine is Inactive afterwards in every case.
func (m *Machine) Resolve(f host.Frame, target key.Code) bool {
	state := m.state
	m.state = Inactive

	if state == Inactive || f == nil || f.Buffer() == nil {
		return false
	}
	line := f.Line(f.CursorLine())
	if line == nil {
		return false
	}

	var found bool
	switch state {
	case PendingForward:
		found = searchForward(f, line, target)
	case PendingBackward:
		found = searchBackward(f, line, target, false)
	case PendingBackwardStopBefore:
		found = searchBackward(f, line, target, true)
	}

	if found {
		m.lastKey = target
	}
	return found
}

// searchForward scans glyphs strictly right of the cursor glyph.
func searchForward(f host.Frame, line host.Line, target key.Code) bool {
	width := line.VisualWidth()
	col := line.IdxToCol(line.ColToIdx(f.CursorCol()) + 1)

	for col <= width {
		g, ok := line.GlyphAt(col)
		if !ok {
			return false
		}
		if g.Code == target {
			f.SetCursor(f.CursorLine(), col)
			return true
		}
		col += max(g.Width, 1)
	}
	return false
}

// searchBackward scans glyphs strictly left of the cursor glyph, nearest
// first, and stops at column 1.
func searchBackward(f host.Frame, line host.Line, target key.Code, stopBefore bool) bool {
	idx := line.ColToIdx(f.CursorCol()) - 1

	for idx >= 0 {
		col := line.IdxToCol(idx)
		g, ok := line.GlyphAt(col)
		if !ok {
			return false
		}
		if g.Code == target {
			if stopBefore {
				col += max(g.Width, 1)
			}
			f.SetCursor(f.CursorLine(), col)
			return true
		}
		if col <= 1 {
			break
		}
		idx--
	}
	return false
}
