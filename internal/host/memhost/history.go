package memhost

import (
	"errors"
	"slices"
)

// Common errors for history operations.
var (
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNothingToRedo  = errors.New("nothing to redo")
	ErrNothingToMerge = errors.New("fewer than two undo records")
)

// snapshot is the full buffer state at one point in time.
type snapshot struct {
	lines []string
	line  int
	col   int
}

func (s snapshot) sameText(o snapshot) bool {
	return slices.Equal(s.lines, o.lines)
}

// record is one undoable change: the state before and after it.
type record struct {
	name   string
	before snapshot
	after  snapshot
}

// History is a snapshot based undo log.
type History struct {
	undoStack []record
	redoStack []record

	maxEntries int
}

// NewHistory creates a history that keeps at most maxEntries records.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000 // Default
	}
	return &History{maxEntries: maxEntries}
}

// push adds a record to the undo stack and clears the redo stack.
func (h *History) push(r record) {
	h.undoStack = append(h.undoStack, r)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// undo pops the newest record and returns the state to restore.
func (h *History) undo() (snapshot, error) {
	if len(h.undoStack) == 0 {
		return snapshot{}, ErrNothingToUndo
	}
	r := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, r)
	return r.before, nil
}

// redo reapplies the newest undone record and returns the state to restore.
func (h *History) redo() (snapshot, error) {
	if len(h.redoStack) == 0 {
		return snapshot{}, ErrNothingToRedo
	}
	r := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, r)
	return r.after, nil
}

// Merge combines the newest two records into one that spans both.
func (h *History) Merge() error {
	n := len(h.undoStack)
	if n < 2 {
		return ErrNothingToMerge
	}
	older, newer := h.undoStack[n-2], h.undoStack[n-1]
	h.undoStack[n-2] = record{
		name:   older.name,
		before: older.before,
		after:  newer.after,
	}
	h.undoStack = h.undoStack[:n-1]
	return nil
}

// UndoCount returns the number of undo records.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo records.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear drops all records.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
