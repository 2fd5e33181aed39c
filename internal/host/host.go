// Package host defines the narrow interface the input engine uses to reach
// the editor it is plugged into.
//
// The engine never touches buffers, undo logs or terminals directly. It
// issues named commands, registers keys, reads and writes variables and
// queries the active frame. Everything is synchronous: a call returns only
// after the host has fully applied it.
package host

import (
	"strconv"
	"strings"

	"github.com/dshills/xul/internal/input/key"
)

// Commander executes named host commands, e.g. Exec("cursor-left") or
// Exec("yank-selection", "1").
type Commander interface {
	Exec(cmd string, args ...string)
}

// KeyBinder manages the host's live key dispatch table.
type KeyBinder interface {
	// BindKey routes k to cmd with the given arguments.
	BindKey(k key.Code, cmd string, args ...string)

	// UnbindKey removes whatever k is routed to.
	UnbindKey(k key.Code)

	// AddKeySequence registers a multi-key sequence and returns the
	// virtual code that now stands for it.
	AddKeySequence(seq key.Sequence) key.Code

	// LookupKeySequence returns the virtual code of a registered sequence.
	LookupKeySequence(seq key.Sequence) (key.Code, bool)

	// DeleteKeySequence releases a virtual code.
	DeleteKeySequence(k key.Code)
}

// Vars is the host's string variable store.
type Vars interface {
	Var(name string) (string, bool)
	SetVar(name, value string)
	UnsetVar(name string)
}

// Reporter is the user-visible error channel.
type Reporter interface {
	Errorf(format string, args ...any)
}

// FrameProvider gives access to the active frame.
type FrameProvider interface {
	// ActiveFrame returns the focused frame, or nil if there is none.
	ActiveFrame() Frame
}

// CommandRegistrar is implemented by hosts that accept new named commands.
// The engine registers its own commands through it when available.
type CommandRegistrar interface {
	RegisterCommand(name string, fn func(args ...string))
	UnregisterCommand(name string)
}

// Host is everything the engine needs from the editor.
type Host interface {
	Commander
	KeyBinder
	Vars
	Reporter
	FrameProvider
}

// Frame is a view onto a buffer with a cursor.
// Lines and columns are 1-based; columns are visual (display) columns.
type Frame interface {
	CursorLine() int
	CursorCol() int

	// SetCursor moves the cursor, keeping it within the frame.
	SetCursor(line, col int)

	// Line returns the given line, or nil if it does not exist.
	Line(n int) Line

	// Buffer returns the frame's buffer, or nil if it has none.
	Buffer() Buffer
}

// Line is one line of a buffer laid out as glyphs.
type Line interface {
	// VisualWidth is the total display width of the line.
	VisualWidth() int

	// GlyphAt returns the glyph covering a visual column.
	GlyphAt(col int) (Glyph, bool)

	// ColToIdx converts a visual column to a glyph index (0-based).
	ColToIdx(col int) int

	// IdxToCol converts a glyph index to the visual column it starts at.
	IdxToCol(idx int) int
}

// Glyph is one displayed character cell group.
type Glyph struct {
	// Code is the key code a till search compares against: the character
	// for ASCII glyphs, MByte for everything else.
	Code key.Code

	// Text is the grapheme cluster.
	Text string

	// Width is the number of columns the glyph occupies.
	Width int
}

// SelectionKind describes the active selection of a buffer.
type SelectionKind uint8

const (
	// SelectNone means no selection is active.
	SelectNone SelectionKind = iota

	// SelectChar is character-wise selection.
	SelectChar

	// SelectLine is line-wise selection.
	SelectLine

	// SelectRect is rectangular selection.
	SelectRect
)

// String returns a human-readable selection kind name.
func (s SelectionKind) String() string {
	switch s {
	case SelectNone:
		return "none"
	case SelectChar:
		return "char"
	case SelectLine:
		return "line"
	case SelectRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Buffer exposes the buffer state the engine queries.
type Buffer interface {
	// Selection returns the kind of the active selection.
	Selection() SelectionKind

	// UndoRecords returns the number of records in the undo log.
	UndoRecords() int

	// MergeUndoRecords merges the newest two undo records into one.
	MergeUndoRecords()
}

// Truthy reports whether a variable value means "enabled".
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "on":
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n != 0
}

// VarTruthy reports whether the named variable is set to a truthy value.
func VarTruthy(v Vars, name string) bool {
	value, ok := v.Var(name)
	return ok && Truthy(value)
}
