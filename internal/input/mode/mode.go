package mode

import (
	"github.com/dshills/xul/internal/input/key"
)

// Mode is an input mode.
type Mode uint8

const (
	// Normal is command mode: keys are motions and operators.
	Normal Mode = iota

	// Insert inserts typed keys as text.
	Insert

	numModes
)

// Host variables read or published by the controller.
const (
	VarMode               = "xul-mode"
	VarModeAttrs          = "xul-mode-attrs"
	VarNormalAttrs        = "xul-normal-attrs"
	VarInsertAttrs        = "xul-insert-attrs"
	VarInsertNoCursorLine = "xul-insert-no-cursor-line"
	VarCursorLine         = "cursor-line"
)

// TakeKeyCommand is the host command that hands a raw key to the
// interpreter. Every real key without a binding of its own is bound to it.
const TakeKeyCommand = "xul-take-key"

var modeNames = [numModes]string{
	Normal: "normal",
	Insert: "insert",
}

var displayNames = [numModes]string{
	Normal: "NORMAL",
	Insert: "INSERT",
}

var attrVars = [numModes]string{
	Normal: VarNormalAttrs,
	Insert: VarInsertAttrs,
}

// String returns the lowercase mode name used on command lines.
func (m Mode) String() string {
	if m >= numModes {
		return "unknown"
	}
	return modeNames[m]
}

// DisplayName returns the name published in xul-mode.
func (m Mode) DisplayName() string {
	if m >= numModes {
		return "UNKNOWN"
	}
	return displayNames[m]
}

// AttrsVar returns the variable holding the mode's display attributes.
func (m Mode) AttrsVar() string {
	if m >= numModes {
		return ""
	}
	return attrVars[m]
}

// Valid returns true for a known mode.
func (m Mode) Valid() bool {
	return m < numModes
}

// Parse looks up a mode by its lowercase name. Matching is exact.
func Parse(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return 0, false
}

// Names returns the mode names, for completion.
func Names() []string {
	out := make([]string, numModes)
	copy(out, modeNames[:])
	return out
}

// All returns every mode.
func All() []Mode {
	out := make([]Mode, numModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// IsExitKey returns true for the keys that leave INSERT.
func IsExitKey(k key.Code) bool {
	return k == key.Esc || k == key.CtrlC
}
