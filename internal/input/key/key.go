package key

import (
	"fmt"
)

// Code identifies a single key as delivered by the host.
type Code int

// Null is the zero key. It is never delivered by the host.
const Null Code = 0

// Control characters with a dedicated meaning.
const (
	CtrlC     Code = 3
	CtrlH     Code = 8
	Tab       Code = 9
	Enter     Code = 13
	CtrlR     Code = 18
	CtrlV     Code = 22
	Esc       Code = 27
	Backspace Code = 127
)

// specialBase is the first code past the Unicode range.
const specialBase Code = 0x110000

// Special keys.
const (
	ArrowLeft Code = specialBase + iota
	ArrowRight
	ArrowUp
	ArrowDown
	Delete
	Home
	End
	PageUp
	PageDown
	ShiftTab
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// MByte marks a multi-byte character. The character itself stays with
	// the host.
	MByte

	// RealMax is one past the last real key code.
	RealMax
)

// VirtualBase is the first code the host may allocate for key sequences.
const VirtualBase Code = 0x120000

// MaxSeqLen is the maximum number of codes in one key sequence.
const MaxSeqLen = 8

// Ctrl returns the control code for an ASCII letter.
func Ctrl(c rune) Code {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return Code(c & 0x1f)
}

// IsReal returns true if the host can deliver c directly, without a
// sequence lookup.
func (c Code) IsReal() bool {
	return (c > Null && c <= Backspace) || (c >= specialBase && c < RealMax)
}

// IsVirtual returns true if c is a sequence handle.
func (c Code) IsVirtual() bool {
	return c >= VirtualBase
}

// IsPrint returns true for printable ASCII characters (space through '~').
func (c Code) IsPrint() bool {
	return c >= ' ' && c <= '~'
}

// IsControl returns true for ASCII control characters, Backspace included.
func (c Code) IsControl() bool {
	return (c >= 0 && c < ' ') || c == Backspace
}

// IsSpecial returns true for the named non-ASCII keys.
func (c Code) IsSpecial() bool {
	return c >= specialBase && c < RealMax
}

// IsLetter returns true for ASCII letters.
func (c Code) IsLetter() bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsUpper returns true for uppercase ASCII letters.
func (c Code) IsUpper() bool {
	return c >= 'A' && c <= 'Z'
}

// Lower returns the lowercase form of an ASCII letter; other codes are
// returned unchanged.
func (c Code) Lower() Code {
	if c.IsUpper() {
		return c + ('a' - 'A')
	}
	return c
}

// specialNames holds the canonical names used by String.
var specialNames = map[Code]string{
	Tab:        "tab",
	Enter:      "enter",
	Esc:        "esc",
	Backspace:  "bsp",
	' ':        "spc",
	ArrowLeft:  "left",
	ArrowRight: "right",
	ArrowUp:    "up",
	ArrowDown:  "down",
	Delete:     "del",
	Home:       "home",
	End:        "end",
	PageUp:     "pageup",
	PageDown:   "pagedown",
	ShiftTab:   "shift-tab",
	F1:         "f1",
	F2:         "f2",
	F3:         "f3",
	F4:         "f4",
	F5:         "f5",
	F6:         "f6",
	F7:         "f7",
	F8:         "f8",
	F9:         "f9",
	F10:        "f10",
	F11:        "f11",
	F12:        "f12",
	MByte:      "mbyte",
}

// String returns the key-string token for c. The result parses back to c
// for every real key.
func (c Code) String() string {
	if name, ok := specialNames[c]; ok {
		return name
	}
	switch {
	case c.IsPrint():
		return string(rune(c))
	case c >= 1 && c <= 26:
		return "ctrl-" + string(rune('a'+c-1))
	case c.IsVirtual():
		return fmt.Sprintf("virt-%d", c-VirtualBase)
	default:
		return fmt.Sprintf("key-%d", int(c))
	}
}

// Real returns every real key code in ascending order.
func Real() []Code {
	codes := make([]Code, 0, int(Backspace)+int(RealMax-specialBase))
	for c := Code(1); c <= Backspace; c++ {
		codes = append(codes, c)
	}
	for c := specialBase; c < RealMax; c++ {
		codes = append(codes, c)
	}
	return codes
}
