package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec       = errors.New("empty key specification")
	ErrInvalidSpec     = errors.New("invalid key specification")
	ErrSequenceTooLong = errors.New("too many keys to be a sequence")
)

// nameMap maps lowercase key names to codes.
var nameMap = map[string]Code{
	"esc":       Esc,
	"escape":    Esc,
	"tab":       Tab,
	"enter":     Enter,
	"return":    Enter,
	"cr":        Enter,
	"bsp":       Backspace,
	"backspace": Backspace,
	"spc":       ' ',
	"space":     ' ',
	"del":       Delete,
	"delete":    Delete,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pgup":      PageUp,
	"pagedown":  PageDown,
	"pgdn":      PageDown,
	"up":        ArrowUp,
	"down":      ArrowDown,
	"left":      ArrowLeft,
	"right":     ArrowRight,
	"shift-tab": ShiftTab,
	"f1":        F1,
	"f2":        F2,
	"f3":        F3,
	"f4":        F4,
	"f5":        F5,
	"f6":        F6,
	"f7":        F7,
	"f8":        F8,
	"f9":        F9,
	"f10":       F10,
	"f11":       F11,
	"f12":       F12,
	"mbyte":     MByte,
}

// Parse parses one key token into its codes.
// Most tokens produce a single code; meta tokens ("alt-x") produce Esc
// followed by the key.
func Parse(token string) ([]Code, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptySpec
	}

	// Single character tokens are taken verbatim, so "A" stays uppercase.
	if runes := []rune(token); len(runes) == 1 {
		r := runes[0]
		if r < ' ' || r > '~' {
			return nil, fmt.Errorf("%w: %q is not a printable ASCII key", ErrInvalidSpec, token)
		}
		return []Code{Code(r)}, nil
	}

	lower := strings.ToLower(token)
	if c, ok := nameMap[lower]; ok {
		return []Code{c}, nil
	}

	switch {
	case strings.HasPrefix(lower, "ctrl-"):
		rest := []rune(token[len("ctrl-"):])
		if len(rest) != 1 || !Code(rest[0]).IsLetter() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSpec, token)
		}
		return []Code{Ctrl(rest[0])}, nil

	case strings.HasPrefix(lower, "alt-"), strings.HasPrefix(lower, "meta-"):
		rest := token[strings.IndexByte(token, '-')+1:]
		codes, err := Parse(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSpec, token)
		}
		return append([]Code{Esc}, codes...), nil
	}

	return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, token)
}

// ParseSequence parses a whitespace separated key string into a sequence.
// Returns ErrSequenceTooLong if the result exceeds MaxSeqLen codes.
func ParseSequence(s string) (Sequence, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrEmptySpec
	}

	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		codes, err := Parse(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, codes...)
		if len(seq) > MaxSeqLen {
			return nil, fmt.Errorf("%w in %q", ErrSequenceTooLong, s)
		}
	}
	return seq, nil
}

// ParseKeys parses a whitespace separated key string of any length, for
// feeding keys rather than binding them.
func ParseKeys(s string) (Sequence, error) {
	var seq Sequence
	for _, f := range strings.Fields(s) {
		codes, err := Parse(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, codes...)
	}
	return seq, nil
}

// MustParseSequence parses a key string and panics on error.
// Use only for known-valid strings in initialization code and tests.
func MustParseSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key string: " + s + ": " + err.Error())
	}
	return seq
}
