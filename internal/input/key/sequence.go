package key

import (
	"strings"
)

// Sequence is an ordered list of key codes forming one binding.
// Examples: "g g", "esc up", "ctrl-x ctrl-s"
type Sequence []Code

// Len returns the number of codes in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// IsEmpty returns true if the sequence has no codes.
func (s Sequence) IsEmpty() bool {
	return len(s) == 0
}

// Equals returns true if both sequences hold the same codes in the same order.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i, c := range s {
		if other[i] != c {
			return false
		}
	}
	return true
}

// HasPrefix returns true if the sequence starts with prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)].Equals(prefix)
}

// Clone returns a copy that does not share storage with s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// String returns the key-string form, e.g. "g g" or "ctrl-x ctrl-s".
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
