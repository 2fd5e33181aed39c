package keymap

import (
	"strings"

	"github.com/dshills/xul/internal/input/key"
)

// Binding maps a key sequence to a host command.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	Keys key.Sequence

	// Command is the host command to execute.
	// Examples: "cursor-buffer-begin", "xul-exit-insert"
	Command string

	// Args are fixed arguments for the command.
	Args []string

	// Handle is the code the host dispatches this binding under.
	// It is key.Null while the binding is not installed.
	Handle key.Code
}

// NewBinding creates a binding that owns copies of keys and args.
func NewBinding(keys key.Sequence, cmd string, args ...string) Binding {
	b := Binding{
		Keys:    keys.Clone(),
		Command: cmd,
	}
	if len(args) > 0 {
		b.Args = append([]string(nil), args...)
	}
	return b
}

// IsSequence returns true if the binding needs more than one key.
func (b Binding) IsSequence() bool {
	return len(b.Keys) > 1
}

// Installed returns true if the binding currently holds a host handle.
func (b Binding) Installed() bool {
	return b.Handle != key.Null
}

// Clone returns a deep copy of the binding.
func (b Binding) Clone() Binding {
	c := NewBinding(b.Keys, b.Command, b.Args...)
	c.Handle = b.Handle
	return c
}

// String renders the binding as "keys -> command args...".
func (b Binding) String() string {
	var sb strings.Builder
	sb.WriteString(b.Keys.String())
	sb.WriteString(" -> ")
	sb.WriteString(b.Command)
	for _, a := range b.Args {
		sb.WriteByte(' ')
		sb.WriteString(a)
	}
	return sb.String()
}
