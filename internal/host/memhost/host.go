package memhost

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/logging"
)

// CommandFunc implements a host command.
type CommandFunc func(args ...string)

// PromptFunc reads a command line. ok is false if the prompt was cancelled.
type PromptFunc func() (line string, ok bool)

// Host is an in-memory editor.
type Host struct {
	buf   *Buffer
	frame *Frame

	// frameless makes ActiveFrame return nil.
	frameless bool

	vars     map[string]string
	errors   []string
	commands map[string]CommandFunc
	prompt   PromptFunc

	bindings map[key.Code]binding
	seqs     *seqTree
	pending  []key.Code
	mbyte    rune

	yank   yankBuffer
	search string

	trace  []string
	logger *logging.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l.WithComponent("memhost")
		}
	}
}

// WithPageHeight sets the number of lines a page motion moves.
func WithPageHeight(n int) Option {
	return func(h *Host) {
		h.frame.SetHeight(n)
	}
}

// metaSequences are registered at startup like a terminal editor would:
// ESC followed by an arrow.
var metaSequences = []struct {
	arrow key.Code
	cmd   string
}{
	{key.ArrowUp, "cursor-prev-paragraph"},
	{key.ArrowDown, "cursor-next-paragraph"},
	{key.ArrowLeft, "cursor-prev-word"},
	{key.ArrowRight, "cursor-next-word"},
}

// New creates a host editing text.
func New(text string, opts ...Option) *Host {
	buf := NewBuffer(text)
	h := &Host{
		buf:      buf,
		frame:    NewFrame(buf),
		vars:     make(map[string]string),
		commands: make(map[string]CommandFunc),
		bindings: make(map[key.Code]binding),
		seqs:     newSeqTree(),
		logger:   logging.Null,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.registerBuiltins()

	for _, m := range metaSequences {
		h.BindKey(h.AddKeySequence(key.Sequence{key.Esc, m.arrow}), m.cmd)
	}
	return h
}

// ActiveFrame returns the frame, or nil if the host is frameless.
func (h *Host) ActiveFrame() host.Frame {
	if h.frameless {
		return nil
	}
	return h.frame
}

// Frame returns the concrete frame.
func (h *Host) Frame() *Frame {
	return h.frame
}

// Buffer returns the concrete buffer.
func (h *Host) Buffer() *Buffer {
	return h.buf
}

// SetFrameless detaches or reattaches the frame.
func (h *Host) SetFrameless(on bool) {
	h.frameless = on
}

// Text returns the buffer contents.
func (h *Host) Text() string {
	return h.buf.Text()
}

// SetText replaces the buffer contents, clearing the undo log and the
// selection and moving the cursor to 1,1.
func (h *Host) SetText(text string) {
	h.buf.setLines(strings.Split(text, "\n"))
	h.buf.history.Clear()
	h.buf.clearSelection()
	h.frame.SetCursor(1, 1)
}

// Var returns a variable.
func (h *Host) Var(name string) (string, bool) {
	v, ok := h.vars[name]
	return v, ok
}

// SetVar sets a variable.
func (h *Host) SetVar(name, value string) {
	h.vars[name] = value
}

// UnsetVar removes a variable.
func (h *Host) UnsetVar(name string) {
	delete(h.vars, name)
}

// VarNames returns the names of all set variables, sorted.
func (h *Host) VarNames() []string {
	names := make([]string, 0, len(h.vars))
	for n := range h.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Errorf reports a user-visible error.
func (h *Host) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	h.errors = append(h.errors, msg)
	h.logger.Warn("%s", msg)
}

// Errors returns every reported error, oldest first.
func (h *Host) Errors() []string {
	return append([]string(nil), h.errors...)
}

// LastError returns the newest error, or "".
func (h *Host) LastError() string {
	if len(h.errors) == 0 {
		return ""
	}
	return h.errors[len(h.errors)-1]
}

// ClearErrors drops every reported error.
func (h *Host) ClearErrors() {
	h.errors = nil
}

// RegisterCommand adds or replaces a command.
func (h *Host) RegisterCommand(name string, fn func(args ...string)) {
	h.commands[name] = fn
}

// UnregisterCommand removes a command.
func (h *Host) UnregisterCommand(name string) {
	delete(h.commands, name)
}

// HasCommand reports whether name is a known command.
func (h *Host) HasCommand(name string) bool {
	_, ok := h.commands[name]
	return ok
}

// SetPrompt sets the function command-prompt reads a line with.
func (h *Host) SetPrompt(fn PromptFunc) {
	h.prompt = fn
}

// Exec runs a command. Unknown commands are reported as errors.
func (h *Host) Exec(cmd string, args ...string) {
	h.trace = append(h.trace, strings.TrimSpace(cmd+" "+strings.Join(args, " ")))

	fn, ok := h.commands[cmd]
	if !ok {
		h.Errorf("unknown command '%s'", cmd)
		return
	}
	fn(args...)
}

// ExecLine runs a whitespace separated command line.
func (h *Host) ExecLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	h.Exec(fields[0], fields[1:]...)
}

// Trace returns every command executed since the last ResetTrace, each
// rendered as "name arg...".
func (h *Host) Trace() []string {
	return append([]string(nil), h.trace...)
}

// ResetTrace clears the command trace.
func (h *Host) ResetTrace() {
	h.trace = nil
}

var (
	_ host.Host             = (*Host)(nil)
	_ host.CommandRegistrar = (*Host)(nil)
)
