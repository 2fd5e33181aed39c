package input

import (
	"strconv"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/input/keymap"
	"github.com/dshills/xul/internal/input/mode"
	"github.com/dshills/xul/internal/input/repeat"
	"github.com/dshills/xul/internal/input/till"
	"github.com/dshills/xul/internal/logging"
)

// Host variables the engine sets at boot.
const (
	VarSearchCursorMove = "enable-search-cursor-move"
	VarCtrlHIsBackspace = "ctrl-h-is-backspace"
)

// Attribute defaults, applied at boot only if the variable is unset.
var varDefaults = []struct {
	name  string
	value string
}{
	{mode.VarNormalAttrs, "bg !4"},
	{mode.VarInsertAttrs, "bg !2"},
	{mode.VarInsertNoCursorLine, "yes"},
}

// metaArrows are the arrows a host may have bound behind ESC. The engine
// needs ESC on its own.
var metaArrows = []key.Code{key.ArrowUp, key.ArrowDown, key.ArrowRight, key.ArrowLeft}

// Engine is the modal key interpreter. One Engine serves one host; all of
// its state hangs off the Engine value.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	host   host.Host
	logger *logging.Logger

	modes *mode.Controller
	till  till.Machine
	rec   *repeat.Recorder

	actions map[key.Code]func()
	booted  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine for h. Nothing touches the host until Boot.
func New(h host.Host, opts ...Option) *Engine {
	e := &Engine{
		host:   h,
		logger: logging.Null,
		rec:    repeat.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.modes = mode.NewController(h, e.rec, e.logger)
	e.logger = e.logger.WithComponent("input")
	e.actions = e.normalActions()
	return e
}

// Mode returns the current mode.
func (e *Engine) Mode() mode.Mode {
	return e.modes.Current()
}

// Visual returns true while explicit visual selection is on.
func (e *Engine) Visual() bool {
	return e.modes.Visual()
}

// TillState returns the state of the find operator.
func (e *Engine) TillState() till.State {
	return e.till.State()
}

// Modes returns the mode controller.
func (e *Engine) Modes() *mode.Controller {
	return e.modes
}

// Recorder returns the repeat state.
func (e *Engine) Recorder() *repeat.Recorder {
	return e.rec
}

// Tables returns the binding table of every mode.
func (e *Engine) Tables() []*keymap.Table {
	return e.modes.Tables()
}

// Booted returns true between Boot and Unload.
func (e *Engine) Booted() bool {
	return e.booted
}

// Boot plugs the engine into the host: it registers the engine commands,
// routes every real key to the interpreter, fills in unset attribute
// variables and enters NORMAL.
func (e *Engine) Boot() {
	if reg, ok := e.host.(host.CommandRegistrar); ok {
		for name, fn := range e.Commands() {
			reg.RegisterCommand(name, fn)
		}
	}

	e.releaseMetaArrows()
	e.bindRealKeys()

	for _, d := range varDefaults {
		if _, ok := e.host.Var(d.name); !ok {
			e.host.SetVar(d.name, d.value)
		}
	}

	e.modes.Change(mode.Normal)
	e.host.SetVar(VarSearchCursorMove, "yes")

	e.booted = true
	e.logger.Info("booted in %s mode", e.modes.Current())
}

// releaseMetaArrows removes the ESC+arrow sequences so a lone ESC is
// delivered at once.
func (e *Engine) releaseMetaArrows() {
	for _, arrow := range metaArrows {
		k, ok := e.host.LookupKeySequence(key.Sequence{key.Esc, arrow})
		if !ok {
			continue
		}
		e.host.UnbindKey(k)
		e.host.DeleteKeySequence(k)
	}
}

// bindRealKeys routes every real key to the take-key command. ctrl-h is
// bound as itself, so ctrl-h-is-backspace is lifted while binding.
func (e *Engine) bindRealKeys() {
	saved, had := e.host.Var(VarCtrlHIsBackspace)
	if had {
		e.host.UnsetVar(VarCtrlHIsBackspace)
	}

	for _, k := range key.Real() {
		e.host.BindKey(k, mode.TakeKeyCommand, strconv.Itoa(int(k)))
	}

	if had {
		e.host.SetVar(VarCtrlHIsBackspace, saved)
	}
}

// Unload detaches the engine: the current mode's bindings are removed,
// every table is dropped, and the take-key routing and engine commands
// are taken out of the host.
func (e *Engine) Unload() {
	if !e.booted {
		return
	}
	e.modes.Shutdown()

	for _, k := range key.Real() {
		e.host.UnbindKey(k)
	}

	if reg, ok := e.host.(host.CommandRegistrar); ok {
		for name := range e.Commands() {
			reg.UnregisterCommand(name)
		}
	}

	e.till.Reset()
	e.rec.Reset()
	e.booted = false
	e.logger.Info("unloaded")
}

// TakeKey interprets k in the current mode.
func (e *Engine) TakeKey(k key.Code) {
	switch e.modes.Current() {
	case mode.Normal:
		e.normal(k)
	case mode.Insert:
		e.insert(k)
	}
}

// ChangeMode switches to m.
func (e *Engine) ChangeMode(m mode.Mode) {
	e.modes.Change(m)
}

// ExitInsert returns to NORMAL.
func (e *Engine) ExitInsert() {
	e.modes.Change(mode.Normal)
}

// Bind adds a binding of keys to cmd in the named mode. An empty key
// string is ignored.
func (e *Engine) Bind(modeName, keys, cmd string, args ...string) error {
	m, ok := mode.Parse(modeName)
	if !ok {
		return unknownMode(modeName)
	}
	seq, err := parseKeys(keys)
	if err != nil {
		return err
	}
	if seq.IsEmpty() {
		return nil
	}
	if cmd == "" {
		return ErrMissingCommand
	}
	e.modes.Bind(m, seq, cmd, args...)
	return nil
}

// Unbind removes the first binding of keys in the named mode. Unbinding
// keys that are not bound is not an error.
func (e *Engine) Unbind(modeName, keys string) error {
	m, ok := mode.Parse(modeName)
	if !ok {
		return unknownMode(modeName)
	}
	seq, err := parseKeys(keys)
	if err != nil {
		return err
	}
	if seq.IsEmpty() {
		return nil
	}
	if !e.modes.Unbind(m, seq) {
		e.logger.Debug("unbind %s %q: not bound", m, keys)
	}
	return nil
}

// cursorLine returns the cursor line of the active frame, or 0.
func (e *Engine) cursorLine() int {
	f := e.host.ActiveFrame()
	if f == nil {
		return 0
	}
	return f.CursorLine()
}

// selection returns the selection kind of the active buffer.
func (e *Engine) selection() host.SelectionKind {
	f := e.host.ActiveFrame()
	if f == nil {
		return host.SelectNone
	}
	b := f.Buffer()
	if b == nil {
		return host.SelectNone
	}
	return b.Selection()
}

func (e *Engine) exec(cmd string, args ...string) {
	e.host.Exec(cmd, args...)
}
