package mode

import (
	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/input/keymap"
	"github.com/dshills/xul/internal/input/repeat"
	"github.com/dshills/xul/internal/logging"
)

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Controller owns the current mode, the per-mode binding tables and the
// visual flag. It is the only place the mode changes.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	host   host.Host
	rec    *repeat.Recorder
	logger *logging.Logger

	tables  [numModes]*keymap.Table
	current Mode
	visual  bool

	insert insertSession

	callbacks []ChangeCallback
}

// NewController creates a controller in NORMAL mode with empty tables.
// Nothing is installed in the host until the first Change.
func NewController(h host.Host, rec *repeat.Recorder, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Null
	}
	c := &Controller{
		host:    h,
		rec:     rec,
		logger:  logger.WithComponent("mode"),
		current: Normal,
	}
	for _, m := range All() {
		c.tables[m] = keymap.NewTable(m.String())
	}
	return c
}

// Current returns the current mode.
func (c *Controller) Current() Mode {
	return c.current
}

// Visual returns true while explicit visual selection is on.
func (c *Controller) Visual() bool {
	return c.visual
}

// SetVisual sets the visual flag.
func (c *Controller) SetVisual(on bool) {
	c.visual = on
}

// ToggleVisual flips the visual flag and returns the new value.
func (c *Controller) ToggleVisual() bool {
	c.visual = !c.visual
	return c.visual
}

// Table returns the binding table of m.
func (c *Controller) Table(m Mode) *keymap.Table {
	if !m.Valid() {
		return nil
	}
	return c.tables[m]
}

// Tables returns every table in mode order.
func (c *Controller) Tables() []*keymap.Table {
	return c.tables[:]
}

// OnChange registers a callback for mode changes.
func (c *Controller) OnChange(cb ChangeCallback) {
	c.callbacks = append(c.callbacks, cb)
}

// Change switches to target. It never fails; changing to the current mode
// still runs the full cycle.
func (c *Controller) Change(target Mode) {
	if !target.Valid() {
		return
	}
	from := c.current

	c.tables[from].Uninstall(c.host, TakeKeyCommand)
	c.tables[target].Install(c.host)

	c.visual = false

	if from == Insert {
		c.exitInsert()
	}

	c.current = target

	if target == Insert {
		c.enterInsert()
	}

	c.publish()

	c.logger.Debug("mode %s -> %s (%d bindings)", from, target, c.tables[target].Len())

	for _, cb := range c.callbacks {
		cb(from, target)
	}
}

// publish writes the mode name and attributes to host variables.
func (c *Controller) publish() {
	c.host.SetVar(VarMode, c.current.DisplayName())
	attrs, _ := c.host.Var(c.current.AttrsVar())
	c.host.SetVar(VarModeAttrs, attrs)
}

// Bind adds a binding to m. If m is current the host dispatch is rebuilt
// so the binding is live immediately. An empty sequence is ignored and
// Bind returns false.
func (c *Controller) Bind(m Mode, keys key.Sequence, cmd string, args ...string) bool {
	if !m.Valid() || keys.IsEmpty() {
		return false
	}
	c.mutate(m, func(t *keymap.Table) bool {
		return t.Bind(keys, cmd, args...)
	})
	c.logger.Debug("bind %s %s -> %s", m, keys, cmd)
	return true
}

// Unbind removes the first binding of m whose keys match exactly. If m is
// current the host dispatch is rebuilt. Returns false if nothing matched.
func (c *Controller) Unbind(m Mode, keys key.Sequence) bool {
	if !m.Valid() {
		return false
	}
	if _, ok := c.tables[m].Find(keys); !ok {
		return false
	}
	c.mutate(m, func(t *keymap.Table) bool {
		return t.Unbind(keys)
	})
	c.logger.Debug("unbind %s %s", m, keys)
	return true
}

// mutate applies fn to the table of m. For the current mode the whole
// table is uninstalled first and installed again afterwards, so every
// binding gets a fresh handle.
func (c *Controller) mutate(m Mode, fn func(*keymap.Table) bool) {
	t := c.tables[m]
	if m != c.current || !t.Installed() {
		fn(t)
		return
	}
	t.Uninstall(c.host, TakeKeyCommand)
	fn(t)
	t.Install(c.host)
}

// Rebuild reinstalls the current table.
func (c *Controller) Rebuild() {
	t := c.tables[c.current]
	t.Uninstall(c.host, TakeKeyCommand)
	t.Install(c.host)
}

// Shutdown uninstalls the current table and drops every binding.
func (c *Controller) Shutdown() {
	c.tables[c.current].Uninstall(c.host, "")
	for _, t := range c.tables {
		t.Clear()
	}
}
