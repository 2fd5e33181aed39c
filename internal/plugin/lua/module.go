package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input"
	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/input/mode"
)

// ModuleName is the global the xul functions are installed under.
const ModuleName = "xul"

// KeyFeeder is implemented by hosts that can run keys through their own
// dispatch table, the way a user typing them would.
type KeyFeeder interface {
	FeedKeys(seq key.Sequence)
}

// Module exposes an engine and its host to init scripts.
type Module struct {
	engine *input.Engine
	host   host.Host
}

// NewModule creates the xul module for e running on h.
func NewModule(e *input.Engine, h host.Host) *Module {
	return &Module{engine: e, host: h}
}

// Open installs the module into s.
func (m *Module) Open(s *State) {
	s.RegisterModule(ModuleName, m.Funcs())
}

// Funcs returns the module functions by name.
func (m *Module) Funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"bind":        m.bind,
		"unbind":      m.unbind,
		"mode":        m.mode,
		"modes":       m.modes,
		"exit_insert": m.exitInsert,
		"feed":        m.feed,
		"set":         m.set,
		"get":         m.get,
		"exec":        m.exec,
	}
}

// bind(mode, keys, cmd, ...args)
func (m *Module) bind(L *lua.LState) int {
	modeName := L.CheckString(1)
	keys := L.CheckString(2)
	cmd := L.CheckString(3)
	if err := m.engine.Bind(modeName, keys, cmd, restStrings(L, 4)...); err != nil {
		L.RaiseError("xul.bind: %s", err.Error())
	}
	return 0
}

// unbind(mode, keys)
func (m *Module) unbind(L *lua.LState) int {
	modeName := L.CheckString(1)
	keys := L.CheckString(2)
	if err := m.engine.Unbind(modeName, keys); err != nil {
		L.RaiseError("xul.unbind: %s", err.Error())
	}
	return 0
}

// mode() returns the current mode name.
func (m *Module) mode(L *lua.LState) int {
	L.Push(lua.LString(m.engine.Mode().String()))
	return 1
}

// modes() returns a list of mode names.
func (m *Module) modes(L *lua.LState) int {
	t := L.NewTable()
	for _, name := range mode.Names() {
		t.Append(lua.LString(name))
	}
	L.Push(t)
	return 1
}

func (m *Module) exitInsert(L *lua.LState) int {
	m.engine.ExitInsert()
	return 0
}

// feed(keys) runs keys as if typed. Unlike a binding, the key string has
// no length limit.
func (m *Module) feed(L *lua.LState) int {
	seq, err := key.ParseKeys(L.CheckString(1))
	if err != nil {
		L.RaiseError("xul.feed: %s", err.Error())
		return 0
	}
	if f, ok := m.host.(KeyFeeder); ok {
		f.FeedKeys(seq)
		return 0
	}
	for _, k := range seq {
		m.engine.TakeKey(k)
	}
	return 0
}

// set(name, value)
func (m *Module) set(L *lua.LState) int {
	m.host.SetVar(L.CheckString(1), L.CheckString(2))
	return 0
}

// get(name) returns nil when the variable is unset.
func (m *Module) get(L *lua.LState) int {
	v, ok := m.host.Var(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(v))
	return 1
}

// exec(cmd, ...args)
func (m *Module) exec(L *lua.LState) int {
	cmd := L.CheckString(1)
	m.host.Exec(cmd, restStrings(L, 2)...)
	return 0
}

// restStrings returns the string arguments from position from to the top.
func restStrings(L *lua.LState, from int) []string {
	var out []string
	for i := from; i <= L.GetTop(); i++ {
		out = append(out, L.CheckString(i))
	}
	return out
}
