package input

import (
	"strconv"

	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/input/mode"
)

// Commands the engine adds to the host.
const (
	CmdTakeKey    = mode.TakeKeyCommand
	CmdBind       = "xul-bind"
	CmdUnbind     = "xul-unbind"
	CmdExitInsert = "xul-exit-insert"
)

// Commands returns the engine commands by name. Each one reports its
// errors through the host and never fails otherwise.
func (e *Engine) Commands() map[string]func(args ...string) {
	return map[string]func(args ...string){
		CmdTakeKey:    e.takeKeyCmd,
		CmdBind:       e.report(e.BindArgs),
		CmdUnbind:     e.report(e.UnbindArgs),
		CmdExitInsert: func(...string) { e.ExitInsert() },
	}
}

func (e *Engine) report(fn func(args ...string) error) func(args ...string) {
	return func(args ...string) {
		if err := fn(args...); err != nil {
			e.host.Errorf("%v", err)
		}
	}
}

// BindArgs is Bind taking command line arguments:
// mode keys command [args...].
func (e *Engine) BindArgs(args ...string) error {
	if len(args) < 1 {
		return ErrMissingMode
	}
	if _, ok := mode.Parse(args[0]); !ok {
		return unknownMode(args[0])
	}
	if len(args) < 2 {
		return ErrMissingKeys
	}
	if len(args) < 3 {
		return ErrMissingCommand
	}
	return e.Bind(args[0], args[1], args[2], args[3:]...)
}

// UnbindArgs is Unbind taking command line arguments: mode keys.
func (e *Engine) UnbindArgs(args ...string) error {
	if len(args) < 1 {
		return ErrMissingMode
	}
	if _, ok := mode.Parse(args[0]); !ok {
		return unknownMode(args[0])
	}
	if len(args) != 2 {
		return ErrMissingKeys
	}
	return e.Unbind(args[0], args[1])
}

func (e *Engine) takeKeyCmd(args ...string) {
	if len(args) != 1 {
		e.host.Errorf("expected 1 argument, but got %d", len(args))
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		e.host.Errorf("invalid key code '%s'", args[0])
		return
	}
	e.TakeKey(key.Code(n))
}
