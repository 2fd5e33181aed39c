package input

import (
	"strconv"

	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/input/mode"
)

// insertMotions map INSERT keys straight to host commands.
var insertMotions = map[key.Code]string{
	key.ArrowLeft:  "cursor-left",
	key.ArrowRight: "cursor-right",
	key.ArrowUp:    "cursor-up",
	key.ArrowDown:  "cursor-down",
	key.PageUp:     "cursor-page-up",
	key.PageDown:   "cursor-page-down",
	key.Home:       "cursor-line-begin",
	key.End:        "cursor-line-end",
	key.Backspace:  "delete-back",
	key.Delete:     "delete-forward",
}

// insert interprets a key in INSERT mode. Keys that were acted upon are
// recorded for repeat; the keys leaving INSERT are not.
func (e *Engine) insert(k key.Code) {
	if mode.IsExitKey(k) {
		e.modes.Change(mode.Normal)
		return
	}

	if cmd, ok := insertMotions[k]; ok {
		e.exec(cmd)
	} else if insertable(k) {
		e.exec("insert", strconv.Itoa(int(k)))
	} else {
		e.host.Errorf("[INSERT] unhandled key %d", int(k))
		return
	}

	e.rec.RecordInsert(k)
}

func insertable(k key.Code) bool {
	switch k {
	case key.Enter, key.Tab, key.MByte:
		return true
	}
	return k.IsPrint()
}
