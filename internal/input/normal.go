package input

import (
	"errors"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
	"github.com/dshills/xul/internal/input/mode"
	"github.com/dshills/xul/internal/input/repeat"
	"github.com/dshills/xul/internal/input/till"
)

// normal interprets a key in NORMAL mode: motions first, then actions.
func (e *Engine) normal(k key.Code) {
	if e.navCommon(k) {
		return
	}

	fn, ok := e.actions[k]
	if !ok {
		e.host.Errorf("[NORMAL] unhandled key %d", int(k))
		return
	}

	switch k {
	case 'v', 'V', key.CtrlV, repeat.Key:
	default:
		e.modes.SetVisual(false)
	}
	fn()

	if k.IsPrint() && !e.rec.Replaying() {
		e.rec.SaveAction(k)
	}
}

// navCommon handles motion keys. It returns false if k is not a motion.
func (e *Engine) navCommon(k key.Code) bool {
	if e.till.Pending() {
		e.resolveTill(k)
		return true
	}

	switch k {
	case 'h', key.ArrowLeft:
		e.anchor()
		e.exec("cursor-left")
	case 'H':
		e.reanchorLineSelection()
		e.exec("cursor-left")
	case 'j', key.ArrowDown:
		e.lineMotion("cursor-down")
	case 'J':
		e.exec("cursor-down")
	case 'k', key.ArrowUp:
		e.lineMotion("cursor-up")
	case 'K':
		e.exec("cursor-up")
	case 'l', key.ArrowRight:
		e.anchor()
		e.exec("cursor-right")
	case 'L':
		e.reanchorLineSelection()
		e.exec("cursor-right")
	case key.PageUp:
		e.lineMotion("cursor-page-up")
	case key.PageDown:
		e.lineMotion("cursor-page-down")
	case 'w':
		e.anchor()
		e.exec("cursor-next-word")
	case 'W':
		e.reanchorLineSelection()
		e.exec("cursor-next-word")
	case 'b':
		e.anchor()
		e.exec("cursor-prev-word")
	case 'B':
		e.reanchorLineSelection()
		e.exec("cursor-prev-word")
	case '0', key.Home:
		e.anchor()
		e.exec("cursor-line-begin")
	case '$', key.End:
		e.anchor()
		e.exec("cursor-line-end")
	case '{':
		e.anchorLines()
		e.paragraphUp()
	case '}':
		e.anchorLines()
		e.paragraphDown()
	case 'g':
		e.exec("cursor-buffer-begin")
		e.anchorLines()
	case 'G':
		e.exec("cursor-buffer-end")
		e.anchorLines()
	case '/':
		e.search("find-in-buffer")
	case '?':
		e.exec("replace-current-search")
	case 'n':
		e.search("find-next-in-buffer")
	case 'N':
		e.search("find-prev-in-buffer")
	case 'f', 'F', 't', 'T':
		e.anchor()
		e.till.Start(k)
	case ';':
		e.anchor()
	default:
		return false
	}

	if !e.rec.Replaying() {
		e.rec.SetNav(k)
	}
	return true
}

// resolveTill finishes a pending f/F/t/T with target.
func (e *Engine) resolveTill(target key.Code) {
	op := e.till.Op()
	found := e.till.Resolve(e.host.ActiveFrame(), target)
	e.logger.Debug("till %s %s found=%v", op, target, found)
}

// anchor starts a fresh character selection at the cursor unless visual.
func (e *Engine) anchor() {
	if e.modes.Visual() {
		return
	}
	e.exec("select-off")
	e.exec("select")
}

// anchorLines starts a fresh line selection at the cursor unless visual.
func (e *Engine) anchorLines() {
	if e.modes.Visual() {
		return
	}
	e.exec("select-off")
	e.exec("select-lines")
}

// reanchorLineSelection turns a line selection back into a character
// selection. Other selections are left alone.
func (e *Engine) reanchorLineSelection() {
	if e.modes.Visual() || e.selection() != host.SelectLine {
		return
	}
	e.exec("select-off")
	e.exec("select")
}

// lineMotion runs a vertical motion. Outside visual it frames the new
// line as a line selection.
func (e *Engine) lineMotion(cmd string) {
	if e.modes.Visual() {
		e.exec(cmd)
		return
	}
	e.exec("select-off")
	e.exec(cmd)
	e.exec("select-lines")
}

// paragraphUp moves to the line above the previous paragraph. When the
// probe lands back on the starting line it nudges one more line up.
func (e *Engine) paragraphUp() {
	start := e.cursorLine()
	e.exec("cursor-up")
	e.exec("cursor-prev-paragraph")
	e.exec("cursor-next-paragraph")
	e.exec("cursor-up")
	if e.cursorLine() == start {
		e.exec("cursor-up")
	}
}

// paragraphDown moves to the line above the next paragraph, probing past
// the current one if the first probe does not move.
func (e *Engine) paragraphDown() {
	start := e.cursorLine()
	e.exec("cursor-next-paragraph")
	e.exec("cursor-up")
	if e.cursorLine() == start {
		e.exec("cursor-down")
		e.exec("cursor-next-paragraph")
		e.exec("cursor-up")
	}
}

// search runs a search command. A result on another line is framed as a
// line selection.
func (e *Engine) search(cmd string) {
	e.anchor()
	start := e.cursorLine()
	e.exec(cmd)
	if e.cursorLine() != start {
		e.exec("select-off")
		e.exec("select-lines")
	}
}

// normalActions returns the NORMAL action keys.
func (e *Engine) normalActions() map[key.Code]func() {
	frame := func(cmds ...string) func() {
		return func() {
			for _, c := range cmds {
				e.exec(c)
			}
			e.exec("select-off")
			e.exec("select-lines")
		}
	}

	return map[key.Code]func(){
		'c': func() {
			e.exec("yank-selection", "1")
			e.exec("delete-back")
			e.exec("select-off")
			e.modes.Change(mode.Insert)
		},
		'd': func() {
			e.exec("yank-selection", "1")
			e.exec("delete-back")
			e.exec("select-off")
			e.exec("select-lines")
		},
		'y':        frame("yank-selection"),
		'p':        frame("paste-yank-buffer"),
		'u':        frame("undo"),
		key.CtrlR:  frame("redo"),
		key.Esc:    frame(),
		key.CtrlC:  frame(),
		'v':        e.toggleVisual("select"),
		'V':        e.toggleVisual("select-lines"),
		key.CtrlV:  e.toggleVisual("select-rect"),
		'a':        e.enterInsert,
		'i':        e.enterInsert,
		'A':        func() { e.exec("cursor-line-end"); e.enterInsert() },
		key.Delete: func() { e.exec("select-off"); e.exec("delete-forward") },
		':':        func() { e.exec("command-prompt") },
		repeat.Key: e.repeatLast,
	}
}

func (e *Engine) toggleVisual(selectCmd string) func() {
	return func() {
		e.modes.ToggleVisual()
		e.exec("select-off")
		e.exec(selectCmd)
	}
}

func (e *Engine) enterInsert() {
	e.exec("select-off")
	e.modes.Change(mode.Insert)
}

// repeatLast replays the saved change. A change that entered INSERT
// replays the keys typed in that session and returns to NORMAL.
func (e *Engine) repeatLast() {
	err := e.rec.Replay(func() {
		nav, action := e.rec.Saved()
		e.logger.Debug("repeat nav=%s action=%s", nav, action)

		if !repeat.IsInsertEntry(action) && nav != key.Null {
			e.navCommon(nav)
			if till.IsOperator(nav) {
				e.navCommon(e.till.LastKey())
			}
		}

		e.normal(action)

		if e.modes.Current() != mode.Insert {
			return
		}
		for _, k := range e.rec.InsertKeys() {
			e.insert(k)
		}
		if e.modes.Current() == mode.Insert {
			e.modes.Change(mode.Normal)
		}
	})

	switch {
	case errors.Is(err, repeat.ErrNestedReplay):
		e.host.Errorf("%v", err)
	case errors.Is(err, repeat.ErrNothingToRepeat):
		e.logger.Debug("repeat: %v", err)
	}
}
