package key

import (
	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a terminal key event into host key codes.
//
// Non-ASCII characters come back as MByte together with the character
// itself, which the host keeps for its insert command. Alt-modified
// characters are delivered as Esc followed by the character, matching the
// "alt-x" key string.
func FromTcell(ev *tcell.EventKey) (codes []Code, mbyte rune) {
	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		var c Code
		if r < 0x80 {
			c = Code(r)
		} else {
			c, mbyte = MByte, r
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return []Code{Esc, c}, mbyte
		}
		return []Code{c}, mbyte
	case tcell.KeyUp:
		return []Code{ArrowUp}, 0
	case tcell.KeyDown:
		return []Code{ArrowDown}, 0
	case tcell.KeyLeft:
		return []Code{ArrowLeft}, 0
	case tcell.KeyRight:
		return []Code{ArrowRight}, 0
	case tcell.KeyDelete:
		return []Code{Delete}, 0
	case tcell.KeyHome:
		return []Code{Home}, 0
	case tcell.KeyEnd:
		return []Code{End}, 0
	case tcell.KeyPgUp:
		return []Code{PageUp}, 0
	case tcell.KeyPgDn:
		return []Code{PageDown}, 0
	case tcell.KeyBacktab:
		return []Code{ShiftTab}, 0
	case tcell.KeyF1:
		return []Code{F1}, 0
	case tcell.KeyF2:
		return []Code{F2}, 0
	case tcell.KeyF3:
		return []Code{F3}, 0
	case tcell.KeyF4:
		return []Code{F4}, 0
	case tcell.KeyF5:
		return []Code{F5}, 0
	case tcell.KeyF6:
		return []Code{F6}, 0
	case tcell.KeyF7:
		return []Code{F7}, 0
	case tcell.KeyF8:
		return []Code{F8}, 0
	case tcell.KeyF9:
		return []Code{F9}, 0
	case tcell.KeyF10:
		return []Code{F10}, 0
	case tcell.KeyF11:
		return []Code{F11}, 0
	case tcell.KeyF12:
		return []Code{F12}, 0
	default:
		// tcell's control keys share their ASCII values.
		if k > 0 && k <= 127 {
			return []Code{Code(k)}, 0
		}
		return nil, 0
	}
}
