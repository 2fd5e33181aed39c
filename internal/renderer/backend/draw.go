package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/host/memhost"
	"github.com/dshills/xul/internal/input/mode"
)

// Draw renders h: one row per buffer line and a status line at the bottom
// styled by the mode attributes.
func (t *Terminal) Draw(h *memhost.Host) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	rows := height - 1

	status := statusStyle(h)
	if h.ActiveFrame() != nil && rows > 0 {
		t.drawText(h, width, rows, status)
	} else {
		t.screen.HideCursor()
	}
	t.drawStatus(h, width, height-1, status)
	t.screen.Show()
}

// drawText draws the visible lines and places the cursor.
func (t *Terminal) drawText(h *memhost.Host, width, rows int, status tcell.Style) {
	f := h.Frame()
	cl := f.CursorLine()
	if cl < t.top {
		t.top = cl
	}
	if cl >= t.top+rows {
		t.top = cl - rows + 1
	}

	_, bg, _ := status.Decompose()
	cursorLine := tcell.StyleDefault.Background(CursorLineColor(bg))
	showCursorLine := host.VarTruthy(h, mode.VarCursorLine)

	for y := 0; y < rows; y++ {
		n := t.top + y
		line := h.Buffer().Line(n)
		if line == nil {
			t.screen.SetContent(0, y, '~', nil, tcell.StyleDefault.Foreground(tcell.ColorNavy))
			continue
		}

		base := tcell.StyleDefault
		if showCursorLine && n == cl {
			base = cursorLine
			for x := 0; x < width; x++ {
				t.screen.SetContent(x, y, ' ', nil, base)
			}
		}

		x := 0
		for idx := 0; idx < line.Len() && x < width; idx++ {
			g, _ := line.Glyph(idx)
			style := base
			if h.Selected(n, idx) {
				style = style.Reverse(true)
			}
			if g.Text == "\t" {
				for i := 0; i < g.Width && x+i < width; i++ {
					t.screen.SetContent(x+i, y, ' ', nil, style)
				}
			} else {
				runes := []rune(g.Text)
				t.screen.SetContent(x, y, runes[0], runes[1:], style)
			}
			x += g.Width
		}
	}

	t.screen.ShowCursor(f.CursorCol()-1, cl-t.top)
}

// drawStatus draws the mode, the cursor position and the newest error.
func (t *Terminal) drawStatus(h *memhost.Host, width, y int, style tcell.Style) {
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}

	name, _ := h.Var(mode.VarMode)
	left := " " + name
	if f := h.ActiveFrame(); f != nil {
		left += fmt.Sprintf("  %d:%d", f.CursorLine(), f.CursorCol())
	}
	x := putString(t.screen, 0, y, width, left, style)

	if msg := h.LastError(); msg != "" {
		right := msg + " "
		start := width - runewidth.StringWidth(right)
		if start < x+1 {
			start = x + 1
		}
		putString(t.screen, start, y, width, right, style)
	}
}

// statusStyle returns the style of the current mode attributes, or reverse
// video when they are unset or do not parse.
func statusStyle(h *memhost.Host) tcell.Style {
	fallback := tcell.StyleDefault.Reverse(true)
	attrs, ok := h.Var(mode.VarModeAttrs)
	if !ok || attrs == "" {
		return fallback
	}
	style, err := ParseAttrs(attrs)
	if err != nil {
		return fallback
	}
	return style
}

// putString draws s from column x, clipped at width, and returns the
// column after it.
func putString(s tcell.Screen, x, y, width int, str string, style tcell.Style) int {
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// DrawPrompt replaces the status line with text and puts the cursor after
// it.
func (t *Terminal) DrawPrompt(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	y := height - 1
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	x := putString(t.screen, 0, y, width, text, tcell.StyleDefault)
	t.screen.ShowCursor(x, y)
	t.screen.Show()
}
