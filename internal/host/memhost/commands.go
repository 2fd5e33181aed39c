package memhost

import (
	"strconv"
	"strings"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
)

// Variables the built-in commands read.
const (
	VarSearchCursorMove = "enable-search-cursor-move"
	VarSearchPattern    = "search-pattern"
	VarReplaceString    = "replace-string"
)

// yankBuffer holds the last yanked text.
type yankBuffer struct {
	text  string
	lines bool
}

// Yanked returns the yank buffer and whether it holds whole lines.
func (h *Host) Yanked() (text string, lines bool) {
	return h.yank.text, h.yank.lines
}

func (h *Host) registerBuiltins() {
	builtins := map[string]CommandFunc{
		"select":       h.selectCmd(host.SelectChar),
		"select-lines": h.selectCmd(host.SelectLine),
		"select-rect":  h.selectCmd(host.SelectRect),
		"select-off":   h.selectOff,

		"cursor-left":           h.motion(h.cursorLeft),
		"cursor-right":          h.motion(h.cursorRight),
		"cursor-up":             h.motion(func(f *Frame) { f.SetCursor(f.line-1, f.col) }),
		"cursor-down":           h.motion(func(f *Frame) { f.SetCursor(f.line+1, f.col) }),
		"cursor-page-up":        h.motion(func(f *Frame) { f.SetCursor(f.line-f.height, f.col) }),
		"cursor-page-down":      h.motion(func(f *Frame) { f.SetCursor(f.line+f.height, f.col) }),
		"cursor-line-begin":     h.motion(func(f *Frame) { f.SetCursor(f.line, 1) }),
		"cursor-line-end":       h.motion(func(f *Frame) { f.SetCursor(f.line, f.buf.Line(f.line).VisualWidth()+1) }),
		"cursor-buffer-begin":   h.motion(func(f *Frame) { f.SetCursor(1, 1) }),
		"cursor-buffer-end":     h.motion(func(f *Frame) { f.SetCursor(f.buf.LineCount(), 1) }),
		"cursor-next-word":      h.motion(func(f *Frame) { f.setPos(f.buf.nextWord(f.pos())) }),
		"cursor-prev-word":      h.motion(func(f *Frame) { f.setPos(f.buf.prevWord(f.pos())) }),
		"cursor-next-paragraph": h.motion(func(f *Frame) { f.SetCursor(f.buf.nextParagraph(f.line), 1) }),
		"cursor-prev-paragraph": h.motion(func(f *Frame) { f.SetCursor(f.buf.prevParagraph(f.line), 1) }),

		"find-in-buffer":         h.findInBuffer,
		"find-next-in-buffer":    h.findNext(true),
		"find-prev-in-buffer":    h.findNext(false),
		"replace-current-search": h.replaceCurrentSearch,

		"yank-selection":    h.yankSelection,
		"paste-yank-buffer": h.pasteYankBuffer,
		"delete-back":       h.deleteBack,
		"delete-forward":    h.deleteForward,
		"insert":            h.insert,
		"undo":              h.undo,
		"redo":              h.redo,
		"command-prompt":    h.commandPrompt,
	}
	for name, fn := range builtins {
		h.commands[name] = fn
	}
}

// activeFrame returns the frame commands act on, or nil.
func (h *Host) activeFrame() *Frame {
	if h.frameless {
		return nil
	}
	return h.frame
}

func (h *Host) motion(fn func(*Frame)) CommandFunc {
	return func(...string) {
		if f := h.activeFrame(); f != nil {
			fn(f)
		}
	}
}

func (h *Host) cursorLeft(f *Frame) {
	if p := f.pos(); p.Idx > 0 {
		f.setPos(Pos{Line: p.Line, Idx: p.Idx - 1})
	}
}

func (h *Host) cursorRight(f *Frame) {
	if p := f.pos(); p.Idx < f.buf.Line(p.Line).Len() {
		f.setPos(Pos{Line: p.Line, Idx: p.Idx + 1})
	}
}

// selectCmd starts a selection of kind at the cursor. An active selection
// keeps its anchor and changes kind.
func (h *Host) selectCmd(kind host.SelectionKind) CommandFunc {
	return func(...string) {
		f := h.activeFrame()
		if f == nil {
			return
		}
		if h.buf.sel.kind != host.SelectNone {
			h.buf.sel.kind = kind
			return
		}
		h.buf.startSelection(kind, f.line, f.col)
	}
}

func (h *Host) selectOff(...string) {
	h.buf.clearSelection()
}

// SelectionRange returns the anchor and cursor ends of the selection.
func (h *Host) SelectionRange() (anchorLine, anchorCol, line, col int, kind host.SelectionKind) {
	s := h.buf.sel
	return s.anchorLine, s.anchorCol, h.frame.line, h.frame.col, s.kind
}

// Selected reports whether glyph idx of line is inside the selection.
func (h *Host) Selected(line, idx int) bool {
	switch h.buf.sel.kind {
	case host.SelectChar:
		from, to := h.buf.anchorPos(), h.frame.pos()
		if to.Before(from) {
			from, to = to, from
		}
		p := Pos{Line: line, Idx: idx}
		return !p.Before(from) && p.Before(to)
	case host.SelectLine:
		first, last := h.selectedLines()
		return line >= first && line <= last
	case host.SelectRect:
		first, last := h.selectedLines()
		l := h.buf.Line(line)
		if l == nil || line < first || line > last {
			return false
		}
		from, to := h.rectCols()
		col := l.IdxToCol(idx)
		return col >= from && col < to
	}
	return false
}

// selectedLines returns the first and last line of the selection.
func (h *Host) selectedLines() (int, int) {
	first, last := h.buf.sel.anchorLine, h.frame.line
	if last < first {
		first, last = last, first
	}
	return clamp(first, 1, h.buf.LineCount()), clamp(last, 1, h.buf.LineCount())
}

// rectCols returns the column span [from, to) of a rect selection.
func (h *Host) rectCols() (int, int) {
	from, to := h.buf.sel.anchorCol, h.frame.col
	if to < from {
		from, to = to, from
	}
	return from, to
}

// selectionText returns the selected text.
func (h *Host) selectionText() string {
	switch h.buf.sel.kind {
	case host.SelectChar:
		return h.buf.textRange(h.buf.anchorPos(), h.frame.pos())
	case host.SelectLine:
		first, last := h.selectedLines()
		return strings.Join(h.buf.lineStrings()[first-1:last], "\n")
	case host.SelectRect:
		first, last := h.selectedLines()
		from, to := h.rectCols()
		parts := make([]string, 0, last-first+1)
		for n := first; n <= last; n++ {
			l := h.buf.Line(n)
			parts = append(parts, l.slice(l.ColToIdx(from), l.ColToIdx(to)))
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

// deleteSelection removes the selected text and clears the selection.
func (h *Host) deleteSelection(f *Frame) {
	switch h.buf.sel.kind {
	case host.SelectChar:
		from, to := h.buf.anchorPos(), f.pos()
		if to.Before(from) {
			from, to = to, from
		}
		h.buf.deleteRange(from, to)
		f.setPos(from)
	case host.SelectLine:
		first, last := h.selectedLines()
		h.buf.deleteLines(first, last)
		f.SetCursor(first, 1)
	case host.SelectRect:
		first, last := h.selectedLines()
		from, to := h.rectCols()
		for n := first; n <= last; n++ {
			l := h.buf.Line(n)
			h.buf.deleteRange(Pos{Line: n, Idx: l.ColToIdx(from)}, Pos{Line: n, Idx: l.ColToIdx(to)})
		}
		f.SetCursor(first, from)
	}
	h.buf.clearSelection()
}

func (h *Host) snapshot() snapshot {
	return snapshot{lines: h.buf.lineStrings(), line: h.frame.line, col: h.frame.col}
}

func (h *Host) restore(s snapshot) {
	h.buf.setLines(s.lines)
	h.buf.clearSelection()
	h.frame.SetCursor(s.line, s.col)
}

// edit runs fn and records one undo record if the text changed.
func (h *Host) edit(name string, fn func(*Frame)) {
	f := h.activeFrame()
	if f == nil {
		return
	}
	before := h.snapshot()
	fn(f)
	after := h.snapshot()
	if before.sameText(after) {
		return
	}
	h.buf.history.push(record{name: name, before: before, after: after})
}

func (h *Host) yankSelection(args ...string) {
	if h.activeFrame() == nil || h.buf.sel.kind == host.SelectNone {
		return
	}
	h.yank = yankBuffer{
		text:  h.selectionText(),
		lines: h.buf.sel.kind == host.SelectLine,
	}
	if len(args) == 0 || args[0] != "1" {
		h.buf.clearSelection()
	}
}

func (h *Host) pasteYankBuffer(...string) {
	if h.yank.text == "" && !h.yank.lines {
		return
	}
	h.edit("paste", func(f *Frame) {
		if h.yank.lines {
			h.buf.insertLines(f.line, strings.Split(h.yank.text, "\n"))
			f.SetCursor(f.line+1, 1)
			return
		}
		f.setPos(h.buf.insertText(f.pos(), h.yank.text))
	})
}

func (h *Host) deleteBack(...string) {
	h.edit("delete-back", func(f *Frame) {
		if h.buf.sel.kind != host.SelectNone {
			h.deleteSelection(f)
			return
		}
		p := f.pos()
		switch {
		case p.Idx > 0:
			from := Pos{Line: p.Line, Idx: p.Idx - 1}
			h.buf.deleteRange(from, p)
			f.setPos(from)
		case p.Line > 1:
			from := Pos{Line: p.Line - 1, Idx: h.buf.Line(p.Line - 1).Len()}
			h.buf.deleteRange(from, p)
			f.setPos(from)
		}
	})
}

func (h *Host) deleteForward(...string) {
	h.edit("delete-forward", func(f *Frame) {
		if h.buf.sel.kind != host.SelectNone {
			h.deleteSelection(f)
			return
		}
		p := f.pos()
		switch {
		case p.Idx < h.buf.Line(p.Line).Len():
			h.buf.deleteRange(p, Pos{Line: p.Line, Idx: p.Idx + 1})
		case p.Line < h.buf.LineCount():
			h.buf.deleteRange(p, Pos{Line: p.Line + 1})
		}
		f.setPos(p)
	})
}

// insert inserts the character of a key code.
func (h *Host) insert(args ...string) {
	if len(args) != 1 {
		h.Errorf("expected 1 argument, but got %d", len(args))
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		h.Errorf("invalid key code '%s'", args[0])
		return
	}

	var text string
	switch k := key.Code(n); {
	case k == key.Enter:
		text = "\n"
	case k == key.Tab:
		text = "\t"
	case k == key.MByte:
		if h.mbyte == 0 {
			h.Errorf("no multi-byte character to insert")
			return
		}
		text = string(h.mbyte)
	case k.IsPrint():
		text = string(rune(k))
	default:
		h.Errorf("cannot insert key %d", n)
		return
	}

	h.edit("insert", func(f *Frame) {
		f.setPos(h.buf.insertText(f.pos(), text))
	})
}

func (h *Host) undo(...string) {
	s, err := h.buf.history.undo()
	if err != nil {
		h.logger.Debug("undo: %v", err)
		return
	}
	h.restore(s)
}

func (h *Host) redo(...string) {
	s, err := h.buf.history.redo()
	if err != nil {
		h.logger.Debug("redo: %v", err)
		return
	}
	h.restore(s)
}

func (h *Host) findInBuffer(args ...string) {
	pattern := strings.Join(args, " ")
	if pattern == "" {
		pattern, _ = h.Var(VarSearchPattern)
	}
	if pattern == "" {
		h.Errorf("no search pattern")
		return
	}
	h.search = pattern

	f := h.activeFrame()
	if f == nil || !host.VarTruthy(h, VarSearchCursorMove) {
		return
	}
	if p, ok := h.buf.find(f.pos(), pattern, true); ok {
		f.setPos(p)
	}
}

func (h *Host) findNext(forward bool) CommandFunc {
	return func(...string) {
		if h.search == "" {
			h.Errorf("no search pattern")
			return
		}
		f := h.activeFrame()
		if f == nil {
			return
		}
		if p, ok := h.buf.find(f.pos(), h.search, forward); ok {
			f.setPos(p)
		}
	}
}

// replaceCurrentSearch replaces the match under the cursor.
func (h *Host) replaceCurrentSearch(args ...string) {
	if h.search == "" {
		return
	}
	repl := strings.Join(args, " ")
	if len(args) == 0 {
		repl, _ = h.Var(VarReplaceString)
	}

	h.edit("replace", func(f *Frame) {
		p := f.pos()
		l := h.buf.Line(p.Line)
		if !strings.HasPrefix(l.String()[h.buf.byteOffset(p):], h.search) {
			return
		}
		end := Pos{Line: p.Line, Idx: byteToIdx(l, h.buf.byteOffset(p)+len(h.search))}
		h.buf.deleteRange(p, end)
		f.setPos(h.buf.insertText(p, repl))
	})
}

func (h *Host) commandPrompt(...string) {
	if h.prompt == nil {
		h.logger.Debug("command-prompt: no prompt")
		return
	}
	if line, ok := h.prompt(); ok {
		h.ExecLine(line)
	}
}
