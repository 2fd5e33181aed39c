package memhost

import (
	"strings"

	"github.com/dshills/xul/internal/host"
)

// Pos is a buffer position: a 1-based line and a 0-based glyph index.
type Pos struct {
	Line int
	Idx  int
}

// Before reports whether p comes before o.
func (p Pos) Before(o Pos) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Idx < o.Idx)
}

// selection is the active selection. The anchor is kept in visual columns
// so rectangular selections keep their shape across lines.
type selection struct {
	kind       host.SelectionKind
	anchorLine int
	anchorCol  int
}

// Buffer is a list of lines with a selection and an undo log.
type Buffer struct {
	lines   []*Line
	sel     selection
	history *History
}

// NewBuffer creates a buffer holding text.
func NewBuffer(text string) *Buffer {
	b := &Buffer{history: NewHistory(0)}
	b.setLines(strings.Split(text, "\n"))
	return b
}

func (b *Buffer) setLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([]*Line, len(lines))
	for i, s := range lines {
		b.lines[i] = NewLine(s)
	}
}

func (b *Buffer) lineStrings() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// Text returns the buffer contents with lines joined by newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.lineStrings(), "\n")
}

// LineCount returns the number of lines. It is never less than one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line n (1-based), or nil.
func (b *Buffer) Line(n int) *Line {
	if n < 1 || n > len(b.lines) {
		return nil
	}
	return b.lines[n-1]
}

// History returns the undo log.
func (b *Buffer) History() *History {
	return b.history
}

// Selection returns the kind of the active selection.
func (b *Buffer) Selection() host.SelectionKind {
	return b.sel.kind
}

// UndoRecords returns the number of undo records.
func (b *Buffer) UndoRecords() int {
	return b.history.UndoCount()
}

// MergeUndoRecords merges the newest two undo records.
func (b *Buffer) MergeUndoRecords() {
	_ = b.history.Merge()
}

// startSelection begins a selection of kind anchored at (line, col).
func (b *Buffer) startSelection(kind host.SelectionKind, line, col int) {
	b.sel = selection{kind: kind, anchorLine: line, anchorCol: col}
}

func (b *Buffer) clearSelection() {
	b.sel = selection{}
}

// anchorPos returns the selection anchor as a Pos.
func (b *Buffer) anchorPos() Pos {
	l := b.Line(b.sel.anchorLine)
	if l == nil {
		return Pos{Line: b.LineCount(), Idx: 0}
	}
	return Pos{Line: b.sel.anchorLine, Idx: l.ColToIdx(b.sel.anchorCol)}
}

// textRange returns the text between from and to, to exclusive.
func (b *Buffer) textRange(from, to Pos) string {
	if to.Before(from) {
		from, to = to, from
	}
	if from.Line == to.Line {
		return b.Line(from.Line).slice(from.Idx, to.Idx)
	}

	var sb strings.Builder
	first := b.Line(from.Line)
	sb.WriteString(first.slice(from.Idx, first.Len()))
	for n := from.Line + 1; n < to.Line; n++ {
		sb.WriteByte('\n')
		sb.WriteString(b.Line(n).String())
	}
	sb.WriteByte('\n')
	sb.WriteString(b.Line(to.Line).slice(0, to.Idx))
	return sb.String()
}

// deleteRange removes the text between from and to, to exclusive.
func (b *Buffer) deleteRange(from, to Pos) {
	if to.Before(from) {
		from, to = to, from
	}
	first, last := b.Line(from.Line), b.Line(to.Line)
	joined := NewLine(first.slice(0, from.Idx) + last.slice(to.Idx, last.Len()))

	lines := make([]*Line, 0, len(b.lines)-(to.Line-from.Line))
	lines = append(lines, b.lines[:from.Line-1]...)
	lines = append(lines, joined)
	lines = append(lines, b.lines[to.Line:]...)
	b.lines = lines
}

// deleteLines removes lines first through last. The buffer keeps at least
// one line.
func (b *Buffer) deleteLines(first, last int) {
	if last < first {
		first, last = last, first
	}
	first = clamp(first, 1, len(b.lines))
	last = clamp(last, 1, len(b.lines))

	lines := make([]*Line, 0, len(b.lines))
	lines = append(lines, b.lines[:first-1]...)
	lines = append(lines, b.lines[last:]...)
	if len(lines) == 0 {
		lines = append(lines, NewLine(""))
	}
	b.lines = lines
}

// insertText inserts text at p and returns the position just past it.
func (b *Buffer) insertText(p Pos, text string) Pos {
	l := b.Line(p.Line)
	left, right := l.slice(0, p.Idx), l.slice(p.Idx, l.Len())
	parts := strings.Split(text, "\n")

	if len(parts) == 1 {
		b.lines[p.Line-1] = NewLine(left + text + right)
		return Pos{Line: p.Line, Idx: NewLine(left + text).Len()}
	}

	added := make([]*Line, 0, len(parts))
	added = append(added, NewLine(left+parts[0]))
	for _, s := range parts[1 : len(parts)-1] {
		added = append(added, NewLine(s))
	}
	tail := parts[len(parts)-1]
	added = append(added, NewLine(tail+right))

	lines := make([]*Line, 0, len(b.lines)+len(parts)-1)
	lines = append(lines, b.lines[:p.Line-1]...)
	lines = append(lines, added...)
	lines = append(lines, b.lines[p.Line:]...)
	b.lines = lines

	return Pos{Line: p.Line + len(parts) - 1, Idx: NewLine(tail).Len()}
}

// insertLines inserts whole lines after line n. n may be 0.
func (b *Buffer) insertLines(n int, text []string) {
	n = clamp(n, 0, len(b.lines))
	added := make([]*Line, len(text))
	for i, s := range text {
		added[i] = NewLine(s)
	}
	lines := make([]*Line, 0, len(b.lines)+len(added))
	lines = append(lines, b.lines[:n]...)
	lines = append(lines, added...)
	lines = append(lines, b.lines[n:]...)
	b.lines = lines
}
