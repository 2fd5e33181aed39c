package memhost

import (
	"github.com/dshills/xul/internal/host"
)

// DefaultPageHeight is the number of lines a page motion moves.
const DefaultPageHeight = 20

// Frame is a cursor over a buffer.
type Frame struct {
	buf    *Buffer
	line   int
	col    int
	height int
}

// NewFrame creates a frame on buf with the cursor at 1,1.
func NewFrame(buf *Buffer) *Frame {
	return &Frame{buf: buf, line: 1, col: 1, height: DefaultPageHeight}
}

// CursorLine returns the cursor line.
func (f *Frame) CursorLine() int {
	return f.line
}

// CursorCol returns the cursor column.
func (f *Frame) CursorCol() int {
	return f.col
}

// Height returns the page height.
func (f *Frame) Height() int {
	return f.height
}

// SetHeight sets the page height.
func (f *Frame) SetHeight(h int) {
	if h > 0 {
		f.height = h
	}
}

// SetCursor moves the cursor. The line is clamped to the buffer, the
// column to the line end and then snapped to the start of its glyph.
func (f *Frame) SetCursor(line, col int) {
	f.line = clamp(line, 1, f.buf.LineCount())
	l := f.buf.Line(f.line)
	col = clamp(col, 1, l.VisualWidth()+1)
	f.col = l.IdxToCol(l.ColToIdx(col))
}

// Line returns line n of the buffer, or nil.
func (f *Frame) Line(n int) host.Line {
	l := f.buf.Line(n)
	if l == nil {
		return nil
	}
	return l
}

// Buffer returns the frame's buffer.
func (f *Frame) Buffer() host.Buffer {
	if f.buf == nil {
		return nil
	}
	return f.buf
}

// Buf returns the concrete buffer.
func (f *Frame) Buf() *Buffer {
	return f.buf
}

// pos returns the cursor as a Pos.
func (f *Frame) pos() Pos {
	return Pos{Line: f.line, Idx: f.buf.Line(f.line).ColToIdx(f.col)}
}

// setPos moves the cursor to p.
func (f *Frame) setPos(p Pos) {
	f.line = clamp(p.Line, 1, f.buf.LineCount())
	f.SetCursor(f.line, f.buf.Line(f.line).IdxToCol(p.Idx))
}
