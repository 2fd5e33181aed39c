package till

import (
	"testing"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
)

type fakeLine struct {
	glyphs []host.Glyph
}

// newFakeLine lays out s one glyph per rune. '#' stands for a two column
// multi-byte glyph.
func newFakeLine(s string) *fakeLine {
	l := &fakeLine{}
	for _, r := range s {
		if r == '#' {
			l.glyphs = append(l.glyphs, host.Glyph{Code: key.MByte, Text: "世", Width: 2})
			continue
		}
		l.glyphs = append(l.glyphs, host.Glyph{Code: key.Code(r), Text: string(r), Width: 1})
	}
	return l
}

func (l *fakeLine) VisualWidth() int {
	w := 0
	for _, g := range l.glyphs {
		w += g.Width
	}
	return w
}

func (l *fakeLine) ColToIdx(col int) int {
	c := 1
	for i, g := range l.glyphs {
		if col < c+g.Width {
			return i
		}
		c += g.Width
	}
	return len(l.glyphs)
}

func (l *fakeLine) IdxToCol(idx int) int {
	col := 1
	for i := 0; i < idx && i < len(l.glyphs); i++ {
		col += l.glyphs[i].Width
	}
	return col
}

func (l *fakeLine) GlyphAt(col int) (host.Glyph, bool) {
	if col < 1 {
		return host.Glyph{}, false
	}
	idx := l.ColToIdx(col)
	if idx >= len(l.glyphs) {
		return host.Glyph{}, false
	}
	return l.glyphs[idx], true
}

type fakeBuffer struct{}

func (fakeBuffer) Selection() host.SelectionKind { return host.SelectNone }
func (fakeBuffer) UndoRecords() int              { return 0 }
func (fakeBuffer) MergeUndoRecords()             {}

type fakeFrame struct {
	line     *fakeLine
	col      int
	noBuffer bool
}

func (f *fakeFrame) CursorLine() int { return 1 }
func (f *fakeFrame) CursorCol() int  { return f.col }

func (f *fakeFrame) SetCursor(line, col int) {
	f.col = col
}

func (f *fakeFrame) Line(n int) host.Line {
	if n != 1 || f.line == nil {
		return nil
	}
	return f.line
}

func (f *fakeFrame) Buffer() host.Buffer {
	if f.noBuffer {
		return nil
	}
	return fakeBuffer{}
}

func TestStart(t *testing.T) {
	tests := []struct {
		op   key.Code
		want State
	}{
		{'f', PendingForward},
		{'t', PendingForward},
		{'F', PendingBackward},
		{'T', PendingBackwardStopBefore},
	}

	for _, tt := range tests {
		var m Machine
		if !m.Start(tt.op) {
			t.Errorf("Start(%v) = false, want true", tt.op)
		}
		if m.State() != tt.want {
			t.Errorf("Start(%v) state = %v, want %v", tt.op, m.State(), tt.want)
		}
		if m.Op() != tt.op {
			t.Errorf("Op() = %v, want %v", m.Op(), tt.op)
		}
	}

	var m Machine
	if m.Start('x') {
		t.Error("Start(x) = true, want false")
	}
	if m.Pending() {
		t.Error("Pending() = true after rejected Start")
	}
}

func TestIsOperator(t *testing.T) {
	for _, k := range []key.Code{'f', 't', 'F', 'T'} {
		if !IsOperator(k) {
			t.Errorf("IsOperator(%v) = false", k)
		}
	}
	for _, k := range []key.Code{'g', ';', key.Esc} {
		if IsOperator(k) {
			t.Errorf("IsOperator(%v) = true", k)
		}
	}
}

func TestResolveForward(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		col       int
		op        key.Code
		target    key.Code
		wantCol   int
		wantFound bool
	}{
		{"next x from start", "xaxbxc", 1, 'f', 'x', 3, true},
		{"no x right of col 5", "xaxbxc", 5, 'f', 'x', 5, false},
		{"c right of col 5", "xaxbxc", 5, 'f', 'c', 6, true},
		{"absent char", "xaxbxc", 1, 'f', 'z', 1, false},
		{"t lands on match", "xaxbxc", 1, 't', 'b', 4, true},
		{"skips wide glyph", "a#b", 1, 'f', 'b', 4, true},
		{"cursor on wide glyph", "#a#b", 1, 'f', 'b', 6, true},
		{"finds multi-byte marker", "ab#", 1, 'f', key.MByte, 3, true},
		{"empty line", "", 1, 'f', 'a', 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFrame{line: newFakeLine(tt.line), col: tt.col}
			var m Machine
			m.Start(tt.op)

			found := m.Resolve(f, tt.target)

			if found != tt.wantFound {
				t.Errorf("Resolve() = %v, want %v", found, tt.wantFound)
			}
			if f.col != tt.wantCol {
				t.Errorf("cursor col = %d, want %d", f.col, tt.wantCol)
			}
			if m.Pending() {
				t.Errorf("state = %v after Resolve, want inactive", m.State())
			}
		})
	}
}

func TestResolveBackward(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		col       int
		op        key.Code
		target    key.Code
		wantCol   int
		wantFound bool
	}{
		{"F nearest x", "xaxbxc", 5, 'F', 'x', 3, true},
		{"F to column 1", "xaxbxc", 3, 'F', 'x', 1, true},
		{"T stops after match", "xaxbxc", 5, 'T', 'x', 4, true},
		{"F absent", "xaxbxc", 6, 'F', 'z', 6, false},
		{"F at column 1", "xaxbxc", 1, 'F', 'x', 1, false},
		{"F over wide glyph", "a#b", 4, 'F', 'a', 1, true},
		{"T after wide glyph", "a#b", 4, 'T', key.MByte, 4, true},
		{"F from wide glyph", "a##", 4, 'F', key.MByte, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFrame{line: newFakeLine(tt.line), col: tt.col}
			var m Machine
			m.Start(tt.op)

			found := m.Resolve(f, tt.target)

			if found != tt.wantFound {
				t.Errorf("Resolve() = %v, want %v", found, tt.wantFound)
			}
			if f.col != tt.wantCol {
				t.Errorf("cursor col = %d, want %d", f.col, tt.wantCol)
			}
			if m.Pending() {
				t.Errorf("state = %v after Resolve, want inactive", m.State())
			}
		})
	}
}

func TestResolveLastKey(t *testing.T) {
	f := &fakeFrame{line: newFakeLine("xaxbxc"), col: 1}
	var m Machine

	m.Start('f')
	m.Resolve(f, 'b')
	if m.LastKey() != 'b' {
		t.Errorf("LastKey() = %v, want b", m.LastKey())
	}

	m.Start('f')
	m.Resolve(f, 'z')
	if m.LastKey() != 'b' {
		t.Errorf("LastKey() = %v after failed search, want b", m.LastKey())
	}
}

func TestResolveWithoutFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame host.Frame
	}{
		{"nil frame", nil},
		{"no buffer", &fakeFrame{line: newFakeLine("abc"), col: 1, noBuffer: true}},
		{"no line", &fakeFrame{col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Machine
			m.Start('f')
			if m.Resolve(tt.frame, 'b') {
				t.Error("Resolve() = true, want false")
			}
			if m.Pending() {
				t.Error("machine still pending after Resolve")
			}
		})
	}
}

func TestResolveInactive(t *testing.T) {
	f := &fakeFrame{line: newFakeLine("abc"), col: 1}
	var m Machine
	if m.Resolve(f, 'b') {
		t.Error("Resolve() on inactive machine = true, want false")
	}
	if f.col != 1 {
		t.Errorf("cursor moved to %d", f.col)
	}
}

func TestStateString(t *testing.T) {
	if got := PendingBackwardStopBefore.String(); got != "pending-backward-stop-before" {
		t.Errorf("String() = %q", got)
	}
	if got := State(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
