package memhost

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
)

func cursor(h *Host) (int, int) {
	return h.Frame().CursorLine(), h.Frame().CursorCol()
}

func TestMotions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		line     int
		col      int
		cmds     []string
		wantLine int
		wantCol  int
	}{
		{"right", "abc", 1, 1, []string{"cursor-right"}, 1, 2},
		{"right stops past end", "ab", 1, 3, []string{"cursor-right"}, 1, 3},
		{"left stops at col 1", "ab", 1, 1, []string{"cursor-left"}, 1, 1},
		{"right over wide glyph", "世b", 1, 1, []string{"cursor-right"}, 1, 3},
		{"down clamps column", "abcdef\nab", 1, 6, []string{"cursor-down"}, 2, 3},
		{"up at top", "a\nb", 1, 1, []string{"cursor-up"}, 1, 1},
		{"line end", "abc", 1, 1, []string{"cursor-line-end"}, 1, 4},
		{"line begin", "abc", 1, 3, []string{"cursor-line-begin"}, 1, 1},
		{"buffer end", "a\nb\nc", 1, 1, []string{"cursor-buffer-end"}, 3, 1},
		{"buffer begin", "a\nb\nc", 3, 1, []string{"cursor-buffer-begin"}, 1, 1},
		{"next word", "one two", 1, 1, []string{"cursor-next-word"}, 1, 5},
		{"next word over punct", "a.b", 1, 1, []string{"cursor-next-word"}, 1, 2},
		{"next word stops at empty line", "one two\n\nthree", 1, 5, []string{"cursor-next-word"}, 2, 1},
		{"next word to next line", "one\n  two", 1, 1, []string{"cursor-next-word"}, 2, 3},
		{"prev word", "one two", 1, 6, []string{"cursor-prev-word"}, 1, 5},
		{"prev word from word start", "one two", 1, 5, []string{"cursor-prev-word"}, 1, 1},
		{"next paragraph", "a\nb\n\nc", 1, 1, []string{"cursor-next-paragraph"}, 3, 1},
		{"prev paragraph", "a\n\nb\nc", 4, 1, []string{"cursor-prev-paragraph"}, 2, 1},
		{"page down", strings.Repeat("x\n", 30), 1, 1, []string{"cursor-page-down"}, 21, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.text)
			h.Frame().SetCursor(tt.line, tt.col)
			for _, c := range tt.cmds {
				h.ExecLine(c)
			}
			line, col := cursor(h)
			if line != tt.wantLine || col != tt.wantCol {
				t.Errorf("cursor = %d,%d, want %d,%d", line, col, tt.wantLine, tt.wantCol)
			}
			if len(h.Errors()) != 0 {
				t.Errorf("errors = %v", h.Errors())
			}
		})
	}
}

func TestPageHeight(t *testing.T) {
	h := New(strings.Repeat("x\n", 10), WithPageHeight(3))
	h.ExecLine("cursor-page-down")
	if line, _ := cursor(h); line != 4 {
		t.Errorf("cursor line = %d, want 4", line)
	}
	h.ExecLine("cursor-page-up")
	if line, _ := cursor(h); line != 1 {
		t.Errorf("cursor line = %d, want 1", line)
	}
}

func TestSelectionKinds(t *testing.T) {
	h := New("abc")
	if h.Buffer().Selection() != host.SelectNone {
		t.Fatal("selection active on a new host")
	}

	h.ExecLine("select")
	if h.Buffer().Selection() != host.SelectChar {
		t.Errorf("selection = %v, want char", h.Buffer().Selection())
	}

	// An active selection changes kind and keeps its anchor.
	h.ExecLine("cursor-right")
	h.ExecLine("select-lines")
	anchorLine, anchorCol, _, col, kind := h.SelectionRange()
	if kind != host.SelectLine || anchorLine != 1 || anchorCol != 1 || col != 2 {
		t.Errorf("SelectionRange() = %d,%d ..%d %v", anchorLine, anchorCol, col, kind)
	}

	h.ExecLine("select-off")
	if h.Buffer().Selection() != host.SelectNone {
		t.Errorf("selection = %v after select-off", h.Buffer().Selection())
	}
}

func TestYankPasteChars(t *testing.T) {
	h := New("abc\ndef")
	h.ExecLine("select")
	h.ExecLine("cursor-right")
	h.ExecLine("cursor-right")
	h.ExecLine("yank-selection")

	text, lines := h.Yanked()
	if text != "ab" || lines {
		t.Errorf("Yanked() = %q, %v, want ab, false", text, lines)
	}
	if h.Buffer().Selection() != host.SelectNone {
		t.Error("yank-selection kept the selection")
	}

	h.ExecLine("cursor-line-end")
	h.ExecLine("paste-yank-buffer")
	if got := h.Text(); got != "abcab\ndef" {
		t.Errorf("Text() = %q, want %q", got, "abcab\ndef")
	}
	if _, col := cursor(h); col != 6 {
		t.Errorf("cursor col = %d after paste, want 6", col)
	}
}

func TestYankKeepsSelection(t *testing.T) {
	h := New("abc")
	h.ExecLine("select")
	h.ExecLine("cursor-right")
	h.ExecLine("yank-selection 1")
	if h.Buffer().Selection() != host.SelectChar {
		t.Error("yank-selection 1 cleared the selection")
	}
}

func TestYankPasteLines(t *testing.T) {
	h := New("abc\ndef")
	h.ExecLine("select-lines")
	h.ExecLine("yank-selection")

	if text, lines := h.Yanked(); text != "abc" || !lines {
		t.Errorf("Yanked() = %q, %v, want abc, true", text, lines)
	}

	h.ExecLine("paste-yank-buffer")
	if got := h.Text(); got != "abc\nabc\ndef" {
		t.Errorf("Text() = %q", got)
	}
	if line, col := cursor(h); line != 2 || col != 1 {
		t.Errorf("cursor = %d,%d, want 2,1", line, col)
	}
}

func TestRectSelection(t *testing.T) {
	h := New("abcd\nefgh")
	h.Frame().SetCursor(1, 2)
	h.ExecLine("select-rect")
	h.ExecLine("cursor-down")
	h.ExecLine("cursor-right")
	h.ExecLine("cursor-right")

	h.ExecLine("yank-selection 1")
	if text, _ := h.Yanked(); text != "bc\nfg" {
		t.Errorf("Yanked() = %q, want %q", text, "bc\nfg")
	}

	h.ExecLine("delete-back")
	if got := h.Text(); got != "ad\neh" {
		t.Errorf("Text() = %q, want %q", got, "ad\neh")
	}
	if line, col := cursor(h); line != 1 || col != 2 {
		t.Errorf("cursor = %d,%d, want 1,2", line, col)
	}
}

func TestDeleteLines(t *testing.T) {
	h := New("a\nb\nc")
	h.Frame().SetCursor(2, 1)
	h.ExecLine("select-lines")
	h.ExecLine("cursor-down")
	h.ExecLine("delete-forward")

	if got := h.Text(); got != "a" {
		t.Errorf("Text() = %q, want a", got)
	}
	if line, _ := cursor(h); line != 1 {
		t.Errorf("cursor line = %d, want 1", line)
	}

	h.ExecLine("select-lines")
	h.ExecLine("delete-forward")
	if got := h.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
	if n := h.Buffer().LineCount(); n != 1 {
		t.Errorf("LineCount() = %d, want 1", n)
	}
}

func TestDeleteJoinsLines(t *testing.T) {
	h := New("ab\ncd")
	h.Frame().SetCursor(2, 1)
	h.ExecLine("delete-back")
	if got := h.Text(); got != "abcd" {
		t.Errorf("Text() = %q after delete-back, want abcd", got)
	}
	if line, col := cursor(h); line != 1 || col != 3 {
		t.Errorf("cursor = %d,%d, want 1,3", line, col)
	}

	h.SetText("ab\ncd")
	h.ExecLine("cursor-line-end")
	h.ExecLine("delete-forward")
	if got := h.Text(); got != "abcd" {
		t.Errorf("Text() = %q after delete-forward, want abcd", got)
	}
}

func TestDeleteAtEdges(t *testing.T) {
	h := New("ab")
	h.ExecLine("delete-back")
	h.ExecLine("cursor-line-end")
	h.ExecLine("delete-forward")

	if got := h.Text(); got != "ab" {
		t.Errorf("Text() = %q, want ab", got)
	}
	if n := h.Buffer().UndoRecords(); n != 0 {
		t.Errorf("UndoRecords() = %d for no-op deletes, want 0", n)
	}
}

func TestInsert(t *testing.T) {
	h := New("ad")
	h.Frame().SetCursor(1, 2)

	h.ExecLine("insert 98")
	h.ExecLine("insert 13")
	h.ExecLine("insert 9")
	h.ExecLine("insert 99")

	if got := h.Text(); got != "ab\n\tcd" {
		t.Errorf("Text() = %q, want %q", got, "ab\n\tcd")
	}
	if line, col := cursor(h); line != 2 || col != TabWidth+2 {
		t.Errorf("cursor = %d,%d, want 2,%d", line, col, TabWidth+2)
	}
	if n := h.Buffer().UndoRecords(); n != 4 {
		t.Errorf("UndoRecords() = %d, want 4", n)
	}
}

func TestInsertMultiByte(t *testing.T) {
	h := New("")
	h.BindKey(key.MByte, "insert", strconv.Itoa(int(key.MByte)))
	h.FeedRune('世')

	if got := h.Text(); got != "世" {
		t.Errorf("Text() = %q, want 世", got)
	}
	if _, col := cursor(h); col != 3 {
		t.Errorf("cursor col = %d, want 3", col)
	}
}

func TestInsertErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"insert", "expected 1 argument, but got 0"},
		{"insert 1 2", "expected 1 argument, but got 2"},
		{"insert x", "invalid key code 'x'"},
		{"insert 1", "cannot insert key 1"},
		{"insert " + strconv.Itoa(int(key.MByte)), "no multi-byte character to insert"},
	}

	for _, tt := range tests {
		h := New("")
		h.ExecLine(tt.line)
		if got := h.LastError(); got != tt.want {
			t.Errorf("%q: error = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestUndoRedo(t *testing.T) {
	h := New("abc")
	h.ExecLine("cursor-line-end")
	h.ExecLine("delete-back")
	h.ExecLine("delete-back")

	h.ExecLine("undo")
	if got := h.Text(); got != "ab" {
		t.Errorf("Text() = %q after undo, want ab", got)
	}
	h.ExecLine("undo")
	if got := h.Text(); got != "abc" {
		t.Errorf("Text() = %q after second undo, want abc", got)
	}
	h.ExecLine("undo")
	if got := h.Text(); got != "abc" {
		t.Errorf("Text() = %q after undo past the start, want abc", got)
	}

	h.ExecLine("redo")
	if got := h.Text(); got != "ab" {
		t.Errorf("Text() = %q after redo, want ab", got)
	}
	if len(h.Errors()) != 0 {
		t.Errorf("errors = %v", h.Errors())
	}
}

func TestMergeUndoRecords(t *testing.T) {
	h := New("")
	h.ExecLine("insert 97")
	h.ExecLine("insert 98")
	h.Buffer().MergeUndoRecords()

	if n := h.Buffer().UndoRecords(); n != 1 {
		t.Fatalf("UndoRecords() = %d, want 1", n)
	}
	h.ExecLine("undo")
	if got := h.Text(); got != "" {
		t.Errorf("Text() = %q after undo, want empty", got)
	}
}

func TestFindInBuffer(t *testing.T) {
	h := New("foo\nbar\nfoo bar")
	h.SetVar(VarSearchCursorMove, "yes")
	h.Frame().SetCursor(3, 1)

	h.ExecLine("find-in-buffer foo")
	if line, col := cursor(h); line != 1 || col != 1 {
		t.Errorf("cursor = %d,%d after wrapping search, want 1,1", line, col)
	}

	h.ExecLine("find-prev-in-buffer")
	if line, col := cursor(h); line != 3 || col != 1 {
		t.Errorf("cursor = %d,%d after find-prev, want 3,1", line, col)
	}

	h.SetVar(VarSearchPattern, "bar")
	h.ExecLine("find-in-buffer")
	if line, col := cursor(h); line != 3 || col != 5 {
		t.Errorf("cursor = %d,%d, want 3,5", line, col)
	}

	h.ExecLine("find-next-in-buffer")
	if line, col := cursor(h); line != 2 || col != 1 {
		t.Errorf("cursor = %d,%d after find-next, want 2,1", line, col)
	}
}

func TestFindWithoutCursorMove(t *testing.T) {
	h := New("a\nfoo")
	h.ExecLine("find-in-buffer foo")
	if line, _ := cursor(h); line != 1 {
		t.Errorf("cursor line = %d, want 1", line)
	}

	h.ExecLine("find-next-in-buffer")
	if line, _ := cursor(h); line != 2 {
		t.Errorf("cursor line = %d after find-next, want 2", line)
	}
}

func TestFindErrors(t *testing.T) {
	h := New("abc")
	h.ExecLine("find-next-in-buffer")
	if got := h.LastError(); got != "no search pattern" {
		t.Errorf("error = %q", got)
	}
	h.ExecLine("find-in-buffer")
	if got := h.LastError(); got != "no search pattern" {
		t.Errorf("error = %q", got)
	}
}

func TestReplaceCurrentSearch(t *testing.T) {
	h := New("foo\nbar baz")
	h.SetVar(VarSearchCursorMove, "yes")
	h.ExecLine("find-in-buffer bar")

	h.ExecLine("replace-current-search qux")
	if got := h.Text(); got != "foo\nqux baz" {
		t.Errorf("Text() = %q", got)
	}

	// Not on a match: nothing changes.
	h.SetVar(VarReplaceString, "zzz")
	h.ExecLine("replace-current-search")
	if got := h.Text(); got != "foo\nqux baz" {
		t.Errorf("Text() = %q after replace off a match", got)
	}
}

func TestCommandPrompt(t *testing.T) {
	h := New("a\nb")
	h.ExecLine("command-prompt")

	h.SetPrompt(func() (string, bool) { return "cursor-buffer-end", true })
	h.ExecLine("command-prompt")
	if line, _ := cursor(h); line != 2 {
		t.Errorf("cursor line = %d, want 2", line)
	}

	h.SetPrompt(func() (string, bool) { return "cursor-buffer-begin", false })
	h.ExecLine("command-prompt")
	if line, _ := cursor(h); line != 2 {
		t.Errorf("cursor line = %d after cancelled prompt, want 2", line)
	}
}

func TestUnknownCommand(t *testing.T) {
	h := New("")
	h.Exec("no-such-command", "x")
	if got := h.LastError(); got != "unknown command 'no-such-command'" {
		t.Errorf("error = %q", got)
	}
	if got := h.Trace(); !slices.Equal(got, []string{"no-such-command x"}) {
		t.Errorf("Trace() = %v", got)
	}
}

func TestFrameless(t *testing.T) {
	h := New("abc")
	h.SetFrameless(true)

	if h.ActiveFrame() != nil {
		t.Error("ActiveFrame() != nil while frameless")
	}
	for _, c := range []string{"cursor-right", "select", "insert 120", "delete-back", "paste-yank-buffer"} {
		h.ExecLine(c)
	}
	if got := h.Text(); got != "abc" {
		t.Errorf("Text() = %q, want abc", got)
	}
	if _, col := cursor(h); col != 1 {
		t.Errorf("cursor col = %d, want 1", col)
	}
	if len(h.Errors()) != 0 {
		t.Errorf("errors = %v", h.Errors())
	}
}

func TestVars(t *testing.T) {
	h := New("")
	h.SetVar("b", "2")
	h.SetVar("a", "1")
	if got := h.VarNames(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("VarNames() = %v", got)
	}
	h.UnsetVar("a")
	if _, ok := h.Var("a"); ok {
		t.Error("a still set after UnsetVar")
	}
}

func TestSetText(t *testing.T) {
	h := New("abc")
	h.ExecLine("delete-forward")
	h.ExecLine("select")
	h.Frame().SetCursor(1, 2)

	h.SetText("x\ny")

	if h.Buffer().UndoRecords() != 0 {
		t.Error("SetText kept undo records")
	}
	if h.Buffer().Selection() != host.SelectNone {
		t.Error("SetText kept the selection")
	}
	if line, col := cursor(h); line != 1 || col != 1 {
		t.Errorf("cursor = %d,%d, want 1,1", line, col)
	}
}

func TestSelected(t *testing.T) {
	h := New("abcd\nefgh")
	if h.Selected(1, 0) {
		t.Error("Selected(1, 0) with no selection")
	}

	h.Frame().SetCursor(1, 2)
	h.ExecLine("select")
	h.ExecLine("cursor-right")
	h.ExecLine("cursor-right")
	for idx, want := range []bool{false, true, true, false} {
		if got := h.Selected(1, idx); got != want {
			t.Errorf("char Selected(1, %d) = %v, want %v", idx, got, want)
		}
	}

	h.ExecLine("select-lines")
	if !h.Selected(1, 0) || h.Selected(2, 0) {
		t.Error("line selection does not cover exactly line 1")
	}

	h.ExecLine("select-rect")
	h.ExecLine("cursor-down")
	for idx, want := range []bool{false, true, true, false} {
		if got := h.Selected(2, idx); got != want {
			t.Errorf("rect Selected(2, %d) = %v, want %v", idx, got, want)
		}
	}
}
