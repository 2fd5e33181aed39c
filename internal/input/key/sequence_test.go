package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSequenceEquals(t *testing.T) {
	tests := []struct {
		a, b Sequence
		want bool
	}{
		{Sequence{'g', 'g'}, Sequence{'g', 'g'}, true},
		{Sequence{'g'}, Sequence{'g', 'g'}, false},
		{Sequence{'g', 'x'}, Sequence{'g', 'g'}, false},
		{Sequence{}, nil, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%v.Equals(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSequenceHasPrefix(t *testing.T) {
	seq := Sequence{Esc, ArrowUp}
	if !seq.HasPrefix(Sequence{Esc}) {
		t.Error("HasPrefix(esc) = false, want true")
	}
	if seq.HasPrefix(Sequence{ArrowUp}) {
		t.Error("HasPrefix(up) = true, want false")
	}
	if seq.HasPrefix(Sequence{Esc, ArrowUp, 'a'}) {
		t.Error("HasPrefix(longer) = true, want false")
	}
}

func TestSequenceClone(t *testing.T) {
	seq := Sequence{'a', 'b'}
	clone := seq.Clone()
	clone[0] = 'z'
	if seq[0] != 'a' {
		t.Error("Clone shares storage with the original")
	}
	if Sequence(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestSequenceString(t *testing.T) {
	seq := MustParseSequence("ctrl-x   g spc")
	if got := seq.String(); got != "ctrl-x g spc" {
		t.Errorf("String() = %q, want %q", got, "ctrl-x g spc")
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name      string
		ev        *tcell.EventKey
		want      []Code
		wantMbyte rune
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), []Code{'x'}, 0},
		{"wide rune", tcell.NewEventKey(tcell.KeyRune, '世', tcell.ModNone), []Code{MByte}, '世'},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), []Code{Esc, 'f'}, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []Code{Esc}, 0},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), []Code{CtrlC}, 0},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []Code{Enter}, 0},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), []Code{Backspace}, 0},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), []Code{ArrowLeft}, 0},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), []Code{PageDown}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mbyte := FromTcell(tt.ev)
			if !Sequence(got).Equals(tt.want) {
				t.Errorf("FromTcell() = %v, want %v", got, tt.want)
			}
			if mbyte != tt.wantMbyte {
				t.Errorf("FromTcell() mbyte = %q, want %q", mbyte, tt.wantMbyte)
			}
		})
	}
}
