package key

import (
	"testing"
)

func TestCtrl(t *testing.T) {
	tests := []struct {
		in   rune
		want Code
	}{
		{'a', 1},
		{'c', CtrlC},
		{'C', CtrlC},
		{'h', CtrlH},
		{'r', CtrlR},
		{'v', CtrlV},
		{'z', 26},
	}

	for _, tt := range tests {
		if got := Ctrl(tt.in); got != tt.want {
			t.Errorf("Ctrl(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		code    Code
		real    bool
		print   bool
		control bool
		special bool
	}{
		{'a', true, true, false, false},
		{' ', true, true, false, false},
		{Esc, true, false, true, false},
		{Backspace, true, false, true, false},
		{ArrowLeft, true, false, false, true},
		{MByte, true, false, false, true},
		{RealMax, false, false, false, false},
		{VirtualBase + 3, false, false, false, false},
		{Null, false, false, true, false},
	}

	for _, tt := range tests {
		if got := tt.code.IsReal(); got != tt.real {
			t.Errorf("%v.IsReal() = %v, want %v", tt.code, got, tt.real)
		}
		if got := tt.code.IsPrint(); got != tt.print {
			t.Errorf("%v.IsPrint() = %v, want %v", tt.code, got, tt.print)
		}
		if got := tt.code.IsControl(); got != tt.control {
			t.Errorf("%v.IsControl() = %v, want %v", tt.code, got, tt.control)
		}
		if got := tt.code.IsSpecial(); got != tt.special {
			t.Errorf("%v.IsSpecial() = %v, want %v", tt.code, got, tt.special)
		}
	}
}

func TestLower(t *testing.T) {
	tests := []struct {
		in, want Code
	}{
		{'H', 'h'},
		{'h', 'h'},
		{'{', '{'},
		{'$', '$'},
		{ArrowDown, ArrowDown},
	}

	for _, tt := range tests {
		if got := tt.in.Lower(); got != tt.want {
			t.Errorf("%v.Lower() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{'a', "a"},
		{'G', "G"},
		{' ', "spc"},
		{Esc, "esc"},
		{Enter, "enter"},
		{Backspace, "bsp"},
		{CtrlC, "ctrl-c"},
		{ArrowUp, "up"},
		{PageDown, "pagedown"},
		{F12, "f12"},
		{VirtualBase + 2, "virt-2"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, c := range Real() {
		if c == Null {
			continue
		}
		s := c.String()
		// ASCII 27..31 other than Esc have no key-string name.
		if c > 26 && c < ' ' && c != Esc {
			continue
		}
		codes, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", s, err)
			continue
		}
		if len(codes) != 1 || codes[0] != c {
			t.Errorf("Parse(%q) = %v, want [%d]", s, codes, int(c))
		}
	}
}

func TestReal(t *testing.T) {
	codes := Real()
	if codes[0] != 1 {
		t.Errorf("Real()[0] = %d, want 1", codes[0])
	}
	if codes[len(codes)-1] != MByte {
		t.Errorf("last real code = %v, want mbyte", codes[len(codes)-1])
	}
	for _, c := range codes {
		if !c.IsReal() {
			t.Errorf("Real() contains %d which is not real", int(c))
		}
	}
}
