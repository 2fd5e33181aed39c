package memhost

import (
	"strings"
	"unicode"

	"github.com/dshills/xul/internal/input/key"
)

// Character classes for word motions.
const (
	classSpace = iota
	classWord
	classPunct
)

// classAt returns the character class at p. Line ends count as space.
func (b *Buffer) classAt(p Pos) int {
	g, ok := b.Line(p.Line).Glyph(p.Idx)
	if !ok {
		return classSpace
	}
	if g.Code == key.MByte {
		return classWord
	}
	r := rune(g.Code)
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// next returns the position after p. A line end is a position of its own.
func (b *Buffer) next(p Pos) (Pos, bool) {
	if p.Idx < b.Line(p.Line).Len() {
		return Pos{Line: p.Line, Idx: p.Idx + 1}, true
	}
	if p.Line < b.LineCount() {
		return Pos{Line: p.Line + 1}, true
	}
	return p, false
}

// prev returns the position before p.
func (b *Buffer) prev(p Pos) (Pos, bool) {
	if p.Idx > 0 {
		return Pos{Line: p.Line, Idx: p.Idx - 1}, true
	}
	if p.Line > 1 {
		return Pos{Line: p.Line - 1, Idx: b.Line(p.Line - 1).Len()}, true
	}
	return p, false
}

// nextWord returns the start of the word after p. Empty lines stop the
// motion.
func (b *Buffer) nextWord(p Pos) Pos {
	start := p.Line
	ok := true

	if cls := b.classAt(p); cls != classSpace {
		for ok && b.classAt(p) == cls {
			p, ok = b.next(p)
		}
	}
	for ok && b.classAt(p) == classSpace {
		if p.Line != start && b.Line(p.Line).Len() == 0 {
			break
		}
		p, ok = b.next(p)
	}
	return p
}

// prevWord returns the start of the word before p.
func (b *Buffer) prevWord(p Pos) Pos {
	q, ok := b.prev(p)
	if !ok {
		return p
	}
	for b.classAt(q) == classSpace {
		r, ok := b.prev(q)
		if !ok {
			return q
		}
		q = r
	}

	cls := b.classAt(q)
	for {
		r, ok := b.prev(q)
		if !ok || b.classAt(r) != cls {
			return q
		}
		q = r
	}
}

func (b *Buffer) blank(n int) bool {
	return strings.TrimSpace(b.Line(n).String()) == ""
}

// nextParagraph returns the first blank line below the paragraph at
// line, or the last line. A blank run at line is skipped first.
func (b *Buffer) nextParagraph(line int) int {
	n, count := line, b.LineCount()
	for n < count && b.blank(n) {
		n++
	}
	for n < count && !b.blank(n) {
		n++
	}
	return n
}

// prevParagraph returns the first blank line above the paragraph at line,
// or line 1.
func (b *Buffer) prevParagraph(line int) int {
	n := line
	for n > 1 && b.blank(n) {
		n--
	}
	for n > 1 && !b.blank(n) {
		n--
	}
	return n
}

// byteOffset returns the byte offset of glyph idx in line n.
func (b *Buffer) byteOffset(p Pos) int {
	return len(b.Line(p.Line).slice(0, p.Idx))
}

// byteToIdx returns the glyph starting at or after byte offset off.
func byteToIdx(l *Line, off int) int {
	n := 0
	for i, g := range l.glyphs {
		if n >= off {
			return i
		}
		n += len(g.Text)
	}
	return len(l.glyphs)
}

// find searches for pat starting after p, wrapping around the buffer.
func (b *Buffer) find(p Pos, pat string, forward bool) (Pos, bool) {
	if pat == "" {
		return p, false
	}
	count := b.LineCount()
	off := b.byteOffset(p)

	for i := 0; i <= count; i++ {
		var n, j int
		if forward {
			n = (p.Line-1+i)%count + 1
			s := b.Line(n).String()
			if i == 0 {
				from := min(off+1, len(s))
				if j = strings.Index(s[from:], pat); j >= 0 {
					j += from
				}
			} else {
				j = strings.Index(s, pat)
			}
		} else {
			n = ((p.Line-1-i)%count+count)%count + 1
			s := b.Line(n).String()
			if i == 0 {
				end := min(off+len(pat)-1, len(s))
				j = strings.LastIndex(s[:end], pat)
			} else {
				j = strings.LastIndex(s, pat)
			}
		}
		if j >= 0 {
			return Pos{Line: n, Idx: byteToIdx(b.Line(n), j)}, true
		}
	}
	return p, false
}
