package memhost

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/xul/internal/host"
	"github.com/dshills/xul/internal/input/key"
)

// TabWidth is the display width of a tab glyph.
const TabWidth = 4

// Line is one buffer line laid out as glyphs.
type Line struct {
	glyphs []host.Glyph
}

// NewLine lays out s. s must not contain a newline.
func NewLine(s string) *Line {
	return &Line{glyphs: layout(s)}
}

// layout splits s into grapheme clusters.
func layout(s string) []host.Glyph {
	glyphs := make([]host.Glyph, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		glyphs = append(glyphs, newGlyph(gr.Str()))
	}
	return glyphs
}

func newGlyph(cluster string) host.Glyph {
	g := host.Glyph{Text: cluster, Code: key.MByte}
	if len(cluster) == 1 && cluster[0] < 0x80 {
		g.Code = key.Code(cluster[0])
	}

	switch {
	case cluster == "\t":
		g.Width = TabWidth
	default:
		g.Width = runewidth.StringWidth(cluster)
	}
	if g.Width < 1 {
		g.Width = 1
	}
	return g
}

// String returns the line text.
func (l *Line) String() string {
	var sb strings.Builder
	for _, g := range l.glyphs {
		sb.WriteString(g.Text)
	}
	return sb.String()
}

// Len returns the number of glyphs.
func (l *Line) Len() int {
	return len(l.glyphs)
}

// VisualWidth returns the display width of the line.
func (l *Line) VisualWidth() int {
	w := 0
	for _, g := range l.glyphs {
		w += g.Width
	}
	return w
}

// Glyph returns the glyph at idx.
func (l *Line) Glyph(idx int) (host.Glyph, bool) {
	if idx < 0 || idx >= len(l.glyphs) {
		return host.Glyph{}, false
	}
	return l.glyphs[idx], true
}

// GlyphAt returns the glyph covering col.
func (l *Line) GlyphAt(col int) (host.Glyph, bool) {
	if col < 1 {
		return host.Glyph{}, false
	}
	return l.Glyph(l.ColToIdx(col))
}

// ColToIdx returns the index of the glyph covering col. Columns past the
// end map to Len.
func (l *Line) ColToIdx(col int) int {
	c := 1
	for i, g := range l.glyphs {
		if col < c+g.Width {
			return i
		}
		c += g.Width
	}
	return len(l.glyphs)
}

// IdxToCol returns the column glyph idx starts at. Indexes past the end
// map to VisualWidth+1.
func (l *Line) IdxToCol(idx int) int {
	col := 1
	for i := 0; i < idx && i < len(l.glyphs); i++ {
		col += l.glyphs[i].Width
	}
	return col
}

// slice returns the text of glyphs [from, to).
func (l *Line) slice(from, to int) string {
	from = clamp(from, 0, len(l.glyphs))
	to = clamp(to, from, len(l.glyphs))
	var sb strings.Builder
	for _, g := range l.glyphs[from:to] {
		sb.WriteString(g.Text)
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
