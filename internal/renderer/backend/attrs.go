package backend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidAttrs is returned for attribute strings that do not parse.
var ErrInvalidAttrs = errors.New("invalid attributes")

// cursorLineBlend is how far the cursor line background moves toward white.
const cursorLineBlend = 0.12

// ParseAttrs parses an attribute string such as "fg #ff8800 bg !4 bold".
//
// Colors are "#rgb" or "#rrggbb" hex, "!N" for palette entry N, a color
// name known to tcell, or "default". "normal" resets everything seen so
// far. An empty string yields the default style.
func ParseAttrs(s string) (tcell.Style, error) {
	style := tcell.StyleDefault
	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		switch tok := strings.ToLower(fields[i]); tok {
		case "fg", "bg":
			if i+1 >= len(fields) {
				return tcell.StyleDefault, fmt.Errorf("%w: %s without a color", ErrInvalidAttrs, tok)
			}
			i++
			c, err := ParseColor(fields[i])
			if err != nil {
				return tcell.StyleDefault, err
			}
			if tok == "fg" {
				style = style.Foreground(c)
			} else {
				style = style.Background(c)
			}
		case "bold":
			style = style.Bold(true)
		case "dim":
			style = style.Dim(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "reverse":
			style = style.Reverse(true)
		case "blink":
			style = style.Blink(true)
		case "strikethrough":
			style = style.StrikeThrough(true)
		case "normal", "none":
			style = tcell.StyleDefault
		default:
			return tcell.StyleDefault, fmt.Errorf("%w: unknown attribute %q", ErrInvalidAttrs, fields[i])
		}
	}
	return style, nil
}

// ParseColor parses one color of an attribute string.
func ParseColor(s string) (tcell.Color, error) {
	lower := strings.ToLower(s)
	switch {
	case lower == "default":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(lower, "!"):
		n, err := strconv.Atoi(lower[1:])
		if err != nil || n < 0 || n > 255 {
			return tcell.ColorDefault, fmt.Errorf("%w: bad palette color %q", ErrInvalidAttrs, s)
		}
		return tcell.PaletteColor(n), nil
	case strings.HasPrefix(lower, "#"):
		c, err := colorful.Hex(lower)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("%w: bad hex color %q", ErrInvalidAttrs, s)
		}
		return toTcell(c), nil
	}
	if c, ok := tcell.ColorNames[lower]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("%w: unknown color %q", ErrInvalidAttrs, s)
}

// CursorLineColor returns the background used for the cursor line: bg
// lightened a little, or a dark gray when bg has no RGB value.
func CursorLineColor(bg tcell.Color) tcell.Color {
	r, g, b := bg.RGB()
	if r < 0 {
		r, g, b = 0x1c, 0x1c, 0x1c
	}
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return toTcell(base.BlendLuv(white, cursorLineBlend).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
