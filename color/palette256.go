package color

import "golang.org/x/image/colornames"

// RGB8 is a concrete, resolved 24-bit color, as opposed to Color which may
// still be an indexed or "default" placeholder.
type RGB8 struct {
	R, G, B uint8
}

// ansiBaseNames are the CSS3 color keywords that happen to coincide with
// the classic 16-color ANSI terminal palette (indices 0-15), in ANSI
// index order. golang.org/x/image/colornames ships exactly this table
// (it is generated from the same CSS3 keyword list), so the base of the
// palette is resolved by name instead of hand-typed hex triples.
var ansiBaseNames = [16]string{
	"black", "maroon", "green", "olive",
	"navy", "purple", "teal", "silver",
	"gray", "red", "lime", "yellow",
	"blue", "fuchsia", "aqua", "white",
}

// cubeSteps is the 6-step intensity ramp xterm uses for color cube axes
// (palette indices 16-231).
var cubeSteps = [6]uint8{0, 95, 135, 175, 215, 255}

// Palette256 is the standard xterm 256-color table: 16 named base colors,
// a 6x6x6 RGB cube, and a 24-step grayscale ramp.
type Palette256 [256]RGB8

// NewPalette256 builds the standard xterm 256-color table.
func NewPalette256() Palette256 {
	var p Palette256
	for i, name := range ansiBaseNames {
		c := colornames.Map[name]
		p[i] = RGB8{c.R, c.G, c.B}
	}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx] = RGB8{cubeSteps[r], cubeSteps[g], cubeSteps[b]}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		level := uint8(8 + i*10)
		p[idx] = RGB8{level, level, level}
		idx++
	}
	return p
}

// NamedRGB resolves a CSS/X11 color keyword (e.g. "steelblue") to a Color,
// via golang.org/x/image/colornames. Lookups are case-sensitive lowercase,
// matching the package's own key casing.
func NamedRGB(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return RGB(c.R, c.G, c.B), true
}

// Resolve turns a Color into a concrete RGB8 against this palette and a
// caller-supplied default-color fallback (the editor/terminal's current
// foreground or background).
func (p Palette256) Resolve(c Color, fallback RGB8) RGB8 {
	switch c.Kind {
	case KindIndexed:
		return p[c.Index]
	case KindRGB:
		return RGB8{c.R, c.G, c.B}
	default:
		return fallback
	}
}
