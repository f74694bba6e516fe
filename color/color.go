// Package color is the small shared color value both the terminal grid and
// the syntax highlighter paint with, generalized from the teacher's
// grid.Color (default/indexed/RGB terminal color model) so syntax
// highlights and terminal cells use one representation.
package color

// Kind identifies which of Color's fields carries the value.
type Kind uint8

const (
	KindDefault Kind = iota
	KindIndexed
	KindRGB
)

// Color is a terminal-style color: the editor's default, an indexed palette
// entry (0-255), or 24-bit RGB.
type Color struct {
	Kind    Kind
	Index   uint8
	R, G, B uint8
}

// Default returns the editor/terminal's default color.
func Default() Color { return Color{Kind: KindDefault} }

// Indexed returns a palette color.
func Indexed(index uint8) Color { return Color{Kind: KindIndexed, Index: index} }

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color { return Color{Kind: KindRGB, R: r, G: g, B: b} }
