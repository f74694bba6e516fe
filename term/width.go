package term

import (
	"unicode"

	"golang.org/x/text/width"
)

// CellWidth returns a terminal cell's display width for r: 0 for
// zero-width marks, 1 for normal-width runes, 2 for wide (CJK/emoji)
// runes that occupy two grid columns.
//
// Grounded directly on the teacher's grid.RuneWidth (src/grid/width.go),
// which already reaches for golang.org/x/text/width's East Asian Width
// lookup for this exact purpose.
func CellWidth(r rune) int {
	if r == '\x00' {
		return 0
	}
	if !unicode.IsPrint(r) {
		return 0
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
