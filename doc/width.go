package doc

import "github.com/mattn/go-runewidth"

// runeDisplayWidth returns the terminal column width of a single-rune
// grapheme, used by VisualColumn/ColumnToX for desired-visual-x tracking
// (spec §3 Cursor.desired_visual_x). Multi-rune grapheme clusters (emoji
// with modifiers, combining sequences) are rare in source code and are
// treated as the width of their lead rune, matching the teacher's grid
// cells which are each exactly one rune wide or one wide-char lead cell.
func runeDisplayWidth(g string) int {
	r := []rune(g)
	if len(r) == 0 {
		return 0
	}
	w := runewidth.RuneWidth(r[0])
	if w <= 0 {
		return 1
	}
	return w
}
