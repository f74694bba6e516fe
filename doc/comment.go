// Comment and indent manipulation, spec §4.5.
package doc

import (
	"time"

	"github.com/javanhut/ravencore/position"
)

// IndentWidth is either a literal tab or a fixed number of spaces.
type IndentWidth struct {
	Tab    bool
	Spaces int
}

// TabIndent returns a one-character-tab IndentWidth.
func TabIndent() IndentWidth { return IndentWidth{Tab: true} }

// SpacesIndent returns an n-space IndentWidth.
func SpacesIndent(n int) IndentWidth { return IndentWidth{Spaces: n} }

// Text renders the indent unit as literal characters.
func (w IndentWidth) Text() string {
	if w.Tab {
		return "\t"
	}
	out := make([]byte, w.Spaces)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

// linesTouched returns the line indices a selection spans, excluding the
// final line when the selection ends exactly at column 0 of it (the only
// part of that line the selection covers is its leading newline, per
// spec's trim_lines_without_selected_chars rule).
func (d *Doc) linesTouched(sel position.Selection) []int64 {
	startY, endY := sel.Start.Y, sel.End.Y
	if endY > startY && sel.End.X == 0 {
		endY--
	}
	ys := make([]int64, 0, endY-startY+1)
	for y := startY; y <= endY; y++ {
		ys = append(ys, y)
	}
	return ys
}

func (d *Doc) firstNonWhitespaceColumn(y int64) int64 {
	line := d.lines[y]
	n := int64(line.Len())
	for x := int64(0); x < n; x++ {
		g := line.Grapheme(x)
		if g != " " && g != "\t" {
			return x
		}
	}
	return -1
}

func (d *Doc) lineHasCommentAt(y, col int64, prefix string) bool {
	pg := splitGraphemes(prefix)
	line := d.lines[y]
	if col+int64(len(pg)) > int64(line.Len()) {
		return false
	}
	for i, g := range pg {
		if line.Grapheme(col+int64(i)) != g {
			return false
		}
	}
	return true
}

// ToggleComment comments every non-blank touched line with "<prefix> " if
// any touched line is not already commented, otherwise uncomments all of
// them. Returns true if it commented, false if it uncommented or there was
// nothing to do.
func (d *Doc) ToggleComment(sel position.Selection, prefix string) bool {
	lines := d.linesTouched(sel)

	allCommented := true
	any := false
	for _, y := range lines {
		col := d.firstNonWhitespaceColumn(y)
		if col < 0 {
			continue
		}
		any = true
		if !d.lineHasCommentAt(y, col, prefix) {
			allCommented = false
		}
	}
	if !any {
		return false
	}

	d.redoHist.Clear()
	now := d.now()
	d.snapshotCursors(d.undoHist, now)

	if allCommented {
		for _, y := range lines {
			d.uncommentLineAt(y, prefix, now)
		}
		return false
	}
	for _, y := range lines {
		d.commentLineAt(y, prefix, now)
	}
	return true
}

func (d *Doc) commentLineAt(y int64, prefix string, now time.Time) {
	col := d.firstNonWhitespaceColumn(y)
	if col < 0 {
		return
	}
	d.insertPrimitive(d.undoHist, now, position.Position{X: col, Y: y}, prefix+" ")
}

func (d *Doc) uncommentLineAt(y int64, prefix string, now time.Time) {
	col := d.firstNonWhitespaceColumn(y)
	if col < 0 || !d.lineHasCommentAt(y, col, prefix) {
		return
	}
	pg := splitGraphemes(prefix)
	end := col + int64(len(pg))
	if end < int64(d.lines[y].Len()) && d.lines[y].Grapheme(end) == " " {
		end++
	}
	d.deletePrimitive(d.undoHist, now, position.Position{X: col, Y: y}, position.Position{X: end, Y: y})
}

// Indent inserts width at column 0 of every line touched by sel.
func (d *Doc) Indent(sel position.Selection, width IndentWidth) {
	lines := d.linesTouched(sel)
	d.redoHist.Clear()
	now := d.now()
	d.snapshotCursors(d.undoHist, now)
	for _, y := range lines {
		d.insertPrimitive(d.undoHist, now, position.Position{X: 0, Y: y}, width.Text())
	}
}

// Unindent removes one leading tab, or up to width.Spaces leading spaces,
// from every line touched by sel.
func (d *Doc) Unindent(sel position.Selection, width IndentWidth) {
	lines := d.linesTouched(sel)
	d.redoHist.Clear()
	now := d.now()
	d.snapshotCursors(d.undoHist, now)
	for _, y := range lines {
		line := d.lines[y]
		if line.Len() == 0 {
			continue
		}
		if line.Grapheme(0) == "\t" {
			d.deletePrimitive(d.undoHist, now, position.Position{X: 0, Y: y}, position.Position{X: 1, Y: y})
			continue
		}
		n := int64(width.Spaces)
		count := int64(0)
		for count < n && count < int64(line.Len()) && line.Grapheme(count) == " " {
			count++
		}
		if count > 0 {
			d.deletePrimitive(d.undoHist, now, position.Position{X: 0, Y: y}, position.Position{X: count, Y: y})
		}
	}
}
