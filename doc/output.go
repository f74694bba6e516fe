package doc

import "github.com/javanhut/ravencore/linepool"

// WriteCell replaces the grapheme at (y, x) with g, growing the document
// with blank lines and the target line with spaces as needed to reach
// (y, x). Unlike Insert/Delete this never touches undo/redo history or
// shifts cursors: a KindOutput document is a terminal grid, not an edited
// buffer, and journaling every PTY byte would thrash the undo stack for no
// benefit (spec §4.10's "writing a cell replaces that cell's Doc grapheme
// and attribute pair").
func (d *Doc) WriteCell(y, x int64, g string) {
	for int64(len(d.lines)) <= y {
		d.lines = append(d.lines, d.pool.Get())
	}
	line := d.lines[y]
	for int64(line.Len()) < x {
		line.InsertAt(int64(line.Len()), []string{" "})
	}
	if int64(line.Len()) == x {
		line.InsertAt(x, []string{g})
	} else {
		line.DeleteRange(x, x+1)
		line.InsertAt(x, []string{g})
	}
	d.version++
	d.saved = false
	d.markDirty(y)
}

// AppendBlankLine appends one empty line at the end of the document: the
// terminal grid's scroll-up promotes its displaced top line to scrollback
// by growing the document this way rather than discarding it.
func (d *Doc) AppendBlankLine() {
	d.lines = append(d.lines, d.pool.Get())
	d.version++
	d.saved = false
}

// DropTopLines removes the first n lines, returning their storage to the
// pool. Used both to cap terminal scrollback and to discard a displaced
// top line in the alternate buffer, which never becomes scrollback.
func (d *Doc) DropTopLines(n int64) {
	if n <= 0 {
		return
	}
	if n > int64(len(d.lines)) {
		n = int64(len(d.lines))
	}
	for i := int64(0); i < n; i++ {
		d.pool.Put(d.lines[i])
	}
	d.lines = append([]*linepool.Line{}, d.lines[n:]...)
	if len(d.lines) == 0 {
		d.lines = []*linepool.Line{d.pool.Get()}
	}
	d.version++
	d.saved = false
}

// ClearLineFrom blanks columns [x, width) on line y to spaces, padding the
// line first if it was shorter than x.
func (d *Doc) ClearLineFrom(y, x, width int64) {
	for int64(len(d.lines)) <= y {
		d.lines = append(d.lines, d.pool.Get())
	}
	line := d.lines[y]
	if int64(line.Len()) > x {
		line.DeleteRange(x, int64(line.Len()))
	}
	for int64(line.Len()) < width {
		line.InsertAt(int64(line.Len()), []string{" "})
	}
	d.version++
	d.saved = false
	d.markDirty(y)
}
