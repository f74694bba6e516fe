// Package term implements the terminal emulator core from spec §4.10: a
// character grid whose content lives in a doc.Doc (so selection, copy, and
// rendering behave like any other document), an escape-sequence parser,
// and an Emulator tying the grid and parser to a byte stream (the PTY
// side, a pty.Session, is connected by the workspace package).
//
// Grounded on the teacher's src/grid/grid.go (Cell/Color/Grid) and
// src/parser/parser.go (the CSI/SGR scanning state machine), generalized
// so the grid's text lives in a doc.Doc per spec §4.10 instead of a bare
// []Cell slice.
package term

import (
	"github.com/javanhut/ravencore/color"
	"github.com/javanhut/ravencore/doc"
	"github.com/javanhut/ravencore/linepool"
)

const defaultMaxScrollback = 100

// CellFlags are the SGR text attributes a cell can carry, independent of
// its foreground/background color.
type CellFlags uint8

const (
	FlagBold CellFlags = 1 << iota
	FlagDim
	FlagItalic
	FlagUnderline
	FlagInverse
	FlagHidden
	FlagStrikethrough
)

// CellAttr is the per-cell attribute pair the grid keeps in a grid
// parallel to the Doc's text, per spec §4.10 ("a parallel 2-D array of
// color pairs provides the per-cell attributes").
type CellAttr struct {
	Fg    color.Color
	Bg    color.Color
	Flags CellFlags
	Width uint8 // 1 = normal, 2 = wide-lead, 0 = continuation of a wide cell to its left
}

// Buffer is one of the terminal's two screens (normal or alternate): its
// own Doc, attribute grid, and cursor.
type Buffer struct {
	Content        *doc.Doc
	Attrs          [][]CellAttr // Attrs[row][col], row 0 is the current top visible row
	CursorX        int64
	CursorY        int64
	MaintainCursor bool
	scrollback     bool // true: scroll-up promotes the displaced line into Content; false (alt buffer): discarded
}

func newBuffer(w, h int, scrollback bool) *Buffer {
	d := doc.New(doc.KindOutput, linepool.New())
	for i := 1; i < h; i++ {
		d.AppendBlankLine()
	}
	attrs := make([][]CellAttr, h)
	for y := range attrs {
		attrs[y] = newAttrRow(w)
	}
	return &Buffer{Content: d, Attrs: attrs, scrollback: scrollback}
}

func newAttrRow(w int) []CellAttr {
	row := make([]CellAttr, w)
	for i := range row {
		row[i] = CellAttr{Fg: color.Default(), Bg: color.Default(), Width: 1}
	}
	return row
}

// Grid is the terminal's two-buffer character grid plus scroll region and
// color-modifier state.
type Grid struct {
	W, H                     int
	normal, alt              *Buffer
	active                   *Buffer
	scrollTop, scrollBottom  int // 0-based, inclusive, viewport-relative
	colorsBright             bool
	colorsSwapped            bool
	maxScrollback            int
}

// NewGrid builds a W×H grid with both buffers blank and the normal buffer
// active.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W: w, H: h,
		normal:        newBuffer(w, h, true),
		alt:           newBuffer(w, h, false),
		scrollTop:     0,
		scrollBottom:  h - 1,
		maxScrollback: defaultMaxScrollback,
	}
	g.active = g.normal
	return g
}

// InAltBuffer reports whether the alternate buffer is currently active.
func (g *Grid) InAltBuffer() bool { return g.active == g.alt }

// EnterAltBuffer swaps the active buffer to the alternate screen,
// preserving the normal buffer's state and cursor, per the spec's
// alternate-buffer glossary entry. The swap is atomic: a single pointer
// reassignment, never a field-by-field copy.
func (g *Grid) EnterAltBuffer() {
	g.active = g.alt
}

// LeaveAltBuffer swaps back to the normal buffer.
func (g *Grid) LeaveAltBuffer() {
	g.active = g.normal
}

// Cursor returns the active buffer's cursor position.
func (g *Grid) Cursor() (x, y int64) {
	return g.active.CursorX, g.active.CursorY
}

// SetColorsBright sets whether subsequent writes map the active foreground
// to its bright indexed variant.
func (g *Grid) SetColorsBright(on bool) { g.colorsBright = on }

// SetColorsSwapped sets whether subsequent writes reverse (fg, bg), without
// mutating the logical colors the caller passes to WriteGrapheme.
func (g *Grid) SetColorsSwapped(on bool) { g.colorsSwapped = on }

func (g *Grid) effectiveAttr(fg, bg color.Color, flags CellFlags) CellAttr {
	if g.colorsBright {
		fg = brighten(fg)
	}
	if g.colorsSwapped {
		fg, bg = bg, fg
	}
	return CellAttr{Fg: fg, Bg: bg, Flags: flags, Width: 1}
}

func brighten(c color.Color) color.Color {
	if c.Kind != color.KindIndexed || c.Index > 7 {
		return c
	}
	return color.Indexed(c.Index + 8)
}

func (g *Grid) clampX(x int64) int64 {
	if x < 0 {
		return 0
	}
	if x > int64(g.W-1) {
		return int64(g.W - 1)
	}
	return x
}

func (g *Grid) clampY(y int64) int64 {
	if y < 0 {
		return 0
	}
	if y > int64(g.H-1) {
		return int64(g.H - 1)
	}
	return y
}

// SetCursor moves the cursor, clamping to [0,W-1]x[0,H-1].
func (g *Grid) SetCursor(x, y int64) {
	g.active.CursorX = g.clampX(x)
	g.active.CursorY = g.clampY(y)
}

// docRow returns the absolute Doc line backing viewport row y.
func (b *Buffer) docRow(y int64) int64 {
	return int64(b.Content.LineCount()) - int64(len(b.Attrs)) + y
}

// WriteGrapheme writes g at the cursor with the given logical colors and
// flags, advancing the cursor and wrapping to the next line first if the
// cursor sits at column W (spec §4.10's wrap contract). It does not
// scroll; callers handle scrolling via Newline.
func (g *Grid) WriteGrapheme(ch string, r rune, fg, bg color.Color, flags CellFlags) {
	if g.active.CursorX >= int64(g.W) {
		g.active.CursorX = 0
		g.active.CursorY++
	}
	x, y := g.active.CursorX, g.active.CursorY
	attr := g.effectiveAttr(fg, bg, flags)
	width := CellWidth(r)
	if width <= 0 {
		width = 1
	}
	attr.Width = uint8(width)

	g.active.Content.WriteCell(g.active.docRow(y), x, ch)
	g.active.Attrs[y][x] = attr
	if width == 2 && x+1 < int64(g.W) {
		g.active.Content.WriteCell(g.active.docRow(y), x+1, "")
		g.active.Attrs[y][x+1] = CellAttr{Fg: attr.Fg, Bg: attr.Bg, Flags: flags, Width: 0}
		g.active.CursorX = x + 2
	} else {
		g.active.CursorX = x + 1
	}
}

// Newline moves the cursor to the start of the next line, scrolling the
// active buffer's scroll region if the cursor was already on its last
// row.
func (g *Grid) Newline() {
	if int(g.active.CursorY) == g.scrollBottom {
		g.ScrollUp(1)
	} else {
		g.active.CursorY++
	}
	g.active.CursorX = 0
}

// ScrollUp shifts the scroll region up by n lines, per spec §4.10: on the
// normal buffer, if the region starts at row 0 the displaced top line is
// promoted to scrollback (the Doc grows and is capped at
// H+MAX_SCROLLBACK_LINES); otherwise, and always on the alt buffer, it is
// discarded. A blank line is inserted at the region's bottom.
func (g *Grid) ScrollUp(n int) {
	b := g.active
	for i := 0; i < n; i++ {
		if b.scrollback && g.scrollTop == 0 {
			// The viewport is always "the last H lines" of Content, so
			// appending one blank line at the end shifts the whole window
			// up by one on its own: row 0's old content falls above the
			// window and becomes scrollback.
			b.Content.AppendBlankLine()
			b.Attrs = append(b.Attrs[1:], newAttrRow(g.W))
			capLines := g.H + g.maxScrollback
			if b.Content.LineCount() > capLines {
				b.Content.DropTopLines(int64(b.Content.LineCount() - capLines))
			}
		} else {
			shiftDocRowsUp(b, g, g.scrollTop, g.scrollBottom)
			copy(b.Attrs[g.scrollTop:g.scrollBottom], b.Attrs[g.scrollTop+1:g.scrollBottom+1])
			b.Attrs[g.scrollBottom] = newAttrRow(g.W)
		}
	}
}

// shiftDocRowsUp copies the text content of rows [top+1, bottom] up by one
// row within the scroll region and blanks the vacated bottom row.
func shiftDocRowsUp(b *Buffer, g *Grid, top, bottom int) {
	for y := top; y < bottom; y++ {
		src := b.Content.LineGraphemes(b.docRow(int64(y + 1)))
		for x := 0; x < g.W; x++ {
			ch := " "
			if x < len(src) {
				ch = src[x]
			}
			b.Content.WriteCell(b.docRow(int64(y)), int64(x), ch)
		}
	}
	b.Content.ClearLineFrom(b.docRow(int64(bottom)), 0, int64(g.W))
}

// ScrollDown mirrors ScrollUp without ever promoting to scrollback.
func (g *Grid) ScrollDown(n int) {
	b := g.active
	for i := 0; i < n; i++ {
		for y := g.scrollBottom; y > g.scrollTop; y-- {
			src := b.Content.LineGraphemes(b.docRow(int64(y - 1)))
			for x := 0; x < g.W; x++ {
				ch := " "
				if x < len(src) {
					ch = src[x]
				}
				b.Content.WriteCell(b.docRow(int64(y)), int64(x), ch)
			}
			b.Attrs[y] = append([]CellAttr{}, b.Attrs[y-1]...)
		}
		b.Content.ClearLineFrom(b.docRow(int64(g.scrollTop)), 0, int64(g.W))
		b.Attrs[g.scrollTop] = newAttrRow(g.W)
	}
}

// SetScrollRegion sets the scroll region to [top, bottom], 0-based
// inclusive.
func (g *Grid) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > g.H-1 {
		bottom = g.H - 1
	}
	if top >= bottom {
		top, bottom = 0, g.H-1
	}
	g.scrollTop, g.scrollBottom = top, bottom
}

// ClearLine erases columns [from, to) on the cursor's row.
func (g *Grid) ClearLine(from, to int64) {
	b := g.active
	row := b.docRow(b.CursorY)
	for x := from; x < to; x++ {
		b.Content.WriteCell(row, x, " ")
		b.Attrs[b.CursorY][x] = CellAttr{Fg: color.Default(), Bg: color.Default(), Width: 1}
	}
}

// Resize changes the grid's dimensions. Per spec §4.10, the scroll region
// resets to [0, H-1] and both buffers' attribute grids resize by
// truncation/extension, preserving existing content.
func (g *Grid) Resize(w, h int) {
	g.W, g.H = w, h
	g.scrollTop, g.scrollBottom = 0, h-1
	resizeBuffer(g.normal, w, h)
	resizeBuffer(g.alt, w, h)
}

// NormalLineCount returns the normal buffer's underlying Doc line count,
// including any promoted scrollback.
func (g *Grid) NormalLineCount() int { return g.normal.Content.LineCount() }

// ActiveLineCount returns the active buffer's underlying Doc line count.
func (g *Grid) ActiveLineCount() int { return g.active.Content.LineCount() }

// ActiveRowText renders viewport row y of the active buffer as a W-rune
// string, defaulting any cell never written to a space. Continuation
// cells of a wide rune contribute nothing of their own, since the wide
// rune's lead cell already accounts for both columns.
func (g *Grid) ActiveRowText(y int) string {
	b := g.active
	line := b.Content.LineGraphemes(b.docRow(int64(y)))
	out := make([]byte, 0, g.W)
	for x := 0; x < g.W; x++ {
		if b.Attrs[y][x].Width == 0 {
			continue
		}
		ch := " "
		if x < len(line) && line[x] != "" {
			ch = line[x]
		}
		out = append(out, ch...)
	}
	for len(out) < g.W {
		out = append(out, ' ')
	}
	return string(out)
}

func resizeBuffer(b *Buffer, w, h int) {
	for len(b.Attrs) < h {
		b.Attrs = append(b.Attrs, newAttrRow(w))
		b.Content.AppendBlankLine()
	}
	if len(b.Attrs) > h {
		b.Attrs = b.Attrs[len(b.Attrs)-h:]
	}
	for y := range b.Attrs {
		row := b.Attrs[y]
		if len(row) < w {
			row = append(row, newAttrRow(w-len(row))...)
		} else if len(row) > w {
			row = row[:w]
		}
		b.Attrs[y] = row
	}
	if b.CursorX >= int64(w) {
		b.CursorX = int64(w - 1)
	}
	if b.CursorY >= int64(h) {
		b.CursorY = int64(h - 1)
	}
}
