package term

import "github.com/javanhut/ravencore/color"

// CarriageReturn moves the cursor to column 0.
func (g *Grid) CarriageReturn() {
	g.active.CursorX = 0
}

// Backspace moves the cursor left one column, stopping at 0.
func (g *Grid) Backspace() {
	if g.active.CursorX > 0 {
		g.active.CursorX--
	}
}

// Tab advances the cursor to the next multiple-of-8 column, clamped to
// W-1.
func (g *Grid) Tab() {
	next := (g.active.CursorX/8 + 1) * 8
	g.active.CursorX = g.clampX(next)
}

// ReverseIndex moves the cursor up one row, scrolling the region down if
// it was already on the scroll region's top row.
func (g *Grid) ReverseIndex() {
	if int(g.active.CursorY) == g.scrollTop {
		g.ScrollDown(1)
	} else if g.active.CursorY > 0 {
		g.active.CursorY--
	}
}

// MoveCursor moves the cursor by (dx, dy), clamping to the grid bounds.
func (g *Grid) MoveCursor(dx, dy int64) {
	g.active.CursorX = g.clampX(g.active.CursorX + dx)
	g.active.CursorY = g.clampY(g.active.CursorY + dy)
}

func blankAttr() CellAttr {
	return CellAttr{Fg: color.Default(), Bg: color.Default(), Width: 1}
}

// EraseDisplay implements CSI J: mode 0 erases cursor-to-end, 1
// start-to-cursor, 2 the whole screen.
func (g *Grid) EraseDisplay(mode int) {
	switch mode {
	case 0:
		g.ClearLine(g.active.CursorX, int64(g.W))
		for y := g.active.CursorY + 1; y < int64(g.H); y++ {
			g.active.Content.ClearLineFrom(g.active.docRow(y), 0, int64(g.W))
			g.active.Attrs[y] = newAttrRow(g.W)
		}
	case 1:
		g.ClearLine(0, g.active.CursorX+1)
		for y := int64(0); y < g.active.CursorY; y++ {
			g.active.Content.ClearLineFrom(g.active.docRow(y), 0, int64(g.W))
			g.active.Attrs[y] = newAttrRow(g.W)
		}
	case 2:
		for y := int64(0); y < int64(g.H); y++ {
			g.active.Content.ClearLineFrom(g.active.docRow(y), 0, int64(g.W))
			g.active.Attrs[y] = newAttrRow(g.W)
		}
	}
}

// InsertLines inserts n blank lines at the cursor's row within the scroll
// region, pushing lines below down and discarding any that fall off the
// region's bottom.
func (g *Grid) InsertLines(n int) {
	b := g.active
	top := int(b.CursorY)
	for i := 0; i < n; i++ {
		shiftDocRowsDown(b, g, top, g.scrollBottom)
	}
}

// DeleteLines removes n lines at the cursor's row within the scroll
// region, pulling lines below up and blanking the vacated bottom rows.
func (g *Grid) DeleteLines(n int) {
	b := g.active
	top := int(b.CursorY)
	for i := 0; i < n; i++ {
		shiftDocRowsUp(b, g, top, g.scrollBottom)
		copy(b.Attrs[top:g.scrollBottom], b.Attrs[top+1:g.scrollBottom+1])
		b.Attrs[g.scrollBottom] = newAttrRow(g.W)
	}
}

func shiftDocRowsDown(b *Buffer, g *Grid, top, bottom int) {
	for y := bottom; y > top; y-- {
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
	b.Content.ClearLineFrom(b.docRow(int64(top)), 0, int64(g.W))
	b.Attrs[top] = newAttrRow(g.W)
}

// DeleteChars removes n characters at the cursor, shifting the remainder
// of the row left and blanking the vacated columns at the end.
func (g *Grid) DeleteChars(n int) {
	b := g.active
	row := b.docRow(b.CursorY)
	x := int(b.CursorX)
	oldAttrs := append([]CellAttr{}, b.Attrs[b.CursorY]...)
	line := b.Content.LineGraphemes(row)
	for i := x; i < g.W; i++ {
		srcCol := i + n
		ch, attr := " ", blankAttr()
		if srcCol < g.W {
			if srcCol < len(line) {
				ch = line[srcCol]
			}
			attr = oldAttrs[srcCol]
		}
		b.Content.WriteCell(row, int64(i), ch)
		b.Attrs[b.CursorY][i] = attr
	}
}

// InsertChars inserts n blank characters at the cursor, shifting the
// remainder of the row right; characters pushed past W are dropped.
func (g *Grid) InsertChars(n int) {
	b := g.active
	row := b.docRow(b.CursorY)
	x := int(b.CursorX)
	oldAttrs := append([]CellAttr{}, b.Attrs[b.CursorY]...)
	line := b.Content.LineGraphemes(row)
	for i := x; i < g.W; i++ {
		srcCol := i - n
		ch, attr := " ", blankAttr()
		if srcCol >= x {
			if srcCol < len(line) {
				ch = line[srcCol]
			}
			attr = oldAttrs[srcCol]
		}
		b.Content.WriteCell(row, int64(i), ch)
		b.Attrs[b.CursorY][i] = attr
	}
}

// EraseChars blanks n characters starting at the cursor without shifting
// the rest of the row.
func (g *Grid) EraseChars(n int) {
	g.ClearLine(g.active.CursorX, minInt64(g.active.CursorX+int64(n), int64(g.W)))
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
