package term_test

import (
	"testing"

	"github.com/javanhut/ravencore/color"
	"github.com/javanhut/ravencore/term"
	"github.com/stretchr/testify/require"
)

func TestWriteGraphemeAdvancesCursor(t *testing.T) {
	g := term.NewGrid(10, 5)
	g.WriteGrapheme("a", 'a', color.Default(), color.Default(), 0)
	x, y := g.Cursor()
	require.Equal(t, int64(1), x)
	require.Equal(t, int64(0), y)
}

func TestWriteGraphemeWrapsAtColumnW(t *testing.T) {
	g := term.NewGrid(3, 5)
	g.WriteGrapheme("a", 'a', color.Default(), color.Default(), 0)
	g.WriteGrapheme("b", 'b', color.Default(), color.Default(), 0)
	g.WriteGrapheme("c", 'c', color.Default(), color.Default(), 0)
	// cursor now at col 3 == W; next write wraps first
	g.WriteGrapheme("d", 'd', color.Default(), color.Default(), 0)
	x, y := g.Cursor()
	require.Equal(t, int64(1), x)
	require.Equal(t, int64(1), y)
}

func TestWideRuneOccupiesTwoCellsAndAdvancesCursorByTwo(t *testing.T) {
	g := term.NewGrid(10, 5)
	g.WriteGrapheme("中", '中', color.Default(), color.Default(), 0)
	x, _ := g.Cursor()
	require.Equal(t, int64(2), x)
}

// Scrollback cap: after any number of newline-triggered scroll-ups, the
// normal buffer's Doc never grows past H + MAX_SCROLLBACK_LINES lines.
func TestScrollbackStaysCapped(t *testing.T) {
	g := term.NewGrid(80, 24)
	for i := 0; i < 5000; i++ {
		g.Newline()
	}
	require.LessOrEqual(t, g.NormalLineCount(), 24+100)
}

func TestScrollUpOnAltBufferNeverGrowsContent(t *testing.T) {
	g := term.NewGrid(80, 24)
	g.EnterAltBuffer()
	before := g.ActiveLineCount()
	for i := 0; i < 50; i++ {
		g.Newline()
	}
	require.Equal(t, before, g.ActiveLineCount())
}

func TestEraseDisplayModeTwoClearsWholeScreen(t *testing.T) {
	g := term.NewGrid(5, 2)
	g.WriteGrapheme("x", 'x', color.Default(), color.Default(), 0)
	g.EraseDisplay(2)
	row := g.ActiveRowText(0)
	require.Equal(t, "     ", row)
}

func TestDeleteCharsShiftsRowLeft(t *testing.T) {
	g := term.NewGrid(5, 1)
	for _, r := range "abcde" {
		g.WriteGrapheme(string(r), r, color.Default(), color.Default(), 0)
	}
	g.SetCursor(1, 0)
	g.DeleteChars(2)
	require.Equal(t, "ade  ", g.ActiveRowText(0))
}

func TestInsertCharsShiftsRowRightAndDropsOverflow(t *testing.T) {
	g := term.NewGrid(5, 1)
	for _, r := range "abcde" {
		g.WriteGrapheme(string(r), r, color.Default(), color.Default(), 0)
	}
	g.SetCursor(1, 0)
	g.InsertChars(2)
	require.Equal(t, "a  bc", g.ActiveRowText(0))
}

func TestEnterAndLeaveAltBufferPreservesNormalBuffer(t *testing.T) {
	g := term.NewGrid(5, 1)
	g.WriteGrapheme("a", 'a', color.Default(), color.Default(), 0)
	g.EnterAltBuffer()
	require.True(t, g.InAltBuffer())
	g.LeaveAltBuffer()
	require.False(t, g.InAltBuffer())
	require.Equal(t, "a    ", g.ActiveRowText(0))
}

func TestResizeResetsScrollRegionAndPreservesContent(t *testing.T) {
	g := term.NewGrid(5, 3)
	g.WriteGrapheme("a", 'a', color.Default(), color.Default(), 0)
	g.Resize(5, 5)
	require.Equal(t, "a    ", g.ActiveRowText(0))
}
