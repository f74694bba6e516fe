package doc_test

import (
	"testing"
	"time"

	"github.com/javanhut/ravencore/doc"
	"github.com/javanhut/ravencore/linepool"
	"github.com/javanhut/ravencore/position"
	"github.com/stretchr/testify/require"
)

func newTestDoc() *doc.Doc {
	fixed := time.Unix(0, 0)
	return doc.New(doc.KindMultiLine, linepool.New(), doc.WithClock(func() time.Time {
		fixed = fixed.Add(time.Millisecond)
		return fixed
	}))
}

// Scenario 1: insert and undo across a newline.
func TestInsertAndUndoAcrossNewline(t *testing.T) {
	d := newTestDoc()
	d.LoadString("ab\ncd")
	d.SetCursors([]doc.Cursor{{Position: position.Position{X: 2, Y: 0}}})

	end, err := d.Insert(position.Position{X: 2, Y: 0}, "X\nY")
	require.NoError(t, err)
	require.Equal(t, position.Position{X: 1, Y: 1}, end)
	require.Equal(t, "abX\nY\ncd", d.Text())
	require.Equal(t, position.Position{X: 1, Y: 1}, d.MainCursor().Position)

	d.Undo()
	require.Equal(t, "ab\ncd", d.Text())
	require.Equal(t, position.Position{X: 2, Y: 0}, d.MainCursor().Position)
}

// Scenario 2: multi-cursor delete-backward (word).
func TestMultiCursorDeleteBackwardWord(t *testing.T) {
	d := newTestDoc()
	d.LoadString("foo\nbar\n")
	d.SetCursors([]doc.Cursor{
		{Position: position.Position{X: 3, Y: 0}},
		{Position: position.Position{X: 3, Y: 1}},
	})

	d.DeleteBackwardWordAtCursors()

	require.Equal(t, "\n\n", d.Text())
	cursors := d.Cursors()
	require.Len(t, cursors, 2)
	require.Equal(t, position.Position{X: 0, Y: 0}, cursors[0].Position)
	require.Equal(t, position.Position{X: 0, Y: 1}, cursors[1].Position)
}

// Scenario 3: wrap-around search.
func TestWrapAroundSearch(t *testing.T) {
	d := newTestDoc()
	d.LoadString("abcXabc")

	found, ok := d.Search("abc", position.Position{X: 5, Y: 0}, false)
	require.True(t, ok)
	require.Equal(t, position.Position{X: 0, Y: 0}, found)
}

func TestInsertThenDeleteIsIdentity(t *testing.T) {
	d := newTestDoc()
	d.LoadString("hello world")
	before := d.Text()
	beforeCursor := d.MainCursor().Position

	start := position.Position{X: 5, Y: 0}
	end, err := d.Insert(start, " there")
	require.NoError(t, err)
	d.Delete(start, end)

	require.Equal(t, before, d.Text())
	require.Equal(t, beforeCursor, d.MainCursor().Position)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	d := newTestDoc()
	d.LoadString("abc")
	d.Delete(position.Position{X: 0, Y: 0}, position.Position{X: 1, Y: 0})
	require.Equal(t, "bc", d.Text())

	d.Undo()
	require.Equal(t, "abc", d.Text())

	d.Redo()
	require.Equal(t, "bc", d.Text())
}

func TestSingleLineRejectsNewline(t *testing.T) {
	d := doc.New(doc.KindSingleLine, linepool.New())
	_, err := d.Insert(position.Position{}, "a\nb")
	require.ErrorIs(t, err, doc.ErrNewlineNotAllowed)
}

func TestToggleCommentAndIndent(t *testing.T) {
	d := newTestDoc()
	d.LoadString("foo\nbar")

	sel := position.Selection{Start: position.Position{X: 0, Y: 0}, End: position.Position{X: 3, Y: 1}}
	commented := d.ToggleComment(sel, "//")
	require.True(t, commented)
	require.Equal(t, "// foo\n// bar", d.Text())

	sel2 := position.Selection{Start: position.Position{X: 0, Y: 0}, End: position.Position{X: 6, Y: 1}}
	commented2 := d.ToggleComment(sel2, "//")
	require.False(t, commented2)
	require.Equal(t, "foo\nbar", d.Text())
}

func TestIndentUnindentSpaces(t *testing.T) {
	d := newTestDoc()
	d.LoadString("a\nb")
	sel := position.Selection{Start: position.Position{X: 0, Y: 0}, End: position.Position{X: 1, Y: 1}}

	d.Indent(sel, doc.SpacesIndent(2))
	require.Equal(t, "  a\n  b", d.Text())

	d.Unindent(sel, doc.SpacesIndent(2))
	require.Equal(t, "a\nb", d.Text())
}

func TestLoadDetectsCrLf(t *testing.T) {
	d := newTestDoc()
	d.LoadString("a\r\nb")
	require.Equal(t, doc.LineEndingCrLf, d.LineEnding())
}
