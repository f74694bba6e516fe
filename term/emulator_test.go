package term_test

import (
	"testing"

	"github.com/javanhut/ravencore/term"
	"github.com/stretchr/testify/require"
)

func TestEmulatorFeedPlainTextWritesCells(t *testing.T) {
	e := term.NewEmulator(10, 3)
	e.Feed([]byte("hi"))
	require.Equal(t, "hi        ", e.Grid.ActiveRowText(0))
}

func TestEmulatorFeedEraseLineScenario(t *testing.T) {
	e := term.NewEmulator(10, 3)
	e.Feed([]byte("hello\x1b[2K"))
	require.Equal(t, "          ", e.Grid.ActiveRowText(0))
}

func TestEmulatorEntersAltBufferOnPrivateMode1049(t *testing.T) {
	e := term.NewEmulator(10, 3)
	e.Feed([]byte("\x1b[?1049h"))
	require.True(t, e.Grid.InAltBuffer())
	e.Feed([]byte("\x1b[?1049l"))
	require.False(t, e.Grid.InAltBuffer())
}

func TestEmulatorHidesCursorOnPrivateMode25(t *testing.T) {
	e := term.NewEmulator(10, 3)
	require.True(t, e.CursorVisible())
	e.Feed([]byte("\x1b[?25l"))
	require.False(t, e.CursorVisible())
}

func TestEmulatorSplitFeedMatchesWholeFeed(t *testing.T) {
	stream := []byte("line one\r\nline two\x1b[1;32mgreen\x1b[0m done")

	whole := term.NewEmulator(20, 5)
	whole.Feed(stream)

	split := term.NewEmulator(20, 5)
	mid := len(stream) / 2
	split.Feed(stream[:mid])
	split.Feed(stream[mid:])

	x1, y1 := whole.Grid.Cursor()
	x2, y2 := split.Grid.Cursor()
	require.Equal(t, x1, x2)
	require.Equal(t, y1, y2)
	for y := 0; y < 5; y++ {
		require.Equal(t, whole.Grid.ActiveRowText(y), split.Grid.ActiveRowText(y))
	}
}

func TestEmulatorEncodeKeyArrowsNormalMode(t *testing.T) {
	e := term.NewEmulator(10, 3)
	require.Equal(t, []byte("\x1b[A"), e.EncodeKey(term.KeyInput{Name: "Up"}))
	require.Equal(t, []byte("\x1b[D"), e.EncodeKey(term.KeyInput{Name: "Left"}))
}

func TestEmulatorEncodeKeyArrowsApplicationMode(t *testing.T) {
	e := term.NewEmulator(10, 3)
	e.Feed([]byte("\x1b[?1h"))
	require.Equal(t, []byte("\x1bOA"), e.EncodeKey(term.KeyInput{Name: "Up"}))
}

func TestEmulatorEncodeKeyModifiedArrow(t *testing.T) {
	e := term.NewEmulator(10, 3)
	require.Equal(t, []byte("\x1b[1;2A"), e.EncodeKey(term.KeyInput{Name: "Up", Shift: true}))
	require.Equal(t, []byte("\x1b[1;5C"), e.EncodeKey(term.KeyInput{Name: "Right", Ctrl: true}))
	require.Equal(t, []byte("\x1b[1;6D"), e.EncodeKey(term.KeyInput{Name: "Left", Shift: true, Ctrl: true}))
}

func TestEmulatorEncodeKeyModifiedArrowIgnoresApplicationMode(t *testing.T) {
	e := term.NewEmulator(10, 3)
	e.Feed([]byte("\x1b[?1h"))
	require.Equal(t, []byte("\x1b[1;2A"), e.EncodeKey(term.KeyInput{Name: "Up", Shift: true}))
}

func TestEmulatorEncodeKeyCtrlLetter(t *testing.T) {
	e := term.NewEmulator(10, 3)
	require.Equal(t, []byte{3}, e.EncodeKey(term.KeyInput{Rune: 'c', Ctrl: true}))
}

func TestEmulatorEncodeKeyPlainRune(t *testing.T) {
	e := term.NewEmulator(10, 3)
	require.Equal(t, []byte("x"), e.EncodeKey(term.KeyInput{Rune: 'x'}))
}
