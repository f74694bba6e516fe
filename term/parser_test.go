package term_test

import (
	"testing"

	"github.com/javanhut/ravencore/term"
	"github.com/stretchr/testify/require"
)

func TestParserPlainText(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("hi"))
	require.Len(t, events, 2)
	require.Equal(t, term.EventText, events[0].Kind)
	require.Equal(t, "h", events[0].Text)
	require.Equal(t, "i", events[1].Text)
}

func TestParserControlChars(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("\r\n\b\t"))
	require.Len(t, events, 4)
	require.Equal(t, term.EventCR, events[0].Kind)
	require.Equal(t, term.EventLF, events[1].Kind)
	require.Equal(t, term.EventBS, events[2].Kind)
	require.Equal(t, term.EventHT, events[3].Kind)
}

func TestParserCSICursorPosition(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("\x1b[12;5H"))
	require.Len(t, events, 1)
	require.Equal(t, term.EventCursorSet, events[0].Kind)
	require.Equal(t, byte('H'), events[0].Letter)
	require.Equal(t, []int{12, 5}, events[0].Params)
}

func TestParserSGR(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("\x1b[1;31m"))
	require.Len(t, events, 1)
	require.Equal(t, term.EventSGR, events[0].Kind)
	require.Equal(t, []int{1, 31}, events[0].Params)
}

func TestParserPrivateModeSet(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("\x1b[?25h"))
	require.Len(t, events, 1)
	require.Equal(t, term.EventPrivateMode, events[0].Kind)
	require.True(t, events[0].Private)
	require.True(t, events[0].Set)
	require.Equal(t, []int{25}, events[0].Params)
}

func TestParserOSCWithBell(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("\x1b]0;title\x07"))
	require.Len(t, events, 1)
	require.Equal(t, term.EventOSC, events[0].Kind)
	require.Equal(t, 0, events[0].OSCCode)
	require.Equal(t, "title", events[0].OSCText)
}

func TestParserOSCWithStringTerminator(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("\x1b]2;window\x1b\\"))
	require.Len(t, events, 1)
	require.Equal(t, term.EventOSC, events[0].Kind)
	require.Equal(t, 2, events[0].OSCCode)
	require.Equal(t, "window", events[0].OSCText)
}

func TestParserUnknownEscapeDiscardedSilently(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("\x1bZhello"))
	require.Len(t, events, 5)
	require.Equal(t, "h", events[0].Text)
}

// Feeding the same byte stream split at any offset must yield the same
// event sequence as feeding it whole.
func TestParserSplitAcrossFeedCallsMatchesWhole(t *testing.T) {
	stream := []byte("hello\x1b[2K\x1b[31mworld\r\n\x1b]0;title\x07")

	whole := term.NewParser().Feed(stream)

	for split := 1; split < len(stream); split++ {
		p := term.NewParser()
		var got []term.Event
		got = append(got, p.Feed(stream[:split])...)
		got = append(got, p.Feed(stream[split:])...)
		require.Equal(t, whole, got, "split at byte %d produced a different event sequence", split)
	}
}

// A multi-byte UTF-8 rune split across Feed calls must still decode to
// one EventText with the full rune.
func TestParserUTF8SplitAcrossFeedCalls(t *testing.T) {
	r := "中" // 3-byte UTF-8
	b := []byte(r)
	require.Len(t, b, 3)

	p := term.NewParser()
	var got []term.Event
	got = append(got, p.Feed(b[:1])...)
	got = append(got, p.Feed(b[1:2])...)
	got = append(got, p.Feed(b[2:])...)

	require.Len(t, got, 1)
	require.Equal(t, term.EventText, got[0].Kind)
	require.Equal(t, r, got[0].Text)
}

func TestParserEraseLineCSI(t *testing.T) {
	p := term.NewParser()
	events := p.Feed([]byte("hello\x1b[2K"))
	require.Len(t, events, 6)
	last := events[len(events)-1]
	require.Equal(t, term.EventErase, last.Kind)
	require.Equal(t, byte('K'), last.Letter)
	require.Equal(t, []int{2}, last.Params)
}
