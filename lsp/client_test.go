package lsp_test

import (
	"testing"

	"github.com/javanhut/ravencore/lsp"
	"github.com/javanhut/ravencore/position"
	"github.com/stretchr/testify/require"
)

func TestIsResponseExpectedTrueWhenNothingTracked(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	got := ls.IsResponseExpected("file:///a.go", "textDocument/hover", 1, position.Position{}, 0)
	require.True(t, got)
}

func TestIsResponseExpectedFalseOnStaleID(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	pos := position.Position{X: 2, Y: 0}
	ls.TrackExpected("file:///a.go", "textDocument/hover", 5, &pos, 1)

	got := ls.IsResponseExpected("file:///a.go", "textDocument/hover", 4, pos, 1)
	require.False(t, got)
}

func TestIsResponseExpectedFalseOnPositionOrVersionDrift(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	pos := position.Position{X: 2, Y: 0}
	ls.TrackExpected("file:///a.go", "textDocument/hover", 5, &pos, 1)

	movedPos := position.Position{X: 9, Y: 0}
	require.False(t, ls.IsResponseExpected("file:///a.go", "textDocument/hover", 5, movedPos, 1))

	ls.TrackExpected("file:///a.go", "textDocument/hover", 6, &pos, 1)
	require.False(t, ls.IsResponseExpected("file:///a.go", "textDocument/hover", 6, pos, 2))
}

func TestIsResponseExpectedTrueWhenPositionAndVersionMatch(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	pos := position.Position{X: 2, Y: 0}
	ls.TrackExpected("file:///a.go", "textDocument/hover", 5, &pos, 1)

	require.True(t, ls.IsResponseExpected("file:///a.go", "textDocument/hover", 5, pos, 1))
}

func TestDebounceOrSendQueuesFollowUpBehindInFlightRequest(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	pos := position.Position{X: 0, Y: 0}
	ls.TrackExpected("file:///a.go", "textDocument/completion", 1, &pos, 0)

	fired := false
	debounced := ls.DebounceOrSend("file:///a.go", "textDocument/completion", func() { fired = true })
	require.True(t, debounced)
	require.False(t, fired)

	// The response for the in-flight request arrives: the debounced
	// follow-up should fire as a side effect of resolving it.
	ls.IsResponseExpected("file:///a.go", "textDocument/completion", 1, pos, 0)
	require.True(t, fired)
}

func TestSetDocumentVersionIsReadableViaStaleCheck(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	pos := position.Position{X: 0, Y: 0}
	ls.SetDocumentVersion("file:///a.go", 3)
	ls.TrackExpected("file:///a.go", "textDocument/hover", 1, &pos, 3)

	require.True(t, ls.IsResponseExpected("file:///a.go", "textDocument/hover", 1, pos, 3))
}

func TestDebounceOrSendReturnsFalseWhenNothingInFlight(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	fired := false
	debounced := ls.DebounceOrSend("file:///a.go", "textDocument/completion", func() { fired = true })
	require.False(t, debounced)
	require.False(t, fired)
}
