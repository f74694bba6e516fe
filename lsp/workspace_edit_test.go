package lsp_test

import (
	"encoding/json"
	"testing"

	"github.com/javanhut/ravencore/lsp"
	"github.com/javanhut/ravencore/position"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWorkspaceEditPrefersDocumentChanges(t *testing.T) {
	raw := json.RawMessage(`{
		"changes": {"file:///ignored.go": [{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":0}},"newText":"x"}]},
		"documentChanges": [
			{"textDocument":{"uri":"file:///a.go","version":1},"edits":[
				{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":3}},"newText":"foo"}
			]}
		]
	}`)
	edits := lsp.NormalizeWorkspaceEdit(raw)
	require.Len(t, edits, 1)
	require.Equal(t, "file:///a.go", edits[0].URI)
	require.Equal(t, "foo", edits[0].Edits[0].NewText)
}

func TestNormalizeWorkspaceEditFallsBackToChangesSortedByURI(t *testing.T) {
	raw := json.RawMessage(`{
		"changes": {
			"file:///z.go": [{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":0}},"newText":"z"}],
			"file:///a.go": [{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":0}},"newText":"a"}]
		}
	}`)
	edits := lsp.NormalizeWorkspaceEdit(raw)
	require.Len(t, edits, 2)
	require.Equal(t, "file:///a.go", edits[0].URI)
	require.Equal(t, "file:///z.go", edits[1].URI)
}

func TestApplyEditsAppliesDescendingOrder(t *testing.T) {
	edits := []lsp.TextEdit{
		{Start: position.Position{X: 0, Y: 0}, End: position.Position{X: 1, Y: 0}, NewText: "A"},
		{Start: position.Position{X: 5, Y: 0}, End: position.Position{X: 6, Y: 0}, NewText: "B"},
	}
	var order []position.Position
	err := lsp.ApplyEdits(edits, func(start, end position.Position, newText string) error {
		order = append(order, start)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []position.Position{{X: 5, Y: 0}, {X: 0, Y: 0}}, order)
}

func TestShiftPositionThroughEditsTracksInsertAfterDelete(t *testing.T) {
	p := position.Position{X: 10, Y: 0}
	edits := []lsp.TextEdit{
		{Start: position.Position{X: 0, Y: 0}, End: position.Position{X: 4, Y: 0}, NewText: "longer"},
	}
	got := lsp.ShiftPositionThroughEdits(p, edits)
	require.Equal(t, position.Position{X: 12, Y: 0}, got)
}
