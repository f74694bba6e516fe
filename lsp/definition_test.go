package lsp_test

import (
	"encoding/json"
	"testing"

	"github.com/javanhut/ravencore/lsp"
	"github.com/javanhut/ravencore/position"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefinitionResultNull(t *testing.T) {
	_, ok := lsp.NormalizeDefinitionResult(json.RawMessage(`null`))
	require.False(t, ok)
}

func TestNormalizeDefinitionResultSingleLocation(t *testing.T) {
	raw := json.RawMessage(`{"uri":"file:///a.go","range":{"start":{"line":3,"character":1},"end":{"line":3,"character":5}}}`)
	loc, ok := lsp.NormalizeDefinitionResult(raw)
	require.True(t, ok)
	require.Equal(t, "file:///a.go", loc.URI)
	require.Equal(t, position.Position{X: 1, Y: 3}, loc.Start)
	require.Equal(t, position.Position{X: 5, Y: 3}, loc.End)
}

func TestNormalizeDefinitionResultLocationArrayTakesFirst(t *testing.T) {
	raw := json.RawMessage(`[
		{"uri":"file:///a.go","range":{"start":{"line":1,"character":0},"end":{"line":1,"character":2}}},
		{"uri":"file:///b.go","range":{"start":{"line":9,"character":0},"end":{"line":9,"character":2}}}
	]`)
	loc, ok := lsp.NormalizeDefinitionResult(raw)
	require.True(t, ok)
	require.Equal(t, "file:///a.go", loc.URI)
}

func TestNormalizeDefinitionResultLocationLinkArray(t *testing.T) {
	raw := json.RawMessage(`[{"targetUri":"file:///c.go","targetRange":{"start":{"line":2,"character":4},"end":{"line":2,"character":8}}}]`)
	loc, ok := lsp.NormalizeDefinitionResult(raw)
	require.True(t, ok)
	require.Equal(t, "file:///c.go", loc.URI)
	require.Equal(t, position.Position{X: 4, Y: 2}, loc.Start)
}

func TestNormalizeDefinitionResultEmptyArray(t *testing.T) {
	_, ok := lsp.NormalizeDefinitionResult(json.RawMessage(`[]`))
	require.False(t, ok)
}
