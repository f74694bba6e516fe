package lsp_test

import (
	"testing"

	"github.com/javanhut/ravencore/encoding"
	"github.com/javanhut/ravencore/lsp"
	"github.com/stretchr/testify/require"
)

func TestParseServerCapabilitiesDefaultsToUtf16NoPullDiagnostics(t *testing.T) {
	caps := lsp.ParseServerCapabilitiesForTest(map[string]any{})
	require.Equal(t, encoding.UTF16, caps.Encoding)
	require.False(t, caps.PullDiagnostics)
}

func TestParseServerCapabilitiesReadsUtf8AndDiagnosticProvider(t *testing.T) {
	result := map[string]any{
		"capabilities": map[string]any{
			"positionEncoding":   "utf-8",
			"diagnosticProvider": map[string]any{"interFileDependencies": true},
		},
	}
	caps := lsp.ParseServerCapabilitiesForTest(result)
	require.Equal(t, encoding.UTF8, caps.Encoding)
	require.True(t, caps.PullDiagnostics)
}
