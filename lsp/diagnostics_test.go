package lsp_test

import (
	"testing"

	"github.com/javanhut/ravencore/lsp"
	"github.com/stretchr/testify/require"
)

func TestLanguageServerSortsDiagnosticsBySeverity(t *testing.T) {
	ls := lsp.NewTestLanguageServer()
	ls.DispatchForTest("textDocument/publishDiagnostics", []byte(`{
		"uri": "file:///a.go",
		"diagnostics": [
			{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"severity":2,"message":"warn"},
			{"range":{"start":{"line":1,"character":0},"end":{"line":1,"character":1}},"severity":1,"message":"error"}
		]
	}`))

	diags := ls.Diagnostics("file:///a.go")
	require.Len(t, diags, 2)
	require.Equal(t, lsp.SeverityError, diags[0].Severity)
	require.Equal(t, "error", diags[0].Message)
	require.Equal(t, lsp.SeverityWarning, diags[1].Severity)
}
