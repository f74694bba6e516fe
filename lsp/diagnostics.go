package lsp

import (
	"encoding/json"
	"sort"

	"github.com/javanhut/ravencore/doc"
	"github.com/javanhut/ravencore/position"
)

// Severity mirrors the LSP DiagnosticSeverity enum (1 = Error ... 4 = Hint).
type Severity int

const (
	SeverityError       Severity = 1
	SeverityWarning     Severity = 2
	SeverityInformation Severity = 3
	SeverityHint        Severity = 4
)

// Diagnostic is one decoded textDocument/publishDiagnostics entry, with its
// range already resolved against the document's current content.
type Diagnostic struct {
	Start    position.Position
	End      position.Position
	Severity Severity
	Message  string
	Source   string
}

type diagnosticWire struct {
	Range struct {
		Start struct{ Line, Character int64 } `json:"start"`
		End   struct{ Line, Character int64 } `json:"end"`
	} `json:"range"`
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}

type publishDiagnosticsParams struct {
	URI         string           `json:"uri"`
	Version     *int             `json:"version"`
	Diagnostics []diagnosticWire `json:"diagnostics"`
}

// handlePublishDiagnostics decodes a publishDiagnostics notification and
// stores the result sorted by severity ascending (errors first), per spec
// §4.9. Positions are left in the server's encoded units; callers decode
// against a document's line runes via encoding.DecodeColumn when rendering,
// since the document content needed to do that isn't available here.
func (ls *LanguageServer) handlePublishDiagnostics(raw json.RawMessage) {
	var params publishDiagnosticsParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return
	}

	out := make([]Diagnostic, 0, len(params.Diagnostics))
	for _, d := range params.Diagnostics {
		sev := Severity(d.Severity)
		if sev == 0 {
			sev = SeverityError
		}
		out = append(out, Diagnostic{
			Start:    position.Position{X: d.Range.Start.Character, Y: d.Range.Start.Line},
			End:      position.Position{X: d.Range.End.Character, Y: d.Range.End.Line},
			Severity: sev,
			Message:  d.Message,
			Source:   d.Source,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Severity < out[j].Severity })

	ls.mu.Lock()
	ls.diagnostics[params.URI] = out
	ls.mu.Unlock()
}

// Diagnostics returns the most recently published diagnostics for uri,
// already sorted by severity ascending, with positions still in the
// server's encoded units. Use DecodedDiagnostics to resolve them against
// an open document's line content.
func (ls *LanguageServer) Diagnostics(uri string) []Diagnostic {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.diagnostics[uri]
}

// DecodedDiagnostics returns uri's diagnostics with Start/End decoded from
// the negotiated encoding into rune offsets against d's current line
// content, per spec §4.9's lazy-decode contract (positions are stored raw
// until something actually needs to render or compare them against a
// document).
func (ls *LanguageServer) DecodedDiagnostics(uri string, d *doc.Doc) []Diagnostic {
	ls.mu.Lock()
	raw := ls.diagnostics[uri]
	enc := ls.caps.Encoding
	ls.mu.Unlock()

	out := make([]Diagnostic, len(raw))
	for i, diag := range raw {
		out[i] = diag
		out[i].Start = decodePosition(enc, d, diag.Start.Y, diag.Start.X)
		out[i].End = decodePosition(enc, d, diag.End.Y, diag.End.X)
	}
	return out
}
