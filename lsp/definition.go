package lsp

import (
	"encoding/json"

	"github.com/javanhut/ravencore/position"
)

// Location is a normalized textDocument/definition result: one file and one
// range within it.
type Location struct {
	URI   string
	Start position.Position
	End   position.Position
}

type lspRange struct {
	Start struct{ Line, Character int64 } `json:"start"`
	End   struct{ Line, Character int64 } `json:"end"`
}

type locationWire struct {
	URI   string   `json:"uri"`
	Range lspRange `json:"range"`
}

// locationLinkWire is the shape returned when a server advertises
// definitionLinkSupport (spec §4.9 item 1): the target range replaces
// range/uri.
type locationLinkWire struct {
	TargetURI   string   `json:"targetUri"`
	TargetRange lspRange `json:"targetRange"`
}

// NormalizeDefinitionResult collapses the four shapes textDocument/definition
// may return (null, Location, []Location, []LocationLink) to the first
// Location, per spec §4.9. Returns false if the result is null or empty.
func NormalizeDefinitionResult(raw json.RawMessage) (Location, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return Location{}, false
	}

	var single locationWire
	if err := json.Unmarshal(raw, &single); err == nil && single.URI != "" {
		return toLocation(single), true
	}

	var list []locationWire
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0].URI != "" {
		return toLocation(list[0]), true
	}

	var links []locationLinkWire
	if err := json.Unmarshal(raw, &links); err == nil && len(links) > 0 {
		l := links[0]
		return Location{
			URI:   l.TargetURI,
			Start: position.Position{X: l.TargetRange.Start.Character, Y: l.TargetRange.Start.Line},
			End:   position.Position{X: l.TargetRange.End.Character, Y: l.TargetRange.End.Line},
		}, true
	}

	return Location{}, false
}

func toLocation(w locationWire) Location {
	return Location{
		URI:   w.URI,
		Start: position.Position{X: w.Range.Start.Character, Y: w.Range.Start.Line},
		End:   position.Position{X: w.Range.End.Character, Y: w.Range.End.Line},
	}
}
