package lsp

import (
	"encoding/json"
	"sort"

	"github.com/javanhut/ravencore/position"
)

// TextEdit is one replacement within a single file.
type TextEdit struct {
	Start       position.Position
	End         position.Position
	NewText     string
	NewTextRows []string // NewText split on '\n', for multi-line inserts
}

// FileEdit groups every edit targeting one URI, in the order the server
// returned them.
type FileEdit struct {
	URI   string
	Edits []TextEdit
}

type textEditWire struct {
	Range   lspRange `json:"range"`
	NewText string   `json:"newText"`
}

type textDocumentEditWire struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Edits []textEditWire `json:"edits"`
}

type workspaceEditWire struct {
	Changes        map[string][]textEditWire `json:"changes"`
	DocumentChanges []json.RawMessage        `json:"documentChanges"`
}

// NormalizeWorkspaceEdit collapses a WorkspaceEdit's two shapes
// (documentChanges preferred, changes as fallback) into an ordered list of
// per-file edits, per spec §4.9.
func NormalizeWorkspaceEdit(raw json.RawMessage) []FileEdit {
	var wire workspaceEditWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil
	}

	if len(wire.DocumentChanges) > 0 {
		out := make([]FileEdit, 0, len(wire.DocumentChanges))
		for _, rawChange := range wire.DocumentChanges {
			var tde textDocumentEditWire
			if err := json.Unmarshal(rawChange, &tde); err != nil || tde.TextDocument.URI == "" {
				continue // a CreateFile/RenameFile/DeleteFile resource op, not handled here
			}
			out = append(out, FileEdit{URI: tde.TextDocument.URI, Edits: toTextEdits(tde.Edits)})
		}
		return out
	}

	uris := make([]string, 0, len(wire.Changes))
	for uri := range wire.Changes {
		uris = append(uris, uri)
	}
	sort.Strings(uris)

	out := make([]FileEdit, 0, len(uris))
	for _, uri := range uris {
		out = append(out, FileEdit{URI: uri, Edits: toTextEdits(wire.Changes[uri])})
	}
	return out
}

func toTextEdits(wire []textEditWire) []TextEdit {
	out := make([]TextEdit, 0, len(wire))
	for _, w := range wire {
		out = append(out, TextEdit{
			Start:   position.Position{X: w.Range.Start.Character, Y: w.Range.Start.Line},
			End:     position.Position{X: w.Range.End.Character, Y: w.Range.End.Line},
			NewText: w.NewText,
		})
	}
	return out
}

// ApplyFunc performs one edit against a document, returning an error if
// the edit could not be applied.
type ApplyFunc func(start, end position.Position, newText string) error

// ApplyEdits applies edits to a single file in descending position order so
// that earlier edits in the list never invalidate the ranges of later ones,
// stopping at and returning the first error apply reports. Edits are
// assumed non-overlapping, per the LSP spec's contract on TextEdit arrays.
func ApplyEdits(edits []TextEdit, apply ApplyFunc) error {
	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[j].Start.Less(ordered[i].Start)
	})

	for _, e := range ordered {
		if err := apply(e.Start, e.End, e.NewText); err != nil {
			return err
		}
	}
	return nil
}

// ShiftPositionThroughEdits re-derives where p lands after every edit in
// edits has been applied in order, using the exact insert/delete shift
// rules from position.ShiftByInsert/ShiftByDelete. edits must be in the
// same order they were actually applied (descending document order for
// edits that went through ApplyEdits), so that each edit's coordinates are
// still valid when p is shifted through it.
func ShiftPositionThroughEdits(p position.Position, edits []TextEdit) position.Position {
	for _, e := range edits {
		p = position.ShiftByDelete(p, e.Start, e.End)
		insertEnd := insertedEnd(e.Start, e.NewText)
		p = position.ShiftByInsert(p, e.Start, insertEnd)
	}
	return p
}

func insertedEnd(start position.Position, text string) position.Position {
	lines := splitLines(text)
	if len(lines) == 1 {
		return position.Position{X: start.X + int64(len([]rune(lines[0]))), Y: start.Y}
	}
	last := lines[len(lines)-1]
	return position.Position{X: int64(len([]rune(last))), Y: start.Y + int64(len(lines)-1)}
}

func splitLines(s string) []string {
	lines := []string{""}
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, "")
			continue
		}
		lines[len(lines)-1] += string(r)
	}
	return lines
}
