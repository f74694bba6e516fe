package lsp

import (
	"encoding/json"

	"github.com/javanhut/ravencore/doc"
	"github.com/javanhut/ravencore/encoding"
	"github.com/javanhut/ravencore/position"
)

// pathToURI builds the file:// URI the LSP wire protocol expects from a
// plain filesystem path.
func pathToURI(path string) string {
	return "file://" + path
}

// encodePosition converts a document-space position into the {line,
// character} shape a server expects, in the negotiated encoding.
func encodePosition(enc encoding.PositionEncoding, d *doc.Doc, p position.Position) map[string]any {
	line := []rune(d.LineText(p.Y))
	return map[string]any{
		"line":      p.Y,
		"character": encoding.EncodeColumn(enc, line, p.X),
	}
}

// decodePosition is encodePosition's inverse: given a line/character pair
// in the server's encoded units, returns the equivalent document-space
// position against d's current line content.
func decodePosition(enc encoding.PositionEncoding, d *doc.Doc, line, character int64) position.Position {
	return position.Position{X: encoding.DecodeColumn(enc, []rune(d.LineText(line)), character), Y: line}
}

// DidOpen sends textDocument/didOpen for path and records its starting
// version, so later DidChange calls can detect out-of-order delivery.
func (ls *LanguageServer) DidOpen(path, languageID string, d *doc.Doc) {
	ls.SetDocumentVersion(path, d.Version())
	ls.SendNotification("textDocument/didOpen", map[string]any{
		"textDocument": map[string]any{
			"uri":        pathToURI(path),
			"languageId": languageID,
			"version":    d.Version(),
			"text":       d.Text(),
		},
	})
}

// DidClose sends textDocument/didClose for path.
func (ls *LanguageServer) DidClose(path string) {
	ls.SendNotification("textDocument/didClose", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
	})
}

// DidChange sends textDocument/didChange for a single incremental edit and
// records the document's new version.
func (ls *LanguageServer) DidChange(path string, version uint64, start, end position.Position, text string, d *doc.Doc) {
	enc := ls.Capabilities().Encoding
	ls.SetDocumentVersion(path, version)
	ls.SendNotification("textDocument/didChange", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path), "version": version},
		"contentChanges": []map[string]any{{
			"text": text,
			"range": map[string]any{
				"start": encodePosition(enc, d, start),
				"end":   encodePosition(enc, d, end),
			},
		}},
	})
}

// Completion issues textDocument/completion at pos.
func (ls *LanguageServer) Completion(path string, pos position.Position, d *doc.Doc, handle func(json.RawMessage, *rpcError)) int64 {
	enc := ls.Capabilities().Encoding
	return ls.SendRequest(path, "textDocument/completion", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
		"position":     encodePosition(enc, d, pos),
	}, handle)
}

// Hover issues textDocument/hover at pos.
func (ls *LanguageServer) Hover(path string, pos position.Position, d *doc.Doc, handle func(json.RawMessage, *rpcError)) int64 {
	enc := ls.Capabilities().Encoding
	return ls.SendRequest(path, "textDocument/hover", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
		"position":     encodePosition(enc, d, pos),
	}, handle)
}

// CodeAction issues textDocument/codeAction over [start, end], attaching
// any currently-known diagnostics whose range overlaps it, matching
// _examples/original_source/src/lsp/language_server.rs's code_action.
func (ls *LanguageServer) CodeAction(path string, start, end position.Position, d *doc.Doc, handle func(json.RawMessage, *rpcError)) int64 {
	enc := ls.Capabilities().Encoding
	uri := pathToURI(path)

	var overlapping []map[string]any
	for _, diag := range ls.DecodedDiagnostics(uri, d) {
		if end.Less(diag.Start) || diag.End.Less(start) {
			continue
		}
		overlapping = append(overlapping, map[string]any{
			"range": map[string]any{
				"start": encodePosition(enc, d, diag.Start),
				"end":   encodePosition(enc, d, diag.End),
			},
			"severity": int(diag.Severity),
			"message":  diag.Message,
			"source":   diag.Source,
		})
	}

	return ls.SendRequest(path, "textDocument/codeAction", map[string]any{
		"textDocument": map[string]any{"uri": uri},
		"range": map[string]any{
			"start": encodePosition(enc, d, start),
			"end":   encodePosition(enc, d, end),
		},
		"context": map[string]any{"diagnostics": overlapping},
	}, handle)
}

// PrepareRename issues textDocument/prepareRename at pos.
func (ls *LanguageServer) PrepareRename(path string, pos position.Position, d *doc.Doc, handle func(json.RawMessage, *rpcError)) int64 {
	enc := ls.Capabilities().Encoding
	return ls.SendRequest(path, "textDocument/prepareRename", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
		"position":     encodePosition(enc, d, pos),
	}, handle)
}

// Rename issues textDocument/rename, then normalizes the WorkspaceEdit
// result via NormalizeWorkspaceEdit once the response arrives. Edits
// targeting path itself are decoded against d's current line content;
// edits to other files are left in the server's encoded units, since
// their documents aren't available here. handle receives ok=false on an
// error result or a null/empty edit.
func (ls *LanguageServer) Rename(path, newName string, pos position.Position, d *doc.Doc, handle func([]FileEdit, bool)) int64 {
	enc := ls.Capabilities().Encoding
	uri := pathToURI(path)
	return ls.SendRequest(path, "textDocument/rename", map[string]any{
		"textDocument": map[string]any{"uri": uri},
		"position":     encodePosition(enc, d, pos),
		"newName":      newName,
	}, func(result json.RawMessage, rpcErr *rpcError) {
		if handle == nil {
			return
		}
		if rpcErr != nil || len(result) == 0 || string(result) == "null" {
			handle(nil, false)
			return
		}
		edits := NormalizeWorkspaceEdit(result)
		for i := range edits {
			if edits[i].URI != uri {
				continue
			}
			for j := range edits[i].Edits {
				e := &edits[i].Edits[j]
				e.Start = decodePosition(enc, d, e.Start.Y, e.Start.X)
				e.End = decodePosition(enc, d, e.End.Y, e.End.X)
			}
		}
		handle(edits, true)
	})
}

// ApplyWorkspaceEdit routes each file's normalized edits (see Rename,
// NormalizeWorkspaceEdit) to the ApplyFunc the caller registered for its
// URI, via ApplyEdits. Files with no registered function are skipped,
// since this client only ever has the currently-open document to edit.
func (ls *LanguageServer) ApplyWorkspaceEdit(edits []FileEdit, applyTo map[string]ApplyFunc) error {
	for _, fe := range edits {
		apply, ok := applyTo[fe.URI]
		if !ok {
			continue
		}
		if err := ApplyEdits(fe.Edits, apply); err != nil {
			return err
		}
	}
	return nil
}

// References issues textDocument/references at pos, including the
// declaration itself per the LSP convention.
func (ls *LanguageServer) References(path string, pos position.Position, d *doc.Doc, handle func(json.RawMessage, *rpcError)) int64 {
	enc := ls.Capabilities().Encoding
	return ls.SendRequest(path, "textDocument/references", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
		"position":     encodePosition(enc, d, pos),
		"context":      map[string]any{"includeDeclaration": true},
	}, handle)
}

// Definition issues textDocument/definition at pos, normalizing the
// result via NormalizeDefinitionResult once the response arrives. When
// the definition targets path itself, its position is decoded against
// d's current line content.
func (ls *LanguageServer) Definition(path string, pos position.Position, d *doc.Doc, handle func(Location, bool)) int64 {
	enc := ls.Capabilities().Encoding
	uri := pathToURI(path)
	return ls.SendRequest(path, "textDocument/definition", map[string]any{
		"textDocument": map[string]any{"uri": uri},
		"position":     encodePosition(enc, d, pos),
	}, func(result json.RawMessage, rpcErr *rpcError) {
		if handle == nil {
			return
		}
		if rpcErr != nil {
			handle(Location{}, false)
			return
		}
		loc, ok := NormalizeDefinitionResult(result)
		if ok && loc.URI == uri {
			loc.Start = decodePosition(enc, d, loc.Start.Y, loc.Start.X)
			loc.End = decodePosition(enc, d, loc.End.Y, loc.End.X)
		}
		handle(loc, ok)
	})
}

// SignatureHelp issues textDocument/signatureHelp at pos. triggerChar is
// the character that triggered the request (0 for a re-trigger with no
// specific character), matching the LSP SignatureHelpTriggerKind values
// (2 = TriggerCharacter, 3 = ContentChange).
func (ls *LanguageServer) SignatureHelp(path string, pos position.Position, triggerChar rune, isRetrigger bool, d *doc.Doc, handle func(json.RawMessage, *rpcError)) int64 {
	enc := ls.Capabilities().Encoding
	triggerKind := 3
	var triggerCharacter any
	if triggerChar != 0 {
		triggerKind = 2
		triggerCharacter = string(triggerChar)
	}
	return ls.SendRequest(path, "textDocument/signatureHelp", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
		"position":     encodePosition(enc, d, pos),
		"context": map[string]any{
			"triggerKind":      triggerKind,
			"triggerCharacter": triggerCharacter,
			"isRetrigger":      isRetrigger,
		},
	}, handle)
}

// Formatting issues textDocument/formatting with the given indent width.
func (ls *LanguageServer) Formatting(path string, tabWidth int, insertSpaces bool, handle func(json.RawMessage, *rpcError)) int64 {
	return ls.SendRequest(path, "textDocument/formatting", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
		"options": map[string]any{
			"tabSize":      tabWidth,
			"insertSpaces": insertSpaces,
		},
	}, handle)
}

// PullDiagnostic issues textDocument/diagnostic if the server advertised
// pull-diagnostics support at initialize time (Capabilities.PullDiagnostics);
// ok is false otherwise and no request is sent.
func (ls *LanguageServer) PullDiagnostic(path string, handle func(json.RawMessage, *rpcError)) (id int64, ok bool) {
	if !ls.Capabilities().PullDiagnostics {
		return 0, false
	}
	return ls.SendRequest(path, "textDocument/diagnostic", map[string]any{
		"textDocument": map[string]any{"uri": pathToURI(path)},
	}, handle), true
}
