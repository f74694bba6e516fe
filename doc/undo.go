package doc

import (
	"strings"

	"github.com/javanhut/ravencore/history"
	"github.com/javanhut/ravencore/position"
)

// Undo pops the most recent undo transaction and replays it in reverse
// (spec §4.3).
func (d *Doc) Undo() {
	d.replayTransaction(d.undoHist, d.redoHist)
}

// Redo replays the same algorithm with the undo/redo histories swapped.
func (d *Doc) Redo() {
	d.replayTransaction(d.redoHist, d.undoHist)
}

func (d *Doc) replayTransaction(from, to *history.History) {
	transaction := from.PopTransaction(d.undoGroupWindow)
	if len(transaction) == 0 {
		return
	}

	clearedCursors := false
	now := d.now()

	for i := len(transaction) - 1; i >= 0; i-- {
		action := transaction[i]
		switch action.Kind {
		case history.KindSetCursor:
			if !clearedCursors {
				d.cursors = nil
				clearedCursors = true
			}
			for len(d.cursors) <= action.CursorIndex {
				d.cursors = append(d.cursors, Cursor{})
			}
			d.cursors[action.CursorIndex] = Cursor{
				Position:        position.Position{X: action.Cursor.X, Y: action.Cursor.Y},
				SelectionAnchor: anchorFromHistory(action.Anchor),
			}

		case history.KindInsert:
			start := position.Position{X: action.Start.X, Y: action.Start.Y}
			end := position.Position{X: action.End.X, Y: action.End.Y}
			d.deletePrimitive(to, now, start, end)

		case history.KindDelete:
			chars := from.DeletedRunSlice(action.CharsStart)
			text := strings.Join(chars, "")
			start := position.Position{X: action.Start.X, Y: action.Start.Y}
			d.insertPrimitive(to, now, start, text)
			from.TruncateDeletedRuns(action.CharsStart)
		}
	}

	if len(d.cursors) == 0 {
		d.cursors = []Cursor{{Position: position.Position{}}}
	}
}

func anchorFromHistory(a *history.Position) *position.Position {
	if a == nil {
		return nil
	}
	p := position.Position{X: a.X, Y: a.Y}
	return &p
}
