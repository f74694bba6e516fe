package doc

import (
	"errors"
	"time"

	"github.com/javanhut/ravencore/history"
	"github.com/javanhut/ravencore/position"
)

// ErrNewlineNotAllowed is returned by Insert when text contains a newline
// and the document is SingleLine.
var ErrNewlineNotAllowed = errors.New("doc: newline not allowed in single-line document")

func (d *Doc) markDirty(y int64) {
	if y < d.highestUnhighlighted {
		d.highestUnhighlighted = y
	}
	if d.dirtyTokenLines == nil {
		d.dirtyTokenLines = make(map[int64]bool)
	}
	d.dirtyTokenLines[y] = true
	d.tokenizeDirty = true
}

// RefreshTokens re-tokenizes every line marked dirty since the last call,
// per spec §4.8 ("Tokenization runs only when the dirty flag is set").
func (d *Doc) RefreshTokens() {
	if !d.tokenizeDirty {
		return
	}
	for y := range d.dirtyTokenLines {
		if int(y) < len(d.lines) {
			d.tokenizer.RefreshLine(y, d.lines[y].Graphemes())
		} else {
			d.tokenizer.ForgetLine(y)
		}
		delete(d.dirtyTokenLines, y)
	}
	d.tokenizeDirty = false
}

func (d *Doc) shiftCursorsByInsert(start, end position.Position) {
	for i, c := range d.cursors {
		d.cursors[i].Position = position.ShiftByInsert(c.Position, start, end)
		if c.SelectionAnchor != nil {
			shifted := position.ShiftByInsert(*c.SelectionAnchor, start, end)
			d.cursors[i].SelectionAnchor = &shifted
		}
	}
}

func (d *Doc) shiftCursorsByDelete(start, end position.Position) {
	for i, c := range d.cursors {
		d.cursors[i].Position = position.ShiftByDelete(c.Position, start, end)
		if c.SelectionAnchor != nil {
			shifted := position.ShiftByDelete(*c.SelectionAnchor, start, end)
			d.cursors[i].SelectionAnchor = &shifted
		}
	}
}

// insertPrimitive performs the raw splice, shifts every cursor/anchor, and
// journals the inverse-producing action into recordInto. It never clears
// the redo history or snapshots cursors itself — callers decide that,
// since Undo/Redo need insertPrimitive without either side effect.
func (d *Doc) insertPrimitive(recordInto *history.History, at time.Time, start position.Position, text string) (position.Position, error) {
	start = position.ClampPosition(d, start)
	graphemes := splitGraphemes(text)

	curY, curX := start.Y, start.X
	for _, g := range graphemes {
		if g == "\n" {
			if d.kind == KindSingleLine {
				return position.Position{}, ErrNewlineNotAllowed
			}
			tail := d.pool.SplitAt(d.lines[curY], curX)
			d.lines = append(d.lines, nil)
			copy(d.lines[curY+2:], d.lines[curY+1:])
			d.lines[curY+1] = tail
			curY++
			curX = 0
			continue
		}
		d.lines[curY].InsertAt(curX, []string{g})
		curX++
	}

	end := position.Position{X: curX, Y: curY}
	d.shiftCursorsByInsert(start, end)

	d.version++
	d.saved = false
	d.markDirty(start.Y)

	if recordInto != nil {
		recordInto.PushInsert(at, start, end)
	}
	return end, nil
}

// deletePrimitive performs the raw splice, shifts every cursor/anchor, and
// journals the deleted graphemes plus a Delete action into recordInto.
func (d *Doc) deletePrimitive(recordInto *history.History, at time.Time, start, end position.Position) string {
	start = position.ClampPosition(d, start)
	end = position.ClampPosition(d, end)
	if end.Less(start) {
		start, end = end, start
	}

	var deleted []string
	if start.Y == end.Y {
		deleted = d.lines[start.Y].DeleteRange(start.X, end.X)
	} else {
		deleted = append(deleted, d.lines[start.Y].Graphemes()[start.X:]...)
		deleted = append(deleted, "\n")
		for y := start.Y + 1; y < end.Y; y++ {
			deleted = append(deleted, d.lines[y].Graphemes()...)
			deleted = append(deleted, "\n")
		}
		deleted = append(deleted, d.lines[end.Y].Graphemes()[:end.X]...)

		tail := d.pool.SplitAt(d.lines[end.Y], end.X)
		d.lines[start.Y].DeleteRange(start.X, int64(d.lines[start.Y].Len()))
		d.pool.Append(d.lines[start.Y], tail)

		for y := start.Y + 1; y <= end.Y; y++ {
			d.pool.Put(d.lines[y])
		}
		d.lines = append(d.lines[:start.Y+1], d.lines[end.Y+1:]...)
	}

	d.shiftCursorsByDelete(start, end)

	d.version++
	d.saved = false
	d.markDirty(start.Y)

	if recordInto != nil {
		recordInto.PushDelete(at, start, deleted)
	}

	text := ""
	for _, g := range deleted {
		text += g
	}
	return text
}

func (d *Doc) snapshotCursors(into *history.History, at time.Time) {
	for i, c := range d.cursors {
		into.PushSetCursor(at, i, historyPos(c.Position), historyAnchor(c.SelectionAnchor))
	}
}

func historyPos(p position.Position) history.Position {
	return history.Position{X: p.X, Y: p.Y}
}

func historyAnchor(p *position.Position) *history.Position {
	if p == nil {
		return nil
	}
	h := historyPos(*p)
	return &h
}

// Insert inserts text at start as a user-driven ("Done") edit: it clears
// the redo history, snapshots cursor topology for undo, splices the text
// in, and shifts every cursor/anchor per the shift-by-insert rule.
func (d *Doc) Insert(start position.Position, text string) (position.Position, error) {
	d.redoHist.Clear()
	now := d.now()
	d.snapshotCursors(d.undoHist, now)
	return d.insertPrimitive(d.undoHist, now, start, text)
}

// Delete deletes [start, end) as a user-driven ("Done") edit.
func (d *Doc) Delete(start, end position.Position) string {
	d.redoHist.Clear()
	now := d.now()
	d.snapshotCursors(d.undoHist, now)
	return d.deletePrimitive(d.undoHist, now, start, end)
}

// InsertAtCursors inserts the same text at every cursor, processing
// cursors from the bottom of the document upward so that earlier inserts
// never invalidate a not-yet-processed cursor's position; shift-by-insert
// then keeps every other cursor consistent automatically. All cursors'
// topology is snapshotted once, under a single timestamp, so the whole
// multi-cursor edit undoes as one transaction.
func (d *Doc) InsertAtCursors(text string) error {
	d.redoHist.Clear()
	now := d.now()
	d.snapshotCursors(d.undoHist, now)

	order := bottomUpCursorOrder(d.cursors)
	for _, idx := range order {
		start := d.cursors[idx].Position
		end, err := d.insertPrimitive(d.undoHist, now, start, text)
		if err != nil {
			return err
		}
		d.cursors[idx].Position = end
		d.cursors[idx].SelectionAnchor = nil
	}
	return nil
}

// DeleteBackwardWordAtCursors deletes, at every cursor, the word
// immediately before it (spec scenario 2). Cursors are processed bottom-up
// for the same reason as InsertAtCursors.
func (d *Doc) DeleteBackwardWordAtCursors() {
	d.redoHist.Clear()
	now := d.now()
	d.snapshotCursors(d.undoHist, now)

	order := bottomUpCursorOrder(d.cursors)
	for _, idx := range order {
		end := d.cursors[idx].Position
		start := position.MovePositionToNextWord(d, end, -1)
		d.deletePrimitive(d.undoHist, now, start, end)
		d.cursors[idx].Position = start
		d.cursors[idx].SelectionAnchor = nil
	}
}

func bottomUpCursorOrder(cursors []Cursor) []int {
	order := make([]int, len(cursors))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && cursors[order[j-1]].Position.Less(cursors[order[j]].Position) {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}
	return order
}
