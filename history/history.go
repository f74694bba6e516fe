// Package history implements the undo/redo action journal described in
// spec §4.3: a flat sum-type event log plus a parallel buffer of deleted
// characters, grouped into time-proximate transactions. Grounded on the
// teacher's ActionHistory-shaped field in src/parser/parser.go
// (CursorState save/restore around alt-screen swaps) generalized from a
// single saved snapshot to a full event log, per spec §9's guidance that
// cursor/action journaling "should be implemented as a flat sum-type event
// log ... not as per-operation objects owning heap strings."
package history

import "time"

// Kind identifies which primitive action a History entry records.
type Kind int

const (
	KindSetCursor Kind = iota
	KindInsert
	KindDelete
)

// Position mirrors position.Position without importing that package,
// keeping history a leaf dependency the way the spec's "flat event log"
// guidance intends; doc converts at the boundary.
type Position struct {
	X int64
	Y int64
}

// Action is one primitive edit or cursor snapshot, tagged with the
// monotonic time it occurred so transactions can be grouped by proximity.
type Action struct {
	Kind Kind
	At   time.Time

	// SetCursor fields.
	CursorIndex int
	Cursor      Position
	Anchor      *Position

	// Insert/Delete fields.
	Start Position
	End   Position

	// Delete additionally records the offset into the history's shared
	// deleted-chars buffer where this action's run begins.
	CharsStart int
}

// History is an undo or redo journal: a sequence of Actions plus the side
// buffer of deleted character runs that Delete actions reference by
// offset.
type History struct {
	Actions     []Action
	DeletedRuns []string // one grapheme per entry
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Clear empties the history (used when starting a new undo/redo cycle, or
// when a fresh edit clears the redo history).
func (h *History) Clear() {
	h.Actions = h.Actions[:0]
	h.DeletedRuns = h.DeletedRuns[:0]
}

// PushSetCursor records a cursor snapshot.
func (h *History) PushSetCursor(at time.Time, index int, cur Position, anchor *Position) {
	h.Actions = append(h.Actions, Action{
		Kind:        KindSetCursor,
		At:          at,
		CursorIndex: index,
		Cursor:      cur,
		Anchor:      anchor,
	})
}

// PushInsert records an insertion covering [start, end).
func (h *History) PushInsert(at time.Time, start, end Position) {
	h.Actions = append(h.Actions, Action{
		Kind:  KindInsert,
		At:    at,
		Start: start,
		End:   end,
	})
}

// PushDelete records a deletion of the given graphemes starting at start;
// the graphemes are appended to DeletedRuns and the action remembers the
// offset they begin at so they can later be sliced back out.
func (h *History) PushDelete(at time.Time, start Position, deleted []string) {
	charsStart := len(h.DeletedRuns)
	h.DeletedRuns = append(h.DeletedRuns, deleted...)
	h.Actions = append(h.Actions, Action{
		Kind:       KindDelete,
		At:         at,
		Start:      start,
		CharsStart: charsStart,
	})
}

// PopTransaction pops the most recent time-grouped transaction: the
// trailing run of actions whose timestamps lie within window of the
// previously popped action's timestamp. The first popped action always
// comes off regardless of window (it defines the transaction's time
// origin). Actions are returned oldest-first.
func (h *History) PopTransaction(window time.Duration) []Action {
	n := len(h.Actions)
	if n == 0 {
		return nil
	}

	last := h.Actions[n-1].At
	cut := n - 1
	for cut > 0 {
		prev := h.Actions[cut-1]
		if last.Sub(prev.At) > window || prev.At.Sub(last) > window {
			break
		}
		last = prev.At
		cut--
	}

	popped := make([]Action, n-cut)
	copy(popped, h.Actions[cut:])
	h.Actions = h.Actions[:cut]

	// DeletedRuns is left as it is: the runs of popped Delete actions stay
	// in the buffer until the caller consumes them and truncates explicitly
	// via TruncateDeletedRuns, as undo/redo do.
	return popped
}

// DeletedRunSlice returns the deleted graphemes from charsStart to the end
// of the buffer, which is always where the most recent Delete action's run
// lives.
func (h *History) DeletedRunSlice(charsStart int) []string {
	if charsStart < 0 || charsStart > len(h.DeletedRuns) {
		return nil
	}
	out := make([]string, len(h.DeletedRuns)-charsStart)
	copy(out, h.DeletedRuns[charsStart:])
	return out
}

// TruncateDeletedRuns truncates the deleted-chars buffer back to
// charsStart after its run has been consumed by undo/redo.
func (h *History) TruncateDeletedRuns(charsStart int) {
	if charsStart < 0 || charsStart > len(h.DeletedRuns) {
		return
	}
	h.DeletedRuns = h.DeletedRuns[:charsStart]
}

// Len reports how many actions are currently journaled.
func (h *History) Len() int {
	return len(h.Actions)
}
