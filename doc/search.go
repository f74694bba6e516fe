package doc

import "github.com/javanhut/ravencore/position"

// flatten returns every grapheme in the document as one circular sequence
// (lines joined by a virtual "\n" grapheme) plus, for each line, the index
// at which that line's content begins in the sequence. Search operates
// over this flattened view so it can step across line boundaries and wrap
// around the document end without special-casing line edges at each step.
func (d *Doc) flatten() (chars []string, lineStart []int64) {
	lineStart = make([]int64, len(d.lines)+1)
	for y, l := range d.lines {
		lineStart[y] = int64(len(chars))
		chars = append(chars, l.Graphemes()...)
		if y < len(d.lines)-1 {
			chars = append(chars, "\n")
		}
	}
	lineStart[len(d.lines)] = int64(len(chars))
	return chars, lineStart
}

func (d *Doc) flatIndex(lineStart []int64, p position.Position) int64 {
	return lineStart[p.Y] + p.X
}

func (d *Doc) unflatten(lineStart []int64, idx int64, total int64) position.Position {
	idx = ((idx % total) + total) % total
	y := 0
	for y+1 < len(lineStart) && lineStart[y+1] <= idx {
		y++
	}
	return position.Position{X: idx - lineStart[y], Y: int64(y)}
}

// Search performs a wrap-around linear scan for needle starting at from,
// per spec §4.4. It advances one grapheme position at a time; on a full
// wrap without a match it returns (Position{}, false).
//
// This implements the same observable contract as the spec's match_index
// state machine (advance on match, reset-and-rewind-by-one on mismatch):
// both produce the first occurrence encountered while scanning forward (or
// backward) from from with wraparound, including overlapping matches. A
// direct circular substring comparison is used here because it is simpler
// to verify correct and the rewind-on-mismatch trick exists only to
// achieve this same "don't skip overlapping matches" behavior.
func (d *Doc) Search(needle string, from position.Position, reverse bool) (position.Position, bool) {
	needleG := splitGraphemes(needle)
	if len(needleG) == 0 {
		return position.Position{}, false
	}

	chars, lineStart := d.flatten()
	total := int64(len(chars))
	if total == 0 {
		return position.Position{}, false
	}

	start := d.flatIndex(lineStart, position.ClampPosition(d, from))
	step := int64(1)
	if reverse {
		step = -1
	}

	idx := start
	for i := int64(0); i < total; i++ {
		if matchesAt(chars, idx, needleG, total) {
			return d.unflatten(lineStart, idx, total), true
		}
		idx += step
	}
	return position.Position{}, false
}

func matchesAt(chars []string, idx int64, needle []string, total int64) bool {
	for i, g := range needle {
		pos := ((idx + int64(i)) % total + total) % total
		if chars[pos] != g {
			return false
		}
	}
	return true
}
