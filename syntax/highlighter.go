package syntax

import (
	"github.com/javanhut/ravencore/color"
	"github.com/javanhut/ravencore/pattern"
	"github.com/javanhut/ravencore/token"
)

// Lines is the minimal view over document content the highlighter needs,
// mirroring position.Lines' "take an interface, not a concrete Doc"
// convention so syntax never imports doc.
type Lines interface {
	LineCount() int
	LineGraphemes(y int64) []string
}

// Highlighter incrementally recomputes HighlightedLines for a Syntax over a
// Lines source, caching one HighlightedLine per document line.
type Highlighter struct {
	syn   *Syntax
	theme color.Theme
	lines []HighlightedLine
}

// NewHighlighter creates a Highlighter for the given language definition,
// painting with color.DefaultTheme() until SetTheme overrides it.
func NewHighlighter(syn *Syntax) *Highlighter {
	return &Highlighter{syn: syn, theme: color.DefaultTheme()}
}

// SetTheme swaps the color set future Update calls paint with. Already
// cached lines keep their old colors until recomputed.
func (h *Highlighter) SetTheme(th color.Theme) {
	h.theme = th
}

// Line returns the cached highlight for line y, or a zero value if it
// hasn't been computed yet.
func (h *Highlighter) Line(y int64) HighlightedLine {
	if int(y) >= len(h.lines) {
		return HighlightedLine{}
	}
	return h.lines[y]
}

// Update recomputes lines [startY, endY]. The caller (typically advancing
// Doc's highest-unhighlighted-line watermark to the viewport bottom each
// frame) is responsible for picking startY no later than the first line
// whose predecessor's UnfinishedRange changed; per spec §4.6 a line only
// needs recomputing when that happens, so a caller editing deep inside an
// already-highlighted region can pass a narrow range.
func (h *Highlighter) Update(lines Lines, startY, endY int64) {
	for int64(len(h.lines)) < int64(lines.LineCount()) {
		h.lines = append(h.lines, HighlightedLine{})
	}

	var prevUnfinished *int
	if startY > 0 {
		prevUnfinished = h.lines[startY-1].UnfinishedRange
	}

	for y := startY; y <= endY && y < int64(lines.LineCount()); y++ {
		g := lines.LineGraphemes(y)
		line := h.highlightLine(g, prevUnfinished)
		h.lines[y] = line
		prevUnfinished = line.UnfinishedRange
	}
}

// highlightLine scans one line's graphemes, resuming an in-progress range
// from the previous line if prevUnfinished names one.
func (h *Highlighter) highlightLine(g []string, prevUnfinished *int) HighlightedLine {
	var out HighlightedLine
	col := 0
	n := len(g)

	if prevUnfinished != nil {
		rangeIdx := *prevUnfinished
		r := h.syn.Ranges[rangeIdx]
		end, closed := scanRangeEnd(g, 0, r)
		fg, bg := themeColor(h.theme, r.Kind)
		out.push(Highlight{Start: 0, End: int64(end), Fg: fg, Bg: bg, Kind: r.Kind})
		col = end
		if !closed {
			idx := rangeIdx
			out.UnfinishedRange = &idx
			return out
		}
	}

	for col < n {
		if rangeIdx, m, ok := matchRangeStart(h.syn.Ranges, g, col); ok {
			r := h.syn.Ranges[rangeIdx]
			end, closed := scanRangeEnd(g, m.End, r)
			fg, bg := themeColor(h.theme, r.Kind)
			out.push(Highlight{Start: int64(col), End: int64(end), Fg: fg, Bg: bg, Kind: r.Kind})
			if !closed {
				idx := rangeIdx
				out.UnfinishedRange = &idx
				return out
			}
			col = end
			continue
		}

		if leadRune(g[col]) != 0 && token.IsIdentifierStart(leadRune(g[col])) {
			start := col
			end := col + 1
			for end < n && token.IsIdentifierContinue(leadRune(g[end])) {
				end++
			}
			word := join(g[start:end])
			kind := KindNormal
			if h.syn.Keywords[word] {
				kind = KindKeyword
			} else if h.syn.HasIdentifiers {
				kind = KindIdentifier
			}
			fg, bg := themeColor(h.theme, kind)
			out.push(Highlight{Start: int64(start), End: int64(end), Fg: fg, Bg: bg, Kind: kind})
			col = end
			continue
		}

		if tokIdx, matchEnd, ok := matchToken(h.syn.Tokens, g, col); ok {
			r := h.syn.Tokens[tokIdx]
			fg, bg := themeColor(h.theme, r.Kind)
			out.push(Highlight{Start: int64(col), End: int64(matchEnd), Fg: fg, Bg: bg, Kind: r.Kind})
			col = matchEnd
			continue
		}

		fg, bg := themeColor(h.theme, KindSymbol)
		out.push(Highlight{Start: int64(col), End: int64(col + 1), Fg: fg, Bg: bg, Kind: KindSymbol})
		col++
	}

	return out
}

// matchRangeStart tries each range's Start pattern at col in priority
// order, returning the first that matches exactly at col.
func matchRangeStart(ranges []SyntaxRange, g []string, col int) (int, pattern.PatternMatch, bool) {
	for i, r := range ranges {
		if m, ok := r.Start.MatchText(g, col); ok && m.Start == col {
			return i, m, true
		}
	}
	return 0, pattern.PatternMatch{}, false
}

func matchToken(tokens []SyntaxToken, g []string, col int) (int, int, bool) {
	for i, tk := range tokens {
		if m, ok := tk.Pattern.MatchText(g, col); ok && m.Start == col {
			return i, m.End, true
		}
	}
	return 0, 0, false
}

// scanRangeEnd scans forward from col looking for r.End (honoring r.Escape:
// a grapheme equal to Escape causes the following grapheme to be skipped
// unconditionally), returning the position just past the end match and
// true, or len(g) and false if the range runs off the end of the line
// unterminated.
func scanRangeEnd(g []string, col int, r SyntaxRange) (int, bool) {
	n := len(g)
	if r.SingleLine {
		return n, true
	}
	for col < n {
		if r.HasEsc && len(g[col]) > 0 && []rune(g[col])[0] == r.Escape {
			col += 2
			continue
		}
		if m, ok := r.End.MatchText(g, col); ok && m.Start == col {
			return m.End, true
		}
		col++
	}
	return n, false
}

func leadRune(g string) rune {
	if g == "" {
		return 0
	}
	return []rune(g)[0]
}

func join(gs []string) string {
	out := ""
	for _, g := range gs {
		out += g
	}
	return out
}
