package syntax_test

import (
	"testing"

	"github.com/javanhut/ravencore/color"
	"github.com/javanhut/ravencore/syntax"
	"github.com/javanhut/ravencore/syntax/lang"
	"github.com/stretchr/testify/require"
)

type fakeLines struct {
	lines [][]string
}

func (f fakeLines) LineCount() int { return len(f.lines) }
func (f fakeLines) LineGraphemes(y int64) []string { return f.lines[y] }

func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func TestKeywordHighlighted(t *testing.T) {
	lines := fakeLines{lines: [][]string{graphemes("func main")}}
	h := syntax.NewHighlighter(lang.Go())
	h.Update(lines, 0, 0)

	line := h.Line(0)
	require.NotEmpty(t, line.Highlights)
	require.Equal(t, syntax.KindKeyword, line.Highlights[0].Kind)
	require.Equal(t, int64(0), line.Highlights[0].Start)
	require.Equal(t, int64(4), line.Highlights[0].End)
}

func TestLineCommentDoesNotCarryToNextLine(t *testing.T) {
	lines := fakeLines{lines: [][]string{
		graphemes("// comment"),
		graphemes("code"),
	}}
	h := syntax.NewHighlighter(lang.Go())
	h.Update(lines, 0, 1)

	require.Nil(t, h.Line(0).UnfinishedRange)
	line1 := h.Line(1)
	require.NotEmpty(t, line1.Highlights)
	require.NotEqual(t, syntax.KindComment, line1.Highlights[0].Kind)
}

func TestBlockCommentCarriesAcrossLines(t *testing.T) {
	lines := fakeLines{lines: [][]string{
		graphemes("/* start"),
		graphemes("middle */ code"),
	}}
	h := syntax.NewHighlighter(lang.Go())
	h.Update(lines, 0, 1)

	line0 := h.Line(0)
	require.NotNil(t, line0.UnfinishedRange)
	require.Equal(t, syntax.KindComment, line0.Highlights[0].Kind)

	line1 := h.Line(1)
	require.Nil(t, line1.UnfinishedRange)
	require.Equal(t, syntax.KindComment, line1.Highlights[0].Kind)
	require.Equal(t, int64(9), line1.Highlights[0].End) // "middle */" is 9 graphemes
}

func TestStringLiteralEscapeSkipsClosingQuote(t *testing.T) {
	lines := fakeLines{lines: [][]string{graphemes(`"a\"b"`)}}
	h := syntax.NewHighlighter(lang.Go())
	h.Update(lines, 0, 0)

	line := h.Line(0)
	require.Equal(t, syntax.KindString, line.Highlights[0].Kind)
	require.Equal(t, int64(6), line.Highlights[0].End)
}

func TestNumberToken(t *testing.T) {
	lines := fakeLines{lines: [][]string{graphemes("x := 42")}}
	h := syntax.NewHighlighter(lang.Go())
	h.Update(lines, 0, 0)

	line := h.Line(0)
	var sawNumber bool
	for _, hl := range line.Highlights {
		if hl.Kind == syntax.KindNumber {
			sawNumber = true
		}
	}
	require.True(t, sawNumber)
}

func TestSQLKeyword(t *testing.T) {
	lines := fakeLines{lines: [][]string{graphemes("SELECT * FROM t")}}
	h := syntax.NewHighlighter(lang.SQL())
	h.Update(lines, 0, 0)

	line := h.Line(0)
	require.Equal(t, syntax.KindKeyword, line.Highlights[0].Kind)
}

func TestSetThemeChangesFutureHighlightColors(t *testing.T) {
	lines := fakeLines{lines: [][]string{graphemes("func")}}
	h := syntax.NewHighlighter(lang.Go())

	custom := color.DefaultTheme()
	custom.Keyword = color.RGB(200, 0, 0)
	h.SetTheme(custom)
	h.Update(lines, 0, 0)

	line := h.Line(0)
	require.Equal(t, color.RGB(200, 0, 0), line.Highlights[0].Fg)
}
