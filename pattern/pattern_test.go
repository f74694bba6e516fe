package pattern_test

import (
	"testing"

	"github.com/javanhut/ravencore/pattern"
	"github.com/stretchr/testify/require"
)

func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func TestLiteralMatch(t *testing.T) {
	p, err := pattern.Compile("foo")
	require.NoError(t, err)
	m, ok := p.MatchText(graphemes("foobar"), 0)
	require.True(t, ok)
	require.Equal(t, pattern.PatternMatch{Start: 0, End: 3}, m)
}

func TestGreedyPlus(t *testing.T) {
	p, err := pattern.Compile("%a+")
	require.NoError(t, err)
	m, ok := p.MatchText(graphemes("abc123"), 0)
	require.True(t, ok)
	require.Equal(t, pattern.PatternMatch{Start: 0, End: 3}, m)
}

func TestFrugalStar(t *testing.T) {
	p, err := pattern.Compile("/%*%.-%*/")
	require.NoError(t, err)
	m, ok := p.MatchText(graphemes("/* a */ /* b */"), 0)
	require.True(t, ok)
	require.Equal(t, 0, m.Start)
	require.Equal(t, 7, m.End)
}

func TestCharacterClassNegated(t *testing.T) {
	p, err := pattern.Compile("[^abc]+")
	require.NoError(t, err)
	m, ok := p.MatchText(graphemes("xyzabc"), 0)
	require.True(t, ok)
	require.Equal(t, pattern.PatternMatch{Start: 0, End: 3}, m)
}

func TestOptionalModifier(t *testing.T) {
	p, err := pattern.Compile("ab?c")
	require.NoError(t, err)
	_, ok := p.MatchText(graphemes("ac"), 0)
	require.True(t, ok)
	_, ok = p.MatchText(graphemes("abc"), 0)
	require.True(t, ok)
}

func TestCaptureGroupNarrowsMatch(t *testing.T) {
	p, err := pattern.Compile("#(%w+)")
	require.NoError(t, err)
	m, ok := p.MatchText(graphemes("#tag rest"), 0)
	require.True(t, ok)
	require.Equal(t, pattern.PatternMatch{Start: 1, End: 4}, m)
}

func TestModifierWithoutPrecedingAtomIsError(t *testing.T) {
	_, err := pattern.Compile("+abc")
	require.Error(t, err)
}

func TestUnterminatedClassIsError(t *testing.T) {
	_, err := pattern.Compile("[abc")
	require.Error(t, err)
}

func TestTrailingEscapeIsError(t *testing.T) {
	_, err := pattern.Compile("abc%")
	require.Error(t, err)
}

func TestMismatchedCaptureIsError(t *testing.T) {
	_, err := pattern.Compile("(a(b)")
	require.Error(t, err)
}

func TestNoMatchReturnsFalse(t *testing.T) {
	p, err := pattern.Compile("xyz")
	require.NoError(t, err)
	_, ok := p.MatchText(graphemes("abc"), 0)
	require.False(t, ok)
}
