package token_test

import (
	"testing"

	"github.com/javanhut/ravencore/token"
	"github.com/stretchr/testify/require"
)

func graphemesOfString(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

func TestExtractIdentifiers(t *testing.T) {
	words := token.ExtractIdentifiers(graphemesOfString("foo.bar_baz(42, qux)"))
	require.Equal(t, []string{"foo", "bar_baz", "qux"}, words)
}

func TestTriePrefixTraversalInsertionOrder(t *testing.T) {
	tr := token.NewTrie()
	tr.Insert("bar")
	tr.Insert("baz")
	tr.Insert("ban")

	var got []string
	tr.Traverse("ba", func(w string) { got = append(got, w) })
	require.Equal(t, []string{"bar", "baz", "ban"}, got)
}

func TestTrieRemove(t *testing.T) {
	tr := token.NewTrie()
	tr.Insert("foo")
	tr.Remove("foo")

	var got []string
	tr.Traverse("f", func(w string) { got = append(got, w) })
	require.Empty(t, got)
}

func TestTokenizerRefreshLineDropsWordsNoLongerPresent(t *testing.T) {
	tk := token.NewTokenizer()
	tk.RefreshLine(0, graphemesOfString("alpha beta"))
	tk.RefreshLine(0, graphemesOfString("alpha"))

	var got []string
	tk.Trie().Traverse("", func(w string) { got = append(got, w) })
	require.Equal(t, []string{"alpha"}, got)
}

func TestTokenizerKeepsWordSharedAcrossLines(t *testing.T) {
	tk := token.NewTokenizer()
	tk.RefreshLine(0, graphemesOfString("shared"))
	tk.RefreshLine(1, graphemesOfString("shared"))
	tk.ForgetLine(0)

	var got []string
	tk.Trie().Traverse("shared", func(w string) { got = append(got, w) })
	require.Equal(t, []string{"shared"}, got)
}
