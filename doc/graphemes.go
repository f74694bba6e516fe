package doc

import "github.com/rivo/uniseg"

// splitGraphemes segments s into user-perceived characters (grapheme
// clusters), the atomic unit spec §3 Position arithmetic and insertion
// operate over. Grounded on phoenix-tui/phoenix/core's use of
// github.com/rivo/uniseg for the same purpose.
func splitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	state := -1
	remaining := s
	for len(remaining) > 0 {
		var cluster string
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		out = append(out, cluster)
	}
	return out
}
