package color_test

import (
	"testing"

	"github.com/javanhut/ravencore/color"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeMatchesHistoricalIndices(t *testing.T) {
	th := color.DefaultTheme()
	require.Equal(t, color.Indexed(5), th.Keyword)
	require.Equal(t, color.Indexed(2), th.String)
	require.Equal(t, color.Indexed(8), th.Comment)
	require.Equal(t, color.Indexed(3), th.Number)
	require.Equal(t, color.Indexed(6), th.Identifier)
	require.Equal(t, color.Indexed(4), th.Symbol)
}
