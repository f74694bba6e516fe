package color_test

import (
	"testing"

	"github.com/javanhut/ravencore/color"
	"github.com/stretchr/testify/require"
)

func TestPalette256BaseBlackAndWhite(t *testing.T) {
	p := color.NewPalette256()
	require.Equal(t, color.RGB8{0, 0, 0}, p[0])
	require.Equal(t, color.RGB8{255, 255, 255}, p[15])
}

func TestPalette256CubeCorner(t *testing.T) {
	p := color.NewPalette256()
	// index 16 is cube corner (0,0,0); 231 is cube corner (5,5,5).
	require.Equal(t, color.RGB8{0, 0, 0}, p[16])
	require.Equal(t, color.RGB8{255, 255, 255}, p[231])
}

func TestPalette256GrayscaleRamp(t *testing.T) {
	p := color.NewPalette256()
	require.Equal(t, color.RGB8{8, 8, 8}, p[232])
	require.Equal(t, color.RGB8{238, 238, 238}, p[255])
}

func TestResolveIndexedRGBAndDefault(t *testing.T) {
	p := color.NewPalette256()
	fallback := color.RGB8{1, 2, 3}

	require.Equal(t, p[5], p.Resolve(color.Indexed(5), fallback))
	require.Equal(t, color.RGB8{10, 20, 30}, p.Resolve(color.RGB(10, 20, 30), fallback))
	require.Equal(t, fallback, p.Resolve(color.Default(), fallback))
}
