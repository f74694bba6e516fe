package encoding_test

import (
	"testing"

	"github.com/javanhut/ravencore/encoding"
	"github.com/stretchr/testify/require"
)

func TestParsePositionEncodingDefaultsToUtf16(t *testing.T) {
	require.Equal(t, encoding.UTF16, encoding.ParsePositionEncoding(""))
	require.Equal(t, encoding.UTF16, encoding.ParsePositionEncoding("utf-16"))
	require.Equal(t, encoding.UTF8, encoding.ParsePositionEncoding("utf-8"))
}

func TestEncodeColumnAscii(t *testing.T) {
	line := []rune("hello")
	require.Equal(t, int64(3), encoding.EncodeColumn(encoding.UTF16, line, 3))
	require.Equal(t, int64(3), encoding.EncodeColumn(encoding.UTF8, line, 3))
}

func TestEncodeColumnAstralPlaneCountsAsTwoUnits(t *testing.T) {
	// U+1F600 (grinning face emoji) is outside the BMP: 2 UTF-16 units.
	line := []rune{'a', 0x1F600, 'b'}
	require.Equal(t, int64(1), encoding.EncodeColumn(encoding.UTF16, line, 1))
	require.Equal(t, int64(3), encoding.EncodeColumn(encoding.UTF16, line, 2))
	require.Equal(t, int64(4), encoding.EncodeColumn(encoding.UTF16, line, 3))
	require.Equal(t, int64(2), encoding.EncodeColumn(encoding.UTF8, line, 2))
}

func TestDecodeColumnIsEncodeColumnInverse(t *testing.T) {
	line := []rune{'a', 0x1F600, 'b'}
	for x := int64(0); x <= int64(len(line)); x++ {
		units := encoding.EncodeColumn(encoding.UTF16, line, x)
		require.Equal(t, x, encoding.DecodeColumn(encoding.UTF16, line, units))
	}
}

func TestDecodeColumnClampsToLineLength(t *testing.T) {
	line := []rune("hi")
	require.Equal(t, int64(2), encoding.DecodeColumn(encoding.UTF16, line, 999))
}
