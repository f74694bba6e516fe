package term_test

import (
	"testing"

	"github.com/javanhut/ravencore/term"
	"github.com/stretchr/testify/require"
)

func TestCellWidthASCII(t *testing.T) {
	require.Equal(t, 1, term.CellWidth('a'))
	require.Equal(t, 1, term.CellWidth('!'))
}

func TestCellWidthWideCJK(t *testing.T) {
	require.Equal(t, 2, term.CellWidth('中'))
	require.Equal(t, 2, term.CellWidth('あ'))
}

func TestCellWidthCombiningMarkIsZero(t *testing.T) {
	require.Equal(t, 0, term.CellWidth('́')) // combining acute accent
}

func TestCellWidthNulIsZero(t *testing.T) {
	require.Equal(t, 0, term.CellWidth('\x00'))
}
