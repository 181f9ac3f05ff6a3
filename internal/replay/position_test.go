package replay

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestOffsetToLineCol_ZeroOffset(t *testing.T) {
	for _, content := range []string{"", "abc", "a\nb\nc", "\n\n"} {
		line, col := OffsetToLineCol(content, 0)
		require.Equal(t, 0, line, "offset 0 is always line 0 (content %q)", content)
		require.Equal(t, 0, col, "offset 0 is always column 0 (content %q)", content)
	}
}

func TestOffsetToLineCol_SingleLine(t *testing.T) {
	line, col := OffsetToLineCol("hello", 3)
	require.Equal(t, 0, line)
	require.Equal(t, 3, col)
}

func TestOffsetToLineCol_AfterNewline(t *testing.T) {
	// "ab\ncd": offset 3 is the 'c' at the start of line 1
	line, col := OffsetToLineCol("ab\ncd", 3)
	require.Equal(t, 1, line)
	require.Equal(t, 0, col)

	line, col = OffsetToLineCol("ab\ncd", 5)
	require.Equal(t, 1, line)
	require.Equal(t, 2, col)
}

func TestOffsetToLineCol_OnNewline(t *testing.T) {
	// The newline itself belongs to the line it terminates.
	line, col := OffsetToLineCol("ab\ncd", 2)
	require.Equal(t, 0, line)
	require.Equal(t, 2, col)
}

func TestOffsetToLineCol_ClampsOutOfRange(t *testing.T) {
	line, col := OffsetToLineCol("ab", 100)
	require.Equal(t, 0, line)
	require.Equal(t, 2, col, "offset past the end clamps to content length")

	line, col = OffsetToLineCol("ab", -5)
	require.Equal(t, 0, line)
	require.Equal(t, 0, col)
}

// Property: line is monotonic non-decreasing as offset increases.
func TestProperty_LineMonotonicInOffset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		content := rapid.StringN(-1, 200, -1).Draw(rt, "content")

		prevLine := 0
		for offset := 0; offset <= len(content); offset++ {
			line, col := OffsetToLineCol(content, offset)
			require.GreaterOrEqual(t, line, prevLine, "line must never decrease")
			require.GreaterOrEqual(t, col, 0, "column is never negative")
			prevLine = line
		}
	})
}
