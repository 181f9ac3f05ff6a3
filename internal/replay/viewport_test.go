package replay

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFollowCursor_CursorAboveViewScrollsUp(t *testing.T) {
	require.Equal(t, 3, FollowCursor(10, 3, 5))
}

func TestFollowCursor_CursorBelowViewScrollsDown(t *testing.T) {
	// cursor on line 20, viewport of 5: top must become 16 so line 20 is last
	require.Equal(t, 16, FollowCursor(0, 20, 5))
}

func TestFollowCursor_CursorInsideViewUnchanged(t *testing.T) {
	require.Equal(t, 10, FollowCursor(10, 12, 5))
	require.Equal(t, 10, FollowCursor(10, 10, 5))
	require.Equal(t, 10, FollowCursor(10, 14, 5))
}

func TestFollowCursor_NormalizesDegenerateInputs(t *testing.T) {
	require.Equal(t, 0, FollowCursor(-3, 0, 5), "negative scrollTop normalizes to 0")
	require.Equal(t, 0, FollowCursor(0, -2, 5), "negative cursor treated as line 0")
	require.Equal(t, 7, FollowCursor(0, 7, 0), "zero-height viewport behaves as height 1")
}

func TestTailScroll(t *testing.T) {
	require.Equal(t, 0, TailScroll(3, 10), "content shorter than viewport stays at top")
	require.Equal(t, 0, TailScroll(10, 10))
	require.Equal(t, 5, TailScroll(15, 10))
	require.Equal(t, 0, TailScroll(0, 10))
}

// Property: the cursor line always lands inside [scrollTop, scrollTop+height).
func TestProperty_FollowCursorKeepsCursorVisible(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scrollTop := rapid.IntRange(0, 1000).Draw(rt, "scrollTop")
		cursorLine := rapid.IntRange(0, 1000).Draw(rt, "cursorLine")
		height := rapid.IntRange(1, 100).Draw(rt, "height")

		got := FollowCursor(scrollTop, cursorLine, height)

		require.GreaterOrEqual(t, got, 0, "scrollTop invariant: never negative")
		require.GreaterOrEqual(t, cursorLine, got, "cursor must not be above the viewport")
		require.Less(t, cursorLine, got+height, "cursor must not be below the viewport")
	})
}

// Property: tail scroll never goes negative and always shows the last line.
func TestProperty_TailScrollShowsLastLine(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		totalLines := rapid.IntRange(0, 10000).Draw(rt, "totalLines")
		height := rapid.IntRange(1, 100).Draw(rt, "height")

		got := TailScroll(totalLines, height)

		require.GreaterOrEqual(t, got, 0)
		if totalLines > 0 {
			last := totalLines - 1
			require.GreaterOrEqual(t, last, got)
			require.Less(t, last, got+height)
		}
	})
}
