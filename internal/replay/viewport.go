package replay

// FollowCursor returns the scroll offset that keeps cursorLine inside the
// visible band [scrollTop, scrollTop+viewportHeight). The offset only moves
// when the cursor leaves the band, so unrelated edits don't jiggle the view.
func FollowCursor(scrollTop, cursorLine, viewportHeight int) int {
	if scrollTop < 0 {
		scrollTop = 0
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if cursorLine < 0 {
		cursorLine = 0
	}

	switch {
	case cursorLine < scrollTop:
		return cursorLine
	case cursorLine >= scrollTop+viewportHeight:
		return cursorLine - viewportHeight + 1
	default:
		return scrollTop
	}
}

// TailScroll returns the scroll offset that pins the last totalLines lines
// into a viewport of the given height, mimicking a live console that always
// shows its most recent output.
func TailScroll(totalLines, viewportHeight int) int {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if totalLines <= viewportHeight {
		return 0
	}
	return totalLines - viewportHeight
}
