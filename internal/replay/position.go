package replay

import "strings"

// OffsetToLineCol converts a linear character offset into a zero-based
// (line, column) pair. Offsets outside [0, len(content)] are clamped.
//
// The line is the number of newlines strictly before the offset; the column
// is the distance from the nearest preceding newline. Both are computed in a
// single scan of the prefix, once per event.
func OffsetToLineCol(content string, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	prefix := content[:offset]
	line = strings.Count(prefix, "\n")
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		col = offset - i - 1
	} else {
		col = offset
	}
	return line, col
}
