// Package replay implements the event-replay engine: patch application,
// offset-to-position mapping, viewport tracking, and the playback clock
// that paces event delivery.
package replay

import "strings"

// DecodeEscapes converts the literal two-character escape sequences the
// recorder writes (backslash-n, backslash-r) into real control characters.
// The trace stores edit text escaped so a single edit never spans CSV rows.
func DecodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	return s
}

// ApplyChange replaces the half-open range [offset, offset+length) of
// content with the decoded text and returns the new content.
//
// Recorded traces are best-effort captures, so out-of-range patches are
// normalized rather than rejected: an offset past the end pads the content
// with spaces up to the offset, a negative length becomes a pure insertion,
// and a length running past the end is clamped to the remaining characters.
func ApplyChange(content string, offset, length int, text string) string {
	text = DecodeEscapes(text)

	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		content += strings.Repeat(" ", offset-len(content))
	}

	if length < 0 {
		length = 0
	}
	if remaining := len(content) - offset; length > remaining {
		length = remaining
	}

	return content[:offset] + text + content[offset+length:]
}
