package replay

import (
	"strings"

	"github.com/p-doom/crowd-code-player/internal/trace"
)

// FileKind tags how a file's content evolves during replay. The kind is
// selected once, when an identifier is first seen, so the append-only vs
// patch-based split is structural rather than a string comparison on every
// event.
type FileKind int

const (
	// KindRegular is an editable document mutated by range patches.
	KindRegular FileKind = iota
	// KindTerminal is the recorder's append-only output stream.
	KindTerminal
)

// FileState owns the reconstructed content and scroll position for one file
// identifier. States are created lazily on first reference and live for the
// rest of the session.
type FileState struct {
	Kind      FileKind
	Content   string
	ScrollTop int
}

// Lines splits the content into display lines.
func (fs *FileState) Lines() []string {
	return strings.Split(fs.Content, "\n")
}

// Frame is the render-ready snapshot handed to the UI after one event has
// been applied. Content is fully mutated before the frame is produced, so
// a renderer never observes a partial write.
type Frame struct {
	File       string
	Kind       FileKind
	Content    string
	CursorLine int
	CursorCol  int
	TimeMs     int64
	Label      string
}

// Session is the owned registry of per-file replay state. A single actor
// (the player model) drives it; no locking is needed.
type Session struct {
	files map[string]*FileState
}

// NewSession returns an empty session registry.
func NewSession() *Session {
	return &Session{files: make(map[string]*FileState)}
}

// State returns the state for a file identifier, creating it on first
// reference.
func (s *Session) State(file string) *FileState {
	fs, ok := s.files[file]
	if !ok {
		kind := KindRegular
		if file == trace.TerminalFile {
			kind = KindTerminal
		}
		fs = &FileState{Kind: kind}
		s.files[file] = fs
	}
	return fs
}

// Len returns the number of files seen so far.
func (s *Session) Len() int { return len(s.files) }

// Apply mutates exactly one file's state for the given event and returns
// the resulting render snapshot.
//
// Terminal events bypass range replacement entirely: decoded text plus a
// newline is appended and the recorded offset/length are ignored, modelling
// a live console rather than an editable buffer. Regular events go through
// ApplyChange with its clamping and padding rules.
func (s *Session) Apply(ev trace.Event) Frame {
	fs := s.State(ev.File)

	switch fs.Kind {
	case KindTerminal:
		fs.Content += DecodeEscapes(ev.Text) + "\n"
	default:
		fs.Content = ApplyChange(fs.Content, ev.RangeOffset, ev.RangeLength, ev.Text)
	}

	// The cursor sits at the end of the applied text: the recorded offset
	// plus the decoded insertion, which is where an editor leaves the caret
	// after typing. A pure deletion keeps the cursor at the offset itself.
	cursor := ev.RangeOffset
	if cursor < 0 {
		cursor = 0
	}
	cursor += len(DecodeEscapes(ev.Text))
	line, col := OffsetToLineCol(fs.Content, cursor)
	return Frame{
		File:       ev.File,
		Kind:       fs.Kind,
		Content:    fs.Content,
		CursorLine: line,
		CursorCol:  col,
		TimeMs:     ev.TimeMs,
		Label:      ev.Type,
	}
}

// Scroll recomputes and stores the scroll offset for a file given the
// cursor position and the current viewport height, returning the new top
// line. Terminal streams always tail; regular files follow the cursor.
func (s *Session) Scroll(file string, cursorLine, viewportHeight int) int {
	fs := s.State(file)

	if fs.Kind == KindTerminal {
		fs.ScrollTop = TailScroll(len(fs.Lines()), viewportHeight)
	} else {
		fs.ScrollTop = FollowCursor(fs.ScrollTop, cursorLine, viewportHeight)
	}
	return fs.ScrollTop
}
