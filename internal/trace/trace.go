// Package trace loads recorded coding-session logs. A trace is a CSV file
// where each row captures one text edit or one chunk of terminal output,
// stamped with the session-relative time it happened.
package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/p-doom/crowd-code-player/internal/log"
)

// TerminalFile is the distinguished identifier for the recorder's terminal
// output stream. Rows targeting it carry console output, not file edits.
const TerminalFile = "TERMINAL"

// Event is one recorded edit or terminal-output action.
type Event struct {
	TimeMs      int64  // session-relative timestamp in milliseconds
	File        string // target file identifier, or TerminalFile
	RangeOffset int    // zero-based character offset where the edit begins
	RangeLength int    // number of characters the edit replaces
	Text        string // replacement text, escapes still encoded
	Type        string // display-only label from the recorder
}

// IsTerminal reports whether the event targets the terminal output stream.
func (e Event) IsTerminal() bool { return e.File == TerminalFile }

// Required trace columns. Text and Type are optional; rows missing them are
// normalized rather than rejected.
var requiredColumns = []string{"Time", "File", "RangeOffset", "RangeLength"}

// Load reads a trace file and returns its events sorted by time ascending,
// preserving the original row order among equal timestamps. A missing or
// unreadable file is the only fatal condition; malformed individual rows
// are normalized defensively (this is offline reconstruction of already
// captured data, aborting helps nobody).
func Load(path string) ([]Event, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the user-supplied trace file
	if err != nil {
		return nil, fmt.Errorf("opening trace %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	events, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading trace %s: %w", path, err)
	}

	log.Debug(log.CatTrace, "Loaded trace", "path", path, "events", len(events))
	return events, nil
}

// Parse decodes events from CSV data. The header row maps column names to
// positions, so column order in the file doesn't matter.
func Parse(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty trace: missing header row")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("trace header missing %q column", name)
		}
	}

	var events []Event
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		events = append(events, parseRow(cols, record))
	}

	// Stable: rows sharing a timestamp keep their recorded order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].TimeMs < events[j].TimeMs
	})
	return events, nil
}

func parseRow(cols map[string]int, record []string) Event {
	return Event{
		TimeMs:      parseInt64(field(cols, record, "Time")),
		File:        field(cols, record, "File"),
		RangeOffset: parseInt(field(cols, record, "RangeOffset")),
		RangeLength: parseInt(field(cols, record, "RangeLength")),
		Text:        field(cols, record, "Text"),
		Type:        field(cols, record, "Type"),
	}
}

// field returns the named column's value, or "" when the column is absent
// or the row is too short.
func field(cols map[string]int, record []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	return int(parseInt64(s))
}
