package trace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p-doom/crowd-code-player/internal/trace"
)

const sampleCSV = `Time,File,RangeOffset,RangeLength,Text,Type
0,main.go,0,0,package main,content
500,main.go,12,0,\n,keystroke
250,TERMINAL,0,0,$ go run .,output
`

func TestParse_SortsByTime(t *testing.T) {
	events, err := trace.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, events, 3)

	require.Equal(t, int64(0), events[0].TimeMs)
	require.Equal(t, int64(250), events[1].TimeMs)
	require.Equal(t, int64(500), events[2].TimeMs)
	require.Equal(t, trace.TerminalFile, events[1].File)
}

func TestParse_StableAmongTies(t *testing.T) {
	csv := `Time,File,RangeOffset,RangeLength,Text,Type
100,a.go,0,0,first,edit
100,a.go,0,0,second,edit
100,a.go,0,0,third,edit
`
	events, err := trace.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "third"},
		[]string{events[0].Text, events[1].Text, events[2].Text},
		"rows sharing a timestamp keep their recorded order")
}

func TestParse_ColumnOrderIndependent(t *testing.T) {
	csv := `File,Type,Time,Text,RangeLength,RangeOffset
a.go,edit,42,hi,3,7
`
	events, err := trace.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(42), events[0].TimeMs)
	require.Equal(t, "a.go", events[0].File)
	require.Equal(t, 7, events[0].RangeOffset)
	require.Equal(t, 3, events[0].RangeLength)
	require.Equal(t, "hi", events[0].Text)
}

func TestParse_MissingTextIsEmpty(t *testing.T) {
	csv := `Time,File,RangeOffset,RangeLength
0,a.go,0,5
`
	events, err := trace.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Empty(t, events[0].Text, "absent Text column is an empty string, never an error")
}

func TestParse_ShortRowIsNormalized(t *testing.T) {
	csv := `Time,File,RangeOffset,RangeLength,Text,Type
0,a.go,0,0
`
	events, err := trace.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Empty(t, events[0].Text)
	require.Empty(t, events[0].Type)
}

func TestParse_BadNumbersBecomeZero(t *testing.T) {
	csv := `Time,File,RangeOffset,RangeLength,Text,Type
oops,a.go,x,y,hi,edit
`
	events, err := trace.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(0), events[0].TimeMs)
	require.Equal(t, 0, events[0].RangeOffset)
	require.Equal(t, 0, events[0].RangeLength)
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	csv := `Time,File,Text
0,a.go,hi
`
	_, err := trace.Parse(strings.NewReader(csv))
	require.Error(t, err)
	require.Contains(t, err.Error(), "RangeOffset")
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := trace.Parse(strings.NewReader(""))
	require.Error(t, err)
	require.Contains(t, err.Error(), "header")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := trace.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err, "unreadable trace is the one fatal condition")
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	events, err := trace.Load(path)
	require.NoError(t, err)
	require.Len(t, events, 3)
}

func TestEvent_IsTerminal(t *testing.T) {
	require.True(t, trace.Event{File: "TERMINAL"}.IsTerminal())
	require.False(t, trace.Event{File: "terminal"}.IsTerminal(), "identifier match is exact")
}
