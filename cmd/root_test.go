package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p-doom/crowd-code-player/internal/trace"
)

// TestMissingTrace_LoadFails verifies the condition that aborts a session
// before the replay loop ever starts: an unreadable trace file.
func TestMissingTrace_LoadFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	_, err := os.Stat(missing)
	require.True(t, os.IsNotExist(err), "expected trace to not exist")

	_, err = trace.Load(missing)
	require.Error(t, err, "expected Load to fail without a trace file")
}

// TestValidTrace_LoadSucceeds verifies the happy path the root command
// takes before handing events to the player.
func TestValidTrace_LoadSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	data := "Time,File,RangeOffset,RangeLength,Text,Type\n0,main.go,0,0,hi,edit\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	events, err := trace.Load(path)
	require.NoError(t, err)
	require.Len(t, events, 1)
}
