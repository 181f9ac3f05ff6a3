package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Assignments(t *testing.T) {
	k := DefaultKeyMap()

	require.Equal(t, []string{" "}, k.TogglePause.Keys(), "pause should be bound to space")
	require.Equal(t, []string{"up", "k"}, k.SpeedUp.Keys())
	require.Equal(t, []string{"down", "j"}, k.SpeedDown.Keys())
	require.Equal(t, []string{"q", "ctrl+c"}, k.Quit.Keys())
	require.Equal(t, []string{"?"}, k.Help.Keys())
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	k := DefaultKeyMap()

	require.Equal(t, "pause/play", k.TogglePause.Help().Desc)
	require.Equal(t, "faster", k.SpeedUp.Help().Desc)
	require.Equal(t, "slower", k.SpeedDown.Help().Desc)
	require.Equal(t, "quit", k.Quit.Help().Desc)
}

func TestShortHelp_CoversPlaybackControls(t *testing.T) {
	k := DefaultKeyMap()
	short := k.ShortHelp()
	require.Len(t, short, 4)
}

func TestFullHelp_NonEmptyGroups(t *testing.T) {
	k := DefaultKeyMap()
	for _, group := range k.FullHelp() {
		require.NotEmpty(t, group)
	}
}
