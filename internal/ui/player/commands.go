package player

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// advanceNow delivers an advance message without waiting.
func advanceNow(seq int) tea.Cmd {
	return func() tea.Msg { return advanceMsg{seq: seq} }
}

// tickAdvance delivers an advance message after the clock-computed wait.
func tickAdvance(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{seq: seq}
	})
}

// waitForChange blocks on the watcher channel and converts a change signal
// into a message. Re-armed after every delivery.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return traceChangedMsg{}
	}
}
