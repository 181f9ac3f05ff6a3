// Package player contains the Bubble Tea model that drives a replay
// session: it pulls trace events in time order, applies each to the session
// registry, and paces delivery through the playback clock.
package player

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/p-doom/crowd-code-player/internal/config"
	"github.com/p-doom/crowd-code-player/internal/keys"
	"github.com/p-doom/crowd-code-player/internal/log"
	"github.com/p-doom/crowd-code-player/internal/replay"
	"github.com/p-doom/crowd-code-player/internal/trace"
)

// advanceMsg asks the model to apply the next trace event. The sequence
// number invalidates ticks scheduled before a pause or reload, so a stale
// timer can never double-advance playback.
type advanceMsg struct {
	seq int
}

// traceChangedMsg reports that the watched trace file was modified.
type traceChangedMsg struct{}

// Model is the replay player state.
type Model struct {
	events []trace.Event
	idx    int // next event to apply

	session *replay.Session
	clock   *replay.Clock

	keys         keys.KeyMap
	help         help.Model
	showHelpLine bool

	width  int
	height int

	frame     replay.Frame // last applied event's snapshot
	started   bool         // at least one event applied
	longPause bool         // currently holding the long-pause banner
	exhausted bool         // played past the last loaded event (follow mode)

	seq int // current advance-tick generation

	// Follow mode: reload events appended while the recording runs.
	follow    bool
	tracePath string
	changes   <-chan struct{}
}

// New creates a player over the given events.
func New(events []trace.Event, cfg config.Config) Model {
	return Model{
		events:       events,
		session:      replay.NewSession(),
		clock:        replay.NewClock(cfg.Speed, cfg.LongPauseThresholdMs),
		keys:         keys.DefaultKeyMap(),
		help:         help.New(),
		showHelpLine: cfg.UI.ShowHelpLine,
	}
}

// WithFollow attaches a trace watcher channel so playback picks up rows
// appended after loading. tracePath is re-read on each change signal.
func (m Model) WithFollow(tracePath string, changes <-chan struct{}) Model {
	m.follow = true
	m.tracePath = tracePath
	m.changes = changes
	return m
}

// Clock exposes the playback clock, mainly for tests.
func (m Model) Clock() *replay.Clock { return m.clock }

// Init implements tea.Model: apply the first event immediately.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{advanceNow(m.seq)}
	if m.follow && m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.started {
			m.session.Scroll(m.frame.File, m.frame.CursorLine, m.viewportHeight())
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case advanceMsg:
		return m.advance(msg)

	case traceChangedMsg:
		return m.reload()
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.clock.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.TogglePause):
		state := m.clock.TogglePause()
		log.Debug(log.CatUI, "Pause toggled", "state", state)
		if state == replay.StatePaused {
			// Invalidate the pending tick; nothing advances while paused.
			m.seq++
			return m, nil
		}
		if state == replay.StateRunning {
			// Resume picks up with the next event right away, like the
			// recorder's own player does.
			m.seq++
			return m, advanceNow(m.seq)
		}
		return m, nil

	case key.Matches(msg, m.keys.SpeedUp):
		m.clock.SpeedUp()
		return m, nil

	case key.Matches(msg, m.keys.SpeedDown):
		m.clock.SpeedDown()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		// The expanded help shrinks the content band; keep the cursor in it.
		if m.started {
			m.session.Scroll(m.frame.File, m.frame.CursorLine, m.viewportHeight())
		}
		return m, nil
	}

	return m, nil
}

// advance applies the next event and schedules the wait before the one
// after it. Exactly one file's state mutates per event, and the render
// snapshot is taken only after that mutation completes.
func (m Model) advance(msg advanceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || m.clock.State() != replay.StateRunning {
		return m, nil
	}

	if m.idx >= len(m.events) {
		return m.exhaust()
	}

	ev := m.events[m.idx]
	m.idx++

	m.frame = m.session.Apply(ev)
	m.session.Scroll(ev.File, m.frame.CursorLine, m.viewportHeight())
	m.started = true
	m.longPause = false

	if m.idx >= len(m.events) {
		return m.exhaust()
	}

	wait, longPause := m.clock.NextWait(ev.TimeMs, m.events[m.idx].TimeMs)
	m.longPause = longPause
	if longPause {
		log.Debug(log.CatReplay, "Compressing long pause",
			"gap_ms", m.events[m.idx].TimeMs-ev.TimeMs, "hold", wait)
	}
	m.seq++
	return m, tickAdvance(wait, m.seq)
}

// exhaust handles running past the last loaded event: follow mode idles
// until the watcher reports new rows, otherwise the session ends cleanly.
func (m Model) exhaust() (tea.Model, tea.Cmd) {
	if m.follow {
		m.exhausted = true
		return m, nil
	}
	m.clock.Stop()
	return m, tea.Quit
}

// reload re-reads the trace after a change signal and resumes playback if
// it had caught up with the recording.
func (m Model) reload() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForChange(m.changes)}

	events, err := trace.Load(m.tracePath)
	if err != nil {
		// The recorder may be mid-write; try again on the next signal.
		log.ErrorErr(log.CatWatcher, "Reloading trace failed", err, "path", m.tracePath)
		return m, tea.Batch(cmds...)
	}
	if len(events) > len(m.events) {
		log.Info(log.CatWatcher, "Trace grew", "events", len(events), "played", m.idx)
		m.events = events
		if m.exhausted && m.clock.State() == replay.StateRunning {
			m.exhausted = false
			m.seq++
			cmds = append(cmds, advanceNow(m.seq))
		}
	}
	return m, tea.Batch(cmds...)
}


