package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/p-doom/crowd-code-player/internal/replay"
	"github.com/p-doom/crowd-code-player/internal/ui/styles"
)

const longPauseBanner = "Long pause detected. User might be googling, thinking or might have gone for a coffee..."

// viewportHeight is the number of content rows: total height minus the
// status bar and the rendered bottom line. Derived from the same bottom
// line the view draws, so the scroll math and the visible band always
// agree, even with the expanded help open.
func (m Model) viewportHeight() int {
	h := m.height - 1 - lipgloss.Height(m.renderBottomLine())
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderContent(m.viewportHeight()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderBottomLine())
	return b.String()
}

// renderContent draws the active file's visible lines with the replay
// cursor, plus the long-pause banner when one is being held.
func (m Model) renderContent(rows int) string {
	out := make([]string, rows)

	if m.started {
		fs := m.session.State(m.frame.File)
		lines := fs.Lines()
		for j := 0; j < rows; j++ {
			idx := fs.ScrollTop + j
			if idx >= len(lines) {
				continue
			}
			row := lines[idx]
			if fs.Kind == replay.KindRegular && idx == m.frame.CursorLine {
				row = renderCursorLine(row, m.frame.CursorCol)
			}
			out[j] = ansi.Truncate(row, m.width, "")
		}
	}

	if m.longPause && rows > 0 {
		banner := truncate.String(longPauseBanner, uint(m.width)) //nolint:gosec // G115: width is a terminal dimension
		out[rows-1] = styles.BannerStyle.Render(runewidth.FillRight(banner, m.width))
	}

	return strings.Join(out, "\n")
}

// renderCursorLine draws the cell under the cursor in reverse video. A
// cursor past the end of the line sits on a synthesized space, like a real
// editor's end-of-line cursor.
func renderCursorLine(line string, col int) string {
	runes := []rune(line)
	if col < 0 {
		col = 0
	}
	if col < len(runes) {
		return string(runes[:col]) +
			styles.CursorStyle.Render(string(runes[col])) +
			string(runes[col+1:])
	}
	return line + strings.Repeat(" ", col-len(runes)) + styles.CursorStyle.Render(" ")
}

// renderStatusBar draws the playback status line: active file, elapsed
// timeline position, event label, and speed factor.
func (m Model) renderStatusBar() string {
	file, label := "-", "-"
	var elapsed float64
	if m.started {
		file = m.frame.File
		label = m.frame.Label
		elapsed = float64(m.frame.TimeMs) / 1000.0
	}

	text := fmt.Sprintf("File: %s | Time: %.1fs | Event: %s | Speed: %.1fx",
		file, elapsed, label, m.clock.Speed())
	text = truncate.String(text, uint(m.width)) //nolint:gosec // G115: width is a terminal dimension
	return styles.StatusBarStyle.Render(runewidth.FillRight(text, m.width))
}

// renderBottomLine draws the help line, or the PAUSED indicator while
// playback is suspended.
func (m Model) renderBottomLine() string {
	if m.clock.State() == replay.StatePaused {
		return styles.PausedStyle.Render(runewidth.FillRight("PAUSED", m.width))
	}
	if !m.showHelpLine {
		return ""
	}
	return styles.HelpStyle.Render(m.help.View(m.keys))
}
