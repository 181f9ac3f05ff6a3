// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // File content
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Help text, footers

	// Semantic color names - Status
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Long-pause banner
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Status bar colors
	StatusBarBgColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#2D3436"}
	StatusBarFgColor = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#FFFFFF"}

	// StatusBarStyle renders the one-line playback status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(StatusBarFgColor).
			Background(StatusBarBgColor)

	// CursorStyle highlights the cell under the replayed cursor.
	CursorStyle = lipgloss.NewStyle().Reverse(true)

	// PausedStyle renders the PAUSED indicator.
	PausedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

	// BannerStyle renders the long-pause banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}).
			Background(StatusWarningColor)

	// HelpStyle renders the fixed help line.
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// ErrorStyle renders fatal error messages.
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
)

// ApplyTheme overrides the default palette with user-configured hex colors.
// Empty strings leave the corresponding default in place.
func ApplyTheme(statusBar, cursor, banner, muted string) {
	if statusBar != "" {
		StatusBarStyle = StatusBarStyle.Background(lipgloss.Color(statusBar))
	}
	if cursor != "" {
		CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(cursor))
	}
	if banner != "" {
		BannerStyle = BannerStyle.Background(lipgloss.Color(banner))
	}
	if muted != "" {
		HelpStyle = HelpStyle.Foreground(lipgloss.Color(muted))
	}
}
