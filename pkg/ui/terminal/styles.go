package terminal

import (
	"github.com/arthur-debert/pathte/pkg/paths"
	"github.com/charmbracelet/lipgloss"
)

var (
	windowsColor = lipgloss.AdaptiveColor{Light: "#1F5FBF", Dark: "#6CA6FF"}
	unixColor    = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#7BD88F"}
	wslColor     = lipgloss.AdaptiveColor{Light: "#B35C00", Dark: "#FFB86C"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6E6E"}

	inputStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	badgeStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// formatColor is the badge color of a path format.
func formatColor(f paths.Format) lipgloss.TerminalColor {
	switch f {
	case paths.Windows:
		return windowsColor
	case paths.Unix:
		return unixColor
	case paths.WSL:
		return wslColor
	default:
		return mutedColor
	}
}

// badge renders a format label such as "WSL" in its color.
func badge(f paths.Format) string {
	return badgeStyle.Foreground(formatColor(f)).Render(f.Label())
}
