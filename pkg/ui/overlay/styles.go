package overlay

import (
	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"})
	labelStyle = lipgloss.NewStyle().Width(5)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func noticeStyle(level feed.Level) lipgloss.Style {
	switch level {
	case feed.LevelError:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6E6E"})
	case feed.LevelWarn:
		return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B35C00", Dark: "#FFB86C"})
	default:
		return mutedStyle
	}
}
