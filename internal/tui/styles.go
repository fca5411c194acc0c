package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	fgColor     = lipgloss.Color("#E6E6E6")
	mutedColor  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentColor = lipgloss.Color("#7C3AED")
	frameColor  = lipgloss.Color("#243141")
	hoverColor  = lipgloss.Color("#FFA500")
	errColor    = lipgloss.Color("#EF4444")

	appStyle   = lipgloss.NewStyle().Foreground(fgColor)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frameColor).Padding(0, 1)
	popupStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	hoverStyle = lipgloss.NewStyle().Foreground(hoverColor)
	errStyle   = lipgloss.NewStyle().Foreground(errColor)
)

// statusStyle renders error statuses in red.
func statusStyle(status string) lipgloss.Style {
	if strings.Contains(status, "error: ") {
		return errStyle
	}
	return dimStyle
}
