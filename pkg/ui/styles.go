package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	successColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	pathColor    = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
)

var (
	verbStyle = lipgloss.NewStyle().Bold(true)

	pathStyle = lipgloss.NewStyle().Foreground(pathColor)

	arrowStyle = lipgloss.NewStyle().Foreground(mutedColor)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	dryRunStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)

// badgeStyle returns the pterm style of a status badge
func badgeStyle(status Status) *pterm.Style {
	switch status {
	case StatusLinked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusPending:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusMerged:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	case StatusStale:
		return pterm.NewStyle(pterm.BgMagenta, pterm.FgWhite)
	case StatusConflict, StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
