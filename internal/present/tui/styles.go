package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/gemchat/internal/prompt"
)

type styles struct {
	nav        lipgloss.Style
	greeting   lipgloss.Style
	subtitle   lipgloss.Style
	card       lipgloss.Style
	cardActive lipgloss.Style
	question   lipgloss.Style
	heading    lipgloss.Style
	body       lipgloss.Style
	disclaimer lipgloss.Style
	status     lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.Color("69")
	muted := lipgloss.Color("245")
	return styles{
		nav:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1),
		greeting:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		subtitle:   lipgloss.NewStyle().Foreground(muted),
		card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		cardActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		question:   lipgloss.NewStyle().Bold(true),
		heading:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		body:       lipgloss.NewStyle(),
		disclaimer: lipgloss.NewStyle().Faint(true),
		status:     lipgloss.NewStyle().Foreground(muted),
	}
}

func cardIcon(c prompt.Card) string {
	switch c.Icon {
	case "compass":
		return "🧭"
	case "bulb":
		return "💡"
	case "message":
		return "💬"
	case "code":
		return "</>"
	default:
		return "•"
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
