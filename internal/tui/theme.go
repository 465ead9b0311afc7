package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor

	Title    lipgloss.Style
	Event    lipgloss.Style
	EventDim lipgloss.Style
	InputBox lipgloss.Style
	Footer   lipgloss.Style
}

func NewTheme() Theme {
	t := Theme{
		TextPrimary: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "245", Dark: "243"},
		Accent:      lipgloss.AdaptiveColor{Light: "63", Dark: "111"},
		Border:      lipgloss.AdaptiveColor{Light: "250", Dark: "238"},
	}
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Event = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.EventDim = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	return t
}
