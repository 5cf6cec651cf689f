package theme

import (
	"github.com/charmbracelet/lipgloss"

	"usagebar/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(14)
)

// Details panel styles
var (
	DetailDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			PaddingLeft(4)

	DetailItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	DetailItemStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TooltipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Foreground(ColorNormal).
			Padding(0, 1)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusStyle returns the status element style for a colour hint
func StatusStyle(hint domain.ColorHint) lipgloss.Style {
	bg := ColorStatusNeutral
	switch hint {
	case domain.ColorWarning:
		bg = ColorStatusWarning
	case domain.ColorError:
		bg = ColorStatusError
	}
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(ColorHighlight).
		Padding(0, 1)
}

// TmuxColor returns the tmux colour name used for a hint in the status line
func TmuxColor(hint domain.ColorHint) string {
	switch hint {
	case domain.ColorWarning:
		return "colour" + string(ColorStatusWarning)
	case domain.ColorError:
		return "colour" + string(ColorStatusError)
	}
	return "default"
}
