package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colours for command output, matching the browser palette.
const (
	ColorPrimary   = lipgloss.Color("#F879C0")
	ColorMuted     = lipgloss.Color("#626A86")
	ColorAccent    = lipgloss.Color("#bc91f3")
	ColorValue     = lipgloss.Color("#ffb86c")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorError     = lipgloss.Color("#ff5555")
	ColorHighlight = lipgloss.Color("#88DEEB")
)

var (
	// TitleStyle is for the module title and section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorValue)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// UnusedStyle dims samples and patterns the song never plays.
	UnusedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Faint(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// field renders one "label value" line
func field(label string, value any) string {
	return LabelStyle.Render(label) + ValueStyle.Render(fmt.Sprint(value))
}
