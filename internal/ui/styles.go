package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - borders, stepper glyphs
	SuccessColor = lipgloss.Color("#43BF6D") // Green - confirm
	ErrorColor   = lipgloss.Color("#FF5555") // Red - cancel, alerts
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - disabled, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	AlertWidth       = 44  // Width of the modal alert box
)

var (
	// HeaderTitleStyle is for the title line of a header box
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path under the title
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Bounds:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Width(14).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// AlertTitleStyle is for the title of the modal alert
	AlertTitleStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// AlertMessageStyle is for the alert body
	AlertMessageStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// AlertHintStyle is for the dismiss hint at the bottom of the alert
	AlertHintStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// HelpStyle is for the key help line
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingTop(1)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	AlertMarker   = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// AlertBoxStyle returns the border style for the modal alert
func AlertBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2)
}

// SuccessBoxStyle returns the border style for success result boxes
func SuccessBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width-2).
		Padding(1, 2)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(1, 2)
}
