package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmOverwrite warns that path already exists and asks whether to
// replace it. Only "y" or "yes" (any case) confirms; anything else,
// including EOF, declines.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	title := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(AlertMarker + "  " + path + " already exists")
	fmt.Fprintln(out, title)

	prompt := lipgloss.NewStyle().Foreground(WarningColor).Render("Overwrite it? [y/N]: ")
	fmt.Fprint(out, prompt)

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("Cancelled."))
	return false
}
