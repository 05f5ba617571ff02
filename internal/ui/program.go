package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer writes styled blocks to a writer. CLI commands that do not run
// the interactive program print through it.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a header box
func (p *Printer) PrintHeader(h *Header) {
	p.Println(h.SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error result box
func (p *Printer) PrintError(title string, err error) {
	p.Println(RenderErrorBox(title, err, p.width))
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Param, width int) string {
	lines := []string{
		SuccessTitleStyle.Render(SuccessMarker + "  " + title),
	}
	if len(details) > 0 {
		lines = append(lines, "")
	}
	for _, d := range details {
		lines = append(lines, ResultKeyStyle.Render(d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box
func RenderErrorBox(title string, err error, width int) string {
	lines := []string{
		ErrorTitleStyle.Render(FailureMarker + "  " + title),
	}
	if err != nil {
		lines = append(lines, "", ErrorMessageStyle.Render("Error: "+err.Error()))
	}
	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderAlertBox renders the modal alert shown over the stepper when an
// entry is rejected.
func RenderAlertBox(title, message, hint string, width int) string {
	lines := []string{
		AlertTitleStyle.Render(AlertMarker + "  " + title),
		"",
		AlertMessageStyle.Width(width - 8).Render(message),
	}
	if hint != "" {
		lines = append(lines, "", AlertHintStyle.Render(hint))
	}
	return AlertBoxStyle(width).Render(strings.Join(lines, "\n"))
}
