package stepper

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/stepper/internal/config"
	"github.com/muurk/stepper/internal/ui"
)

const dismissHint = "enter to dismiss"

// zone is a half-open column range [x0, x1) on the control row.
type zone struct {
	x0, x1 int
}

func (z zone) contains(x int) bool {
	return x >= z.x0 && x < z.x1
}

// controlRow is the line holding the buttons and the field.
func (m Model) controlRow() int {
	if m.cfg.Label != "" {
		return 1
	}
	return 0
}

func glyph(icon config.IconSpec, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1).
		Render(icon.Glyph)
}

// segments renders the control row as left control, field, right control.
func (m Model) segments() [3]string {
	fieldStyle := lipgloss.NewStyle().Padding(0, 1)

	if m.mode == ModeEditing {
		return [3]string{
			glyph(m.cfg.CancelIcon, m.cfg.CancelIcon.Color),
			fieldStyle.Underline(true).Render(m.input.View()),
			glyph(m.cfg.ConfirmIcon, m.cfg.ConfirmIcon.Color),
		}
	}

	buttonGlyph := func(b Button) string {
		color := b.Icon().Color
		if !b.Enabled() {
			color = m.cfg.DisabledColor
		}
		return glyph(b.Icon(), color)
	}

	valueColor := lipgloss.Color(m.cfg.ValueColor)
	if m.mode == ModeRejected {
		valueColor = ui.ErrorColor
	}

	return [3]string{
		buttonGlyph(m.Decrement),
		fieldStyle.Foreground(valueColor).Render(m.Draft()),
		buttonGlyph(m.Increment),
	}
}

// zones returns the column ranges of the control row segments.
func (m Model) zones() (left, field, right zone) {
	seg := m.segments()
	w0 := lipgloss.Width(seg[0])
	w1 := lipgloss.Width(seg[1])
	w2 := lipgloss.Width(seg[2])

	left = zone{0, w0}
	field = zone{w0, w0 + w1}
	right = zone{w0 + w1, w0 + w1 + w2}
	return left, field, right
}

// labelStyle approximates opacity with the faint attribute, the only
// transparency a terminal offers.
func (m Model) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.cfg.LabelColor)).
		Faint(m.cfg.LabelOpacity < 0.5)
}

// View renders the editor.
func (m Model) View() string {
	var rows []string

	if m.cfg.Label != "" {
		rows = append(rows, m.labelStyle().Render(m.cfg.Label))
	}

	seg := m.segments()
	rows = append(rows, seg[0]+seg[1]+seg[2])

	if m.alert.Visible {
		rows = append(rows, ui.RenderAlertBox(m.alert.Title, m.alert.Message, dismissHint, ui.AlertWidth))
	}

	if m.ShowHelp {
		rows = append(rows, ui.HelpStyle.Render(m.Help.View(m.KeyMap.forMode(m.mode, m.alert.Visible))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
