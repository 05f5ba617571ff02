package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/stepper/internal/binding"
	"github.com/muurk/stepper/internal/config"
	"github.com/muurk/stepper/internal/logging"
	"github.com/muurk/stepper/internal/stepper"
	"github.com/muurk/stepper/internal/ui"
)

const (
	indent        = 2
	maxGaugeWidth = 40
)

// demoModel hosts one editor full screen. It owns the binding's initial
// value so "r" can write to the binding from outside the editor.
type demoModel struct {
	editor  stepper.Model
	value   *binding.Int
	cfg     config.Config
	initial int
	gauge   bool
	width   int

	status        string
	statusIsError bool
}

func newDemoModel(value *binding.Int, check stepper.ActionCheck, cfg config.Config, initial int, gauge bool) (demoModel, error) {
	editor, err := stepper.New(value, check, cfg)
	if err != nil {
		return demoModel{}, err
	}

	m := demoModel{
		editor:  editor,
		value:   value,
		cfg:     cfg,
		initial: initial,
		gauge:   gauge,
		width:   ui.GetTerminalWidth(),
	}
	m.editor.OffsetX = indent
	m.editor.OffsetY = m.editorTop()
	return m, nil
}

// editorTop is the screen row of the editor's first line: the title, the
// optional gauge, then a blank line.
func (m demoModel) editorTop() int {
	if m.gauge {
		return 3
	}
	return 2
}

func (m demoModel) Init() tea.Cmd {
	return m.editor.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.editor.Close()
			return m, tea.Quit
		}

		// Plain letters belong to the text field while it is being edited.
		if m.editor.Mode() == stepper.ModeDisplay && !m.editor.Alert().Visible {
			switch msg.String() {
			case "q":
				m.editor.Close()
				return m, tea.Quit
			case "r":
				m.value.Set(m.initial)
				var cmd tea.Cmd
				m.editor, cmd = m.editor.Update(stepper.ValueChangedMsg{})
				m.status = ""
				return m, cmd
			case "y":
				m.copyValue()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *demoModel) copyValue() {
	text := stepper.Format(m.value.Get(), m.cfg.Unit)
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warn("Clipboard write failed", zap.Error(err))
		m.status = fmt.Sprintf("%s Clipboard error: %v", ui.FailureMarker, err)
		m.statusIsError = true
		return
	}
	m.status = fmt.Sprintf("%s Copied %s", ui.SuccessMarker, text)
	m.statusIsError = false
}

func (m demoModel) View() string {
	pad := lipgloss.NewStyle().PaddingLeft(indent)

	rows := []string{ui.HeaderTitleStyle.Render("Stepper")}
	if m.gauge {
		width := m.width - 2*indent
		if width > maxGaugeWidth {
			width = maxGaugeWidth
		}
		rows = append(rows, pad.Render(ui.RenderGauge(m.value.Get(), m.cfg.Minimum, m.cfg.Maximum, width)))
	}
	rows = append(rows,
		"",
		pad.Render(m.editor.View()),
		pad.Render(ui.HelpStyle.Render("r reset • y copy • q quit")),
	)

	if m.status != "" {
		style := ui.ResultValueStyle
		if m.statusIsError {
			style = ui.ErrorMessageStyle
		}
		rows = append(rows, pad.Render(style.Render(m.status)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
