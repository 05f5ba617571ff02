package stepper

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/stepper/internal/binding"
	"github.com/muurk/stepper/internal/config"
	"github.com/muurk/stepper/internal/logging"
)

// Mode is the presentation state of the editor.
type Mode int

const (
	// ModeDisplay shows the formatted value between the stepper buttons.
	ModeDisplay Mode = iota
	// ModeEditing shows the raw number in a text field between the cancel
	// and confirm controls.
	ModeEditing
	// ModeRejected shows a confirmed draft that failed validation. The
	// value is unchanged; dismissing the alert resumes editing the draft.
	ModeRejected
)

func (m Mode) String() string {
	switch m {
	case ModeDisplay:
		return "display"
	case ModeEditing:
		return "editing"
	case ModeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Alert is the modal message shown when a draft is rejected.
type Alert struct {
	Visible bool
	Title   string
	Message string
}

// ValueChangedMsg tells the editor the bound value was set from outside.
// Hosts that call Set from a subscriber or a goroutine send it with
// Program.Send so the view refreshes.
type ValueChangedMsg struct{}

// Model is the bounded value editor: a numeric field between decrement
// and increment buttons, editable inline.
type Model struct {
	cfg   config.Config
	value *binding.Int
	check ActionCheck

	mode     Mode
	input    textinput.Model
	rejected string // draft kept in ModeRejected
	lastGood int    // value when the current edit started
	seen     uint64 // binding version last reconciled
	alert    Alert

	Decrement Button
	Increment Button

	KeyMap   KeyMap
	Help     help.Model
	ShowHelp bool

	// Screen position of the editor's top-left corner, for mouse hits.
	OffsetX int
	OffsetY int
}

// New creates an editor bound to value. opts override individual fields
// of cfg. The only error is an invalid configuration.
func New(value *binding.Int, check ActionCheck, cfg config.Config, opts ...config.Option) (Model, error) {
	if value == nil {
		return Model{}, errors.New("stepper: nil value binding")
	}
	cfg = cfg.With(opts...)
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("invalid stepper configuration: %w", err)
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "0"
	input.CharLimit = 20
	input.Width = fieldWidth(cfg)

	return Model{
		cfg:       cfg,
		value:     value,
		check:     check,
		mode:      ModeDisplay,
		input:     input,
		seen:      value.Version(),
		Decrement: NewButton(value, cfg, cfg.DecrementIcon, Decrement, check),
		Increment: NewButton(value, cfg, cfg.IncrementIcon, Increment, check),
		KeyMap:    DefaultKeyMap(),
		Help:      help.New(),
		ShowHelp:  true,
	}, nil
}

// fieldWidth fits the longest bound plus room for the cursor.
func fieldWidth(cfg config.Config) int {
	w := len(Format(cfg.Minimum, ""))
	if n := len(Format(cfg.Maximum, "")); n > w {
		w = n
	}
	return w + 1
}

// Config returns the configuration the editor was built with.
func (m Model) Config() config.Config { return m.cfg }

// Value returns the committed value.
func (m Model) Value() int { return m.value.Get() }

// Mode returns the current presentation mode.
func (m Model) Mode() Mode { return m.mode }

// Editing reports whether the text field has focus.
func (m Model) Editing() bool { return m.mode == ModeEditing }

// Alert returns the alert state.
func (m Model) Alert() Alert { return m.alert }

// Draft returns the text the field currently shows. Outside edit mode it
// is the formatted committed value, except for a rejected draft.
func (m Model) Draft() string {
	switch m.mode {
	case ModeEditing:
		return m.input.Value()
	case ModeRejected:
		return m.rejected
	default:
		return Format(m.value.Get(), m.cfg.Unit)
	}
}

// Focus enters edit mode with the unit stripped from the shown text.
func (m *Model) Focus() tea.Cmd {
	if m.mode == ModeEditing {
		return nil
	}
	m.Decrement.Stop()
	m.Increment.Stop()

	draft := m.rejected
	if m.mode == ModeDisplay {
		draft = StripUnit(m.Draft(), m.cfg.Unit)
	}

	m.lastGood = m.value.Get()
	m.mode = ModeEditing
	m.rejected = ""
	m.alert = Alert{}
	m.input.SetValue(draft)
	m.input.CursorEnd()
	return m.input.Focus()
}

// SetDraft replaces the text being edited. It has no effect outside edit
// mode.
func (m *Model) SetDraft(text string) {
	if m.mode != ModeEditing {
		return
	}
	m.input.SetValue(text)
	m.input.CursorEnd()
}

// Cancel leaves edit mode without validating; the value is untouched.
func (m *Model) Cancel() {
	if m.mode != ModeEditing {
		return
	}
	m.input.Blur()
	m.mode = ModeDisplay
}

// Confirm leaves edit mode and validates the draft. A rejected draft
// raises the alert and leaves the value unchanged.
func (m *Model) Confirm() {
	if m.mode != ModeEditing {
		return
	}
	m.commit(true)
}

// Blur leaves edit mode without an explicit confirm. A rejected draft is
// replaced by its fallback; the alert appears only if the configuration
// asks for it.
func (m *Model) Blur() {
	if m.mode != ModeEditing {
		return
	}
	m.commit(false)
}

func (m *Model) commit(confirmed bool) {
	draft := m.input.Value()
	m.input.Blur()
	m.alert = Alert{}

	v, err := Validate(draft, m.cfg, m.lastGood)
	if err == nil {
		m.setValue("edit", v)
		m.mode = ModeDisplay
		return
	}

	var ve *ValidationError
	errors.As(err, &ve)
	logging.LogRejected(draft, ve.Kind.String(), confirmed, ve.Candidate)

	if confirmed {
		m.mode = ModeRejected
		m.rejected = draft
		m.showAlert(ve.Message)
		return
	}

	m.setValue("autocorrect", ve.Candidate)
	m.mode = ModeDisplay
	if m.cfg.ShowAlertOnAutoCorrect {
		m.showAlert(ve.Message)
	}
}

func (m *Model) setValue(source string, v int) {
	old := m.value.Get()
	m.value.Set(v)
	m.seen = m.value.Version()
	if old != v {
		logging.LogCommit(source, old, v)
	}
}

func (m *Model) showAlert(message string) {
	m.alert = Alert{Visible: true, Title: AlertTitle, Message: message}
}

// DismissAlert hides the alert. After a rejected confirm it returns to
// edit mode with the rejected draft.
func (m *Model) DismissAlert() tea.Cmd {
	if !m.alert.Visible {
		return nil
	}
	m.alert = Alert{}
	if m.mode == ModeRejected {
		return m.Focus()
	}
	return nil
}

// Close stops both buttons' repeats. Call it when the editor is removed.
func (m *Model) Close() {
	m.Decrement.Stop()
	m.Increment.Stop()
}

// sync reconciles with writes to the binding made since the last update.
// A rejected draft is discarded when the value changes underneath it.
func (m *Model) sync() {
	v := m.value.Version()
	if v == m.seen {
		return
	}
	m.seen = v
	if m.mode == ModeRejected {
		m.mode = ModeDisplay
		m.rejected = ""
	}
}

// Init returns no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor and its buttons.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m.sync()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case longPressMsg, repeatTickMsg:
		var decCmd, incCmd tea.Cmd
		m.Decrement, decCmd = m.Decrement.Update(msg)
		m.Increment, incCmd = m.Increment.Update(msg)
		cmd = tea.Batch(decCmd, incCmd)

	case ValueChangedMsg:
		// reconciled by sync

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	default:
		if m.mode == ModeEditing {
			m.input, cmd = m.input.Update(msg)
		}
	}

	m.sync()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.alert.Visible {
		if key.Matches(msg, m.KeyMap.Dismiss) {
			return m.DismissAlert()
		}
		return nil
	}

	if m.mode == ModeEditing {
		switch {
		case key.Matches(msg, m.KeyMap.Confirm):
			m.Confirm()
		case key.Matches(msg, m.KeyMap.Cancel):
			m.Cancel()
		case key.Matches(msg, m.KeyMap.Leave):
			m.Blur()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return cmd
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Decrement):
		m.Decrement.Tap()
	case key.Matches(msg, m.KeyMap.Increment):
		m.Increment.Tap()
	case key.Matches(msg, m.KeyMap.Edit):
		return m.Focus()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionRelease {
		m.Decrement.Release()
		m.Increment.Release()
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.alert.Visible {
		return m.DismissAlert()
	}

	x, y := msg.X-m.OffsetX, msg.Y-m.OffsetY
	left, field, right := m.zones()
	onRow := y == m.controlRow()

	if m.mode == ModeEditing {
		switch {
		case onRow && left.contains(x):
			m.Cancel()
		case onRow && right.contains(x):
			m.Confirm()
		case onRow && field.contains(x):
			// Clicks inside the field keep focus.
		default:
			m.Blur()
		}
		return nil
	}

	switch {
	case onRow && left.contains(x):
		return m.Decrement.Press()
	case onRow && right.contains(x):
		return m.Increment.Press()
	case onRow && field.contains(x):
		return m.Focus()
	}
	return nil
}
