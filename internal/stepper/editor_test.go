package stepper

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/stepper/internal/binding"
	"github.com/muurk/stepper/internal/config"
)

func newTestEditor(t *testing.T, value int, opts ...config.Option) (Model, *binding.Int) {
	t.Helper()
	v := binding.NewInt(value)
	base := config.Default().With(config.WithBounds(0, 10))
	m, err := New(v, allow, base, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m, v
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	v := binding.NewInt(0)
	if _, err := New(v, allow, config.Default(), config.WithBounds(10, 0)); err == nil {
		t.Error("New() with inverted bounds should fail")
	}
	if _, err := New(nil, allow, config.Default()); err == nil {
		t.Error("New() with a nil binding should fail")
	}
}

func TestFocusStripsUnit(t *testing.T) {
	m, _ := newTestEditor(t, 5, config.WithUnit("%"))

	if m.Draft() != "5%" {
		t.Fatalf("display draft = %q, want 5%%", m.Draft())
	}
	m.Focus()
	if !m.Editing() || m.Draft() != "5" {
		t.Errorf("after Focus: editing = %v, draft = %q", m.Editing(), m.Draft())
	}
}

func TestConfirmValid(t *testing.T) {
	m, v := newTestEditor(t, 5, config.WithUnit("%"))

	m.Focus()
	m.SetDraft("7")
	m.Confirm()

	if v.Get() != 7 {
		t.Errorf("value = %d, want 7", v.Get())
	}
	if m.Mode() != ModeDisplay || m.Draft() != "7%" {
		t.Errorf("mode = %v, draft = %q", m.Mode(), m.Draft())
	}
	if m.Alert().Visible {
		t.Error("no alert expected for a valid entry")
	}
}

func TestConfirmAboveMaximum(t *testing.T) {
	m, v := newTestEditor(t, 5)

	m.Focus()
	m.SetDraft("15")
	m.Confirm()

	alert := m.Alert()
	if !alert.Visible || alert.Message != "Must be at most 10." {
		t.Fatalf("alert = %+v", alert)
	}
	if alert.Title != AlertTitle {
		t.Errorf("alert title = %q", alert.Title)
	}
	if v.Get() != 5 {
		t.Errorf("confirmed invalid entry changed the value to %d", v.Get())
	}
	if m.Editing() {
		t.Error("edit mode should exit when the alert is shown")
	}
	if m.Mode() != ModeRejected || m.Draft() != "15" {
		t.Errorf("mode = %v, draft = %q, want rejected 15", m.Mode(), m.Draft())
	}

	// Dismissing resumes editing the rejected text.
	m.DismissAlert()
	if !m.Editing() || m.Draft() != "15" {
		t.Errorf("after dismiss: editing = %v, draft = %q", m.Editing(), m.Draft())
	}
	m.SetDraft("9")
	m.Confirm()
	if v.Get() != 9 {
		t.Errorf("retry: value = %d, want 9", v.Get())
	}
}

func TestConfirmBelowMinimum(t *testing.T) {
	m, v := newTestEditor(t, 5, config.WithBounds(2, 10), config.WithUnit("kg"))

	m.Focus()
	m.SetDraft("1")
	m.Confirm()

	if got := m.Alert().Message; got != "Must be at least 2kg." {
		t.Errorf("alert message = %q", got)
	}
	if v.Get() != 5 {
		t.Errorf("value = %d, want 5", v.Get())
	}
}

func TestConfirmNotANumber(t *testing.T) {
	m, v := newTestEditor(t, 5)

	m.Focus()
	m.SetDraft("abc")
	m.Confirm()

	if got := m.Alert().Message; got != MessageNotANumber {
		t.Errorf("alert message = %q", got)
	}
	if v.Get() != 5 {
		t.Errorf("value = %d, want 5", v.Get())
	}
}

func TestBlurInvalidAutocorrects(t *testing.T) {
	tests := []struct {
		name      string
		draft     string
		showAlert bool
		want      int
		wantMsg   string
	}{
		{"Not a number falls back to pre-edit value", "abc", false, 5, ""},
		{"Not a number with alert policy", "abc", true, 5, MessageNotANumber},
		{"Above maximum clamps", "50", false, 10, ""},
		{"Below minimum clamps", "-50", false, 0, ""},
		{"Above maximum with alert policy", "50", true, 10, "Must be at most 10."},
		{"Empty falls back", "", false, 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, v := newTestEditor(t, 5, config.WithShowAlertOnAutoCorrect(tt.showAlert))

			m.Focus()
			m.SetDraft(tt.draft)
			m.Blur()

			if v.Get() != tt.want {
				t.Errorf("value = %d, want %d", v.Get(), tt.want)
			}
			if m.Mode() != ModeDisplay || m.Draft() != Format(tt.want, "") {
				t.Errorf("mode = %v, draft = %q", m.Mode(), m.Draft())
			}
			alert := m.Alert()
			if alert.Visible != tt.showAlert {
				t.Errorf("alert visible = %v, want %v", alert.Visible, tt.showAlert)
			}
			if tt.showAlert && alert.Message != tt.wantMsg {
				t.Errorf("alert message = %q, want %q", alert.Message, tt.wantMsg)
			}

			// Dismissing an autocorrect alert stays in display mode.
			m.DismissAlert()
			if m.Editing() || m.Alert().Visible {
				t.Error("dismissing an autocorrect alert should not re-enter edit mode")
			}
		})
	}
}

func TestBlurNeverLeavesRange(t *testing.T) {
	for _, draft := range []string{"", "x", "-1", "11", "1e3", "999999", "-999999", "3", "+7"} {
		m, v := newTestEditor(t, 10)
		m.Focus()
		m.SetDraft(draft)
		m.Blur()
		if v.Get() < 0 || v.Get() > 10 {
			t.Errorf("draft %q left value %d out of range", draft, v.Get())
		}
	}
}

func TestCancelRestoresDraft(t *testing.T) {
	m, v := newTestEditor(t, 5, config.WithUnit("%"))

	m.Focus()
	m.SetDraft("8")
	m.Cancel()

	if v.Get() != 5 {
		t.Errorf("value = %d, want 5", v.Get())
	}
	if m.Mode() != ModeDisplay || m.Draft() != "5%" {
		t.Errorf("mode = %v, draft = %q", m.Mode(), m.Draft())
	}
	if m.Alert().Visible {
		t.Error("cancel should not alert")
	}
}

func TestTransitionsOutsideEditModeAreNoops(t *testing.T) {
	m, v := newTestEditor(t, 5)

	m.SetDraft("9")
	m.Confirm()
	m.Blur()
	m.Cancel()

	if v.Get() != 5 || m.Mode() != ModeDisplay || m.Alert().Visible {
		t.Errorf("value = %d, mode = %v", v.Get(), m.Mode())
	}
}

func TestExternalChangeResyncsDraft(t *testing.T) {
	m, v := newTestEditor(t, 5, config.WithUnit("°"))

	v.Set(9)
	m = update(m, ValueChangedMsg{})
	if m.Draft() != "9°" {
		t.Errorf("draft = %q, want 9°", m.Draft())
	}

	// While editing, the draft is left alone.
	m.Focus()
	m.SetDraft("3")
	v.Set(1)
	m = update(m, ValueChangedMsg{})
	if m.Draft() != "3" {
		t.Errorf("editing draft = %q, want 3", m.Draft())
	}
	m.Cancel()
	if m.Draft() != "1°" {
		t.Errorf("draft after cancel = %q, want 1°", m.Draft())
	}
}

func TestExternalChangeDiscardsRejectedDraft(t *testing.T) {
	m, v := newTestEditor(t, 5)

	m.Focus()
	m.SetDraft("15")
	m.Confirm()

	v.Set(2)
	m = update(m, ValueChangedMsg{})
	if m.Mode() != ModeDisplay || m.Draft() != "2" {
		t.Errorf("mode = %v, draft = %q", m.Mode(), m.Draft())
	}
}

func TestKeyboardFlow(t *testing.T) {
	m, v := newTestEditor(t, 5)

	m = update(m, keyRunes("+"), keyRunes("+"), tea.KeyMsg{Type: tea.KeyLeft})
	if v.Get() != 6 {
		t.Fatalf("after + + ←: value = %d, want 6", v.Get())
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Editing() {
		t.Fatal("enter should start editing")
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyBackspace}, keyRunes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	if v.Get() != 3 || m.Editing() {
		t.Errorf("typed 3 + enter: value = %d, editing = %v", v.Get(), m.Editing())
	}

	m = update(m, keyRunes("e"), keyRunes("0"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Alert().Visible || v.Get() != 3 {
		t.Fatalf("typed 30 + enter: alert = %+v, value = %d", m.Alert(), v.Get())
	}

	// Stepper keys are ignored while the alert is up.
	m = update(m, keyRunes("-"))
	if v.Get() != 3 {
		t.Errorf("key reached the stepper behind the alert, value = %d", v.Get())
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Alert().Visible || !m.Editing() || m.Draft() != "30" {
		t.Fatalf("after dismiss: alert = %v, editing = %v, draft = %q", m.Alert().Visible, m.Editing(), m.Draft())
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Editing() || v.Get() != 3 || m.Draft() != "3" {
		t.Errorf("esc should cancel: editing = %v, value = %d, draft = %q", m.Editing(), v.Get(), m.Draft())
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("x"), tea.KeyMsg{Type: tea.KeyTab})
	if m.Editing() || v.Get() != 3 {
		t.Errorf("tab should leave with autocorrect: editing = %v, value = %d", m.Editing(), v.Get())
	}
}

func TestDecrementScenario(t *testing.T) {
	m, v := newTestEditor(t, 5)

	var seen []int
	for i := 0; i < 6; i++ {
		m = update(m, keyRunes("-"))
		seen = append(seen, v.Get())
	}

	want := []int{4, 3, 2, 1, 0, 0}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("values = %v, want %v", seen, want)
		}
	}
	if m.Decrement.Enabled() {
		t.Error("decrement should be disabled at 0")
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionRelease}
}

func TestMouseTapAndFocus(t *testing.T) {
	m, v := newTestEditor(t, 5)
	m.OffsetX, m.OffsetY = 2, 3

	left, field, right := m.zones()

	m = update(m, press(2+left.x0, 3), release())
	if v.Get() != 4 {
		t.Fatalf("click on decrement: value = %d, want 4", v.Get())
	}

	m = update(m, press(2+right.x0, 3), release())
	if v.Get() != 5 {
		t.Fatalf("click on increment: value = %d, want 5", v.Get())
	}

	m = update(m, press(2+field.x0, 3))
	if !m.Editing() {
		t.Fatal("click on the value should start editing")
	}

	m.SetDraft("8")
	_, _, right = m.zones()
	m = update(m, press(2+right.x0, 3))
	if m.Editing() || v.Get() != 8 {
		t.Errorf("click on confirm: editing = %v, value = %d", m.Editing(), v.Get())
	}

	m = update(m, press(2+field.x0, 3))
	m.SetDraft("abc")
	m = update(m, press(0, 0)) // tap away
	if m.Editing() || v.Get() != 8 {
		t.Errorf("tap away: editing = %v, value = %d", m.Editing(), v.Get())
	}
}

func TestMouseLongPress(t *testing.T) {
	m, v := newTestEditor(t, 8)
	_, _, right := m.zones()

	m = update(m, press(right.x0, 0))
	m = update(m, longPressMsg{id: m.Increment.ID(), tag: m.Increment.pressTag})
	if !m.Increment.LongPressing() {
		t.Fatal("holding the increment glyph should start the repeat")
	}

	for i := 0; i < 5 && m.Increment.LongPressing(); i++ {
		m = update(m, repeatTickMsg{id: m.Increment.ID(), tag: m.Increment.repeat.tag})
	}
	if v.Get() != 10 || m.Increment.LongPressing() {
		t.Errorf("value = %d, repeating = %v", v.Get(), m.Increment.LongPressing())
	}

	m = update(m, release())
	if v.Get() != 10 {
		t.Errorf("release after repeat: value = %d, want 10", v.Get())
	}
}

func TestCloseStopsRepeats(t *testing.T) {
	m, v := newTestEditor(t, 3)
	left, _, _ := m.zones()

	m = update(m, press(left.x0, 0))
	m = update(m, longPressMsg{id: m.Decrement.ID(), tag: m.Decrement.pressTag})
	tag := m.Decrement.repeat.tag

	m.Close()
	m = update(m, repeatTickMsg{id: m.Decrement.ID(), tag: tag})
	if v.Get() != 3 || m.Decrement.LongPressing() {
		t.Errorf("tick after Close: value = %d", v.Get())
	}
}

func TestView(t *testing.T) {
	m, _ := newTestEditor(t, 7, config.WithLabel("Volume"), config.WithUnit("%"))

	out := m.View()
	for _, want := range []string{"Volume", "7%", "−", "+", "decrease"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}

	m.Focus()
	m.SetDraft("99")
	m.Confirm()
	out = m.View()
	for _, want := range []string{"Invalid Value", "Must be at most 10%.", "99", "dismiss"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() with alert missing %q:\n%s", want, out)
		}
	}
}

func TestLabelRowShiftsHitZone(t *testing.T) {
	m, v := newTestEditor(t, 5, config.WithLabel("Count"))
	left, _, _ := m.zones()

	m = update(m, press(left.x0, 0), release())
	if v.Get() != 5 {
		t.Errorf("click on the label row should not tap, value = %d", v.Get())
	}
	m = update(m, press(left.x0, 1), release())
	if v.Get() != 4 {
		t.Errorf("click on the control row: value = %d, want 4", v.Get())
	}
}
