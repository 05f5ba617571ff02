package stepper

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the stepper. Bindings are grouped by
// the mode in which they apply.
type KeyMap struct {
	// Display mode
	Decrement key.Binding
	Increment key.Binding
	Edit      key.Binding

	// Edit mode
	Confirm key.Binding
	Cancel  key.Binding
	Leave   key.Binding // Focus loss without confirming

	// Alert
	Dismiss key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Decrement: key.NewBinding(
			key.WithKeys("-", "_", "left"),
			key.WithHelp("-/←", "decrease"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+/→", "increase"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Leave: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "done"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "dismiss"),
		),
	}
}

// modeKeys adapts the bindings of one mode to help.KeyMap.
type modeKeys []key.Binding

func (k modeKeys) ShortHelp() []key.Binding  { return k }
func (k modeKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func (k KeyMap) forMode(mode Mode, alert bool) modeKeys {
	switch {
	case alert:
		return modeKeys{k.Dismiss}
	case mode == ModeEditing:
		return modeKeys{k.Confirm, k.Cancel, k.Leave}
	default:
		return modeKeys{k.Decrement, k.Increment, k.Edit}
	}
}
