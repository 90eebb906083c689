package components

import "github.com/tinkerlab/tinkeralpha/internal/ui/theme"

// Button is a rendered call-to-action. Screens own the enter-key
// handling; the button only knows how to look active or dimmed.
type Button struct {
	Label  string
	Active bool
}

// NewButton builds a button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button with the lab's button styles.
func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
