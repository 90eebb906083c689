// Package screen defines the contract every portal screen satisfies.
// The app model owns the chrome (header, footer, frame) and delegates
// the rest of the terminal to whichever screen is on top.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tinkerlab/tinkeralpha/internal/ui/layout"
)

// Screen is one full view of the portal: the sign-in form, the
// dashboard, an activity, the star vault. Update returns the screen to
// keep showing, which lets a screen swap itself out.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into the content area between header and footer.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens that skip it get the default hint row.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
