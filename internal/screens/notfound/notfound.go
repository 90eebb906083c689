// Package notfound implements the screen shown for paths that match no
// route.
package notfound

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

// NotFoundScreen tells the learner the page doesn't exist.
type NotFoundScreen struct{}

var _ screen.Screen = (*NotFoundScreen)(nil)

// New creates a NotFoundScreen.
func New() *NotFoundScreen {
	return &NotFoundScreen{}
}

func (n *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (n *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return n, nav.NavigateReplace(nav.PathDashboard)
		}
	}
	return n, nil
}

func (n *NotFoundScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("⚡ Zap! Sparky couldn't find that page.\n\nPress Enter to go back to your dashboard.")

	return content
}

func (n *NotFoundScreen) Title() string {
	return "Not Found"
}
