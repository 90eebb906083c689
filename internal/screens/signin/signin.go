// Package signin implements the sign-in screen: the learner picks a
// name and a role, and a successful submit replaces the screen with the
// dashboard.
package signin

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/auth"
	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
	"github.com/tinkerlab/tinkeralpha/internal/ui/components"
	"github.com/tinkerlab/tinkeralpha/internal/ui/layout"
	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

const (
	focusName = iota
	focusRole
)

type signedInMsg struct {
	Err error
}

// SignInScreen collects a learner name and role.
type SignInScreen struct {
	session *auth.Session

	name    components.TextInput
	roles   []auth.Role
	roleIdx int
	focus   int
	errMsg  string
}

var _ screen.Screen = (*SignInScreen)(nil)
var _ screen.KeyHintProvider = (*SignInScreen)(nil)

// New creates a SignInScreen over the live session.
func New(session *auth.Session) *SignInScreen {
	return &SignInScreen{
		session: session,
		name:    components.NewTextInput("Your name", 24),
		roles:   auth.AllRoles(),
	}
}

func (s *SignInScreen) Title() string {
	return "Sign In"
}

func (s *SignInScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "↑↓", Description: "Pick role"},
		{Key: "Enter", Description: "Sign in"},
	}
}

func (s *SignInScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *SignInScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, nav.NavigateReplace(nav.PathDashboard)

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			if s.focus == focusName {
				s.focus = focusRole
			} else {
				s.focus = focusName
			}
			return s, nil
		case "up", "down":
			if s.focus == focusRole {
				if msg.String() == "up" {
					s.roleIdx = (s.roleIdx - 1 + len(s.roles)) % len(s.roles)
				} else {
					s.roleIdx = (s.roleIdx + 1) % len(s.roles)
				}
				return s, nil
			}
		case "enter":
			return s, s.submit()
		}
	}

	if s.focus == focusName {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SignInScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		s.errMsg = "Please tell us your name!"
		return nil
	}
	role := s.roles[s.roleIdx]
	return func() tea.Msg {
		return signedInMsg{Err: s.session.SignIn(context.Background(), name, role)}
	}
}

func (s *SignInScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("⚡ Welcome to TinkerAlpha!")
	sections = append(sections, title)
	sections = append(sections, "")

	nameLabel := "  Name "
	if s.focus == focusName {
		nameLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ Name ")
	}
	sections = append(sections, nameLabel+s.name.View())
	sections = append(sections, "")

	roleLabel := "  I am a..."
	if s.focus == focusRole {
		roleLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ I am a...")
	}
	sections = append(sections, roleLabel)
	for i, r := range s.roles {
		line := "    " + r.DisplayName()
		if i == s.roleIdx {
			line = lipgloss.NewStyle().Foreground(theme.SparkGlow).Bold(true).
				Render("    ● " + r.DisplayName())
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).
				Render("    ○ " + r.DisplayName())
		}
		sections = append(sections, line)
	}

	sections = append(sections, "")
	sections = append(sections, components.NewButton("Let's Tinker!", true).View())

	if s.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).Render(s.errMsg))
	}

	content := components.LabCard(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
