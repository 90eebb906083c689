// Package home implements the dashboard: the signed-in hub showing the
// learner's stars, badges, and the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/tinkerlab/tinkeralpha/internal/auth"
	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
	"github.com/tinkerlab/tinkeralpha/internal/stars"
	"github.com/tinkerlab/tinkeralpha/internal/ui/components"
)

type statsLoadedMsg struct {
	Stars      int
	Badges     int
	Done       int
	Celebrated bool
}

type signedOutMsg struct {
	Err error
}

// HomeScreen is the dashboard.
type HomeScreen struct {
	session     *auth.Session
	starService *stars.Service

	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool

	starCount  int
	badgeCount int
	doneCount  int

	mascotVariant MascotVariant
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard for the current session.
func New(session *auth.Session, starService *stars.Service, latestVersion string) *HomeScreen {
	menuLabels := []string{"TINKER LAB", "STAR VAULT", "ADD ACTIVITY", "SIGN OUT", "EXIT"}

	disabled := map[int]bool{}
	if session.CurrentRole() != auth.RoleTeacher {
		disabled[2] = true
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return nav.Navigate(nav.PathActivities)
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return nav.Navigate(nav.PathStarVault)
		}},
		{Label: menuLabels[2], Disabled: disabled[2], Action: func() tea.Cmd {
			return nav.Navigate(nav.PathAddActivity)
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return signedOutMsg{Err: session.SignOut(context.Background())}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	variant := MascotIdle
	if session.LearnerName() != "" {
		variant = MascotWaving
	}

	return &HomeScreen{
		session:       session,
		starService:   starService,
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		disabled:      disabled,
		mascotVariant: variant,
		latestVersion: latestVersion,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.starService == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		_, total, _ := h.starService.Totals(ctx)
		badges, _ := h.starService.Badges(ctx)
		return statsLoadedMsg{
			Stars:      total,
			Badges:     len(badges),
			Done:       len(badges),
			Celebrated: h.starService.SessionStars() > 0,
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.starCount = msg.Stars
		h.badgeCount = msg.Badges
		h.doneCount = msg.Done
		if msg.Celebrated {
			h.mascotVariant = MascotCelebrating
		}
		return h, nil

	case signedOutMsg:
		if msg.Err != nil {
			return h, nil
		}
		return h, nav.NavigateReplace(nav.PathSignIn)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	if g := renderGreeting(h.session.LearnerName(), cw); g != "" {
		sections = append(sections, g)
	}

	sections = append(sections, renderStatsBar(
		h.starCount, h.badgeCount, h.doneCount, cw, compact))

	if compact {
		sections = append(sections, renderBenchMenuCompact(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderBenchMenu(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderBenchFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Dashboard"
}
