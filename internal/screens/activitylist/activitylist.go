// Package activitylist implements the Tinker Lab screen: the catalog of
// activities with each one's earned stars and completion mark.
package activitylist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
	"github.com/tinkerlab/tinkeralpha/internal/stars"
	"github.com/tinkerlab/tinkeralpha/internal/ui/components"
	"github.com/tinkerlab/tinkeralpha/internal/ui/layout"
	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

type progressLoadedMsg struct {
	Totals    map[string]int
	Completed map[string]bool
	Err       error
}

// ActivityListScreen shows all registered activities.
type ActivityListScreen struct {
	starService *stars.Service

	items     []activities.Activity
	selected  int
	totals    map[string]int
	completed map[string]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ActivityListScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityListScreen)(nil)

// New creates the activity list.
func New(starService *stars.Service) *ActivityListScreen {
	return &ActivityListScreen{
		starService: starService,
		items:       activities.All(),
		totals:      map[string]int{},
		completed:   map[string]bool{},
	}
}

func (s *ActivityListScreen) Title() string {
	return "Tinker Lab"
}

func (s *ActivityListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ActivityListScreen) Init() tea.Cmd {
	if s.starService == nil {
		s.loaded = true
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		totals, _, err := s.starService.Totals(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		badges, err := s.starService.Badges(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		completed := make(map[string]bool, len(badges))
		for _, b := range badges {
			completed[b.ActivityID] = true
		}
		return progressLoadedMsg{Totals: totals, Completed: completed}
	}
}

func (s *ActivityListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.totals = msg.Totals
			s.completed = msg.Completed
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return nav.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
		case "enter":
			if len(s.items) > 0 {
				return s, nav.Navigate(nav.ActivityPath(s.items[s.selected].ID))
			}
		}
	}
	return s, nil
}

func (s *ActivityListScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening the lab...")
	}

	cw := components.ContentWidth(width)

	var cards []string
	for i, a := range s.items {
		cards = append(cards, s.renderCard(a, i == s.selected, cw))
	}

	content := strings.Join(cards, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ActivityListScreen) renderCard(a activities.Activity, selected bool, cw int) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		titleStyle = titleStyle.Foreground(theme.SparkGlow)
	}

	title := titleStyle.Render(a.Title)
	if s.completed[a.ID] {
		title += lipgloss.NewStyle().Foreground(theme.Success).Render("  ✔ " + a.Badge)
	}

	subject := lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.Subject)
	row := components.StarRow(s.totals[a.ID], a.Graph.TotalStars())

	body := title + "\n" + subject + "  " + row
	if a.Tagline != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(a.Tagline)
	}

	border := theme.Border
	if selected {
		border = theme.SparkGlow
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 2).
		Render(body)
}
