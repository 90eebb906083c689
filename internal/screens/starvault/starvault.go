// Package starvault displays the learner's star collection: totals per
// activity, earned badges, and the history of stage completions.
package starvault

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
	"github.com/tinkerlab/tinkeralpha/internal/store"
	"github.com/tinkerlab/tinkeralpha/internal/ui/components"
	"github.com/tinkerlab/tinkeralpha/internal/ui/layout"
	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

type vaultLoadedMsg struct {
	Totals  map[string]int
	Total   int
	Badges  []stars.Badge
	Records []store.StageEventRecord
	Err     error
}

// StarVaultScreen displays the learner's stars and badges.
type StarVaultScreen struct {
	starService *stars.Service
	eventRepo   store.EventRepo

	items        []activities.Activity
	totals       map[string]int
	total        int
	badges       map[string]string // activity ID -> badge name
	records      []store.StageEventRecord
	selectedTab  int
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*StarVaultScreen)(nil)
var _ screen.KeyHintProvider = (*StarVaultScreen)(nil)

// New creates a StarVaultScreen.
func New(starService *stars.Service, eventRepo store.EventRepo) *StarVaultScreen {
	return &StarVaultScreen{
		starService: starService,
		eventRepo:   eventRepo,
		items:       activities.All(),
		totals:      map[string]int{},
		badges:      map[string]string{},
	}
}

func (s *StarVaultScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		totals, total, err := s.starService.Totals(ctx)
		if err != nil {
			return vaultLoadedMsg{Err: err}
		}
		badges, err := s.starService.Badges(ctx)
		if err != nil {
			return vaultLoadedMsg{Err: err}
		}
		records, err := s.eventRepo.QueryStageEvents(ctx, store.QueryOpts{Limit: 200})
		if err != nil {
			return vaultLoadedMsg{Err: err}
		}
		return vaultLoadedMsg{Totals: totals, Total: total, Badges: badges, Records: records}
	}
}

func (s *StarVaultScreen) Title() string {
	return "Star Vault"
}

func (s *StarVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch activity"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StarVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case vaultLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.totals = msg.Totals
			s.total = msg.Total
			s.records = msg.Records
			for _, b := range msg.Badges {
				s.badges[b.ActivityID] = b.Name
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return nav.PopScreenMsg{} }
		case "tab":
			s.selectedTab = (s.selectedTab + 1) % len(s.items)
			s.scrollOffset = 0
			return s, nil
		case "shift+tab":
			s.selectedTab = (s.selectedTab - 1 + len(s.items)) % len(s.items)
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			filtered := s.filteredRecords()
			if s.scrollOffset < len(filtered)-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *StarVaultScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening the vault...")
	}

	var b strings.Builder

	// Grand total.
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Star).Bold(true).
		Render(fmt.Sprintf("\n★ %d stars collected\n", s.total)))
	b.WriteString("\n")

	// Activity tabs with per-activity totals and badge marks.
	var tabs []string
	for i, a := range s.items {
		label := fmt.Sprintf("%s (%d/%d)", a.Title, s.totals[a.ID], a.Graph.TotalStars())
		if s.badges[a.ID] != "" {
			label = "🏅 " + label
		}
		if i == s.selectedTab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	tabLine := strings.Join(tabs, "     ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tabLine))
	b.WriteString("\n\n")

	// Progress bar for the selected activity.
	selected := s.items[s.selectedTab]
	var percent float64
	if total := selected.Graph.TotalStars(); total > 0 {
		percent = float64(s.totals[selected.ID]) / float64(total)
	}
	bar := components.NewProgressBar("Progress", percent, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Stage completions for the selected activity.
	filtered := s.filteredRecords()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No stars from this activity yet"))
		return b.String()
	}

	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		rec := filtered[i]
		dateStr := rec.Timestamp.Format("Jan 02, 2006")
		row := components.StarRow(rec.Stars, rec.Stars)
		line := fmt.Sprintf("  %-28s %-9s %s", rec.StageName, row, dateStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if rec.ActivityComplete {
			style = lipgloss.NewStyle().Foreground(theme.SparkGlow)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *StarVaultScreen) filteredRecords() []store.StageEventRecord {
	selected := s.items[s.selectedTab].ID
	var filtered []store.StageEventRecord
	for _, r := range s.records {
		if r.ActivityID == selected {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
