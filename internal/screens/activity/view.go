package activity

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/ui/components"
	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

func (s *ActivityScreen) View(width, height int) string {
	if ev, visible := s.engine.Feedback().Visible(); visible {
		body := fmt.Sprintf(
			"%s\n\n%s",
			ev.Message,
			components.StarRow(ev.Stars, ev.Stars)+lipgloss.NewStyle().
				Foreground(theme.Star).Bold(true).
				Render(fmt.Sprintf("  +%d", ev.Stars)),
		)
		if s.cheer != "" {
			body += "\n\n" + lipgloss.NewStyle().
				Foreground(theme.Secondary).Italic(true).
				Render("⚡ "+s.cheer)
		}
		popup := theme.FeedbackPopup.Render(body)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
	}

	if s.engine.IsActivityComplete() {
		return s.renderComplete(width, height)
	}

	cw := components.ContentWidth(width)
	run := s.engine.Run()
	st := s.engine.CurrentStage()
	graph := run.Activity.Graph

	var sections []string

	// Stage header: icon, name, and position dots.
	header := fmt.Sprintf("%s  %s", st.Kind.Icon(), st.Name)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Width(cw).Align(lipgloss.Center).
		Render(header))

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).Align(lipgloss.Center).
		Render(s.renderDots()))

	// Progress: stars earned this run over the activity total.
	progress := components.StarRow(run.EarnedStars(), graph.TotalStars())
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).Align(lipgloss.Center).
		Render(progress))

	// Mission checklist.
	var mission []string
	mark := "◻"
	if run.IsStageComplete(st.ID) {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✔")
	}
	for _, line := range st.Mission {
		mission = append(mission, fmt.Sprintf("  %s %s", mark, line))
	}
	sections = append(sections, components.LabCard(strings.Join(mission, "\n"), cw))

	if s.quiz != nil {
		sections = append(sections, components.LabCard(s.quiz.View(), cw))
	}

	if run.IsStageComplete(st.ID) {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).
			Width(cw).Align(lipgloss.Center).
			Render("Stage done! Press → to keep going"))
	}

	// Sparky's hint.
	if s.hintLoading {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Width(cw).Align(lipgloss.Center).
			Render("Sparky is thinking..."))
	} else if s.hint != "" {
		hintBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Width(cw - 2).
			Padding(0, 1).
			Render(lipgloss.NewStyle().Foreground(theme.Secondary).Render("⚡ Sparky says: ") + s.hint)
		sections = append(sections, hintBox)
	}

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw).Align(lipgloss.Center).
			Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderDots shows one dot per stage: filled for completed, bright for
// the current position.
func (s *ActivityScreen) renderDots() string {
	run := s.engine.Run()
	current := s.engine.CurrentStage()

	var dots []string
	for _, st := range run.Activity.Graph.Stages() {
		switch {
		case st.ID == current.ID:
			dots = append(dots, lipgloss.NewStyle().
				Foreground(theme.SparkGlow).Bold(true).Render("●"))
		case run.IsStageComplete(st.ID):
			dots = append(dots, lipgloss.NewStyle().
				Foreground(theme.Success).Render("●"))
		default:
			dots = append(dots, lipgloss.NewStyle().
				Foreground(theme.Border).Render("○"))
		}
	}
	return strings.Join(dots, " ")
}

func (s *ActivityScreen) renderComplete(width, height int) string {
	run := s.engine.Run()
	a := run.Activity
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.SparkGlow).Bold(true).
		Width(cw).Align(lipgloss.Center).
		Render("🎉 Congratulations! 🎉"))

	terminal := a.Graph.Terminal()
	if len(terminal.Mission) > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).Bold(true).
			Width(cw).Align(lipgloss.Center).
			Render(terminal.Mission[0]))
	}

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).Align(lipgloss.Center).
		Render(components.StarRow(run.EarnedStars(), a.Graph.TotalStars())))

	if a.Badge != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).Bold(true).
			Width(cw).Align(lipgloss.Center).
			Render("🏅 Badge earned: "+a.Badge))
	}

	if a.NextActivityID != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Width(cw).Align(lipgloss.Center).
			Render("Press Enter for your next adventure!"))
	}

	content := components.LabFrame(strings.Join(sections, "\n\n"), cw+6, height-2)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
