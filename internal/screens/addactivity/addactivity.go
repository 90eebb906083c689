// Package addactivity implements the teacher-only form for registering
// a new activity built from the standard stage template.
package addactivity

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
	"github.com/tinkerlab/tinkeralpha/internal/ui/components"
	"github.com/tinkerlab/tinkeralpha/internal/ui/layout"
	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

var fieldLabels = []string{"Title", "Subject", "Badge name"}

// AddActivityScreen collects the details for a new activity.
type AddActivityScreen struct {
	inputs []components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*AddActivityScreen)(nil)
var _ screen.KeyHintProvider = (*AddActivityScreen)(nil)

// New creates the form.
func New() *AddActivityScreen {
	inputs := []components.TextInput{
		components.NewTextInput("Windmill Power", 32),
		components.NewTextInput("Energy", 24),
		components.NewTextInput("Wind Wizard", 24),
	}
	return &AddActivityScreen{inputs: inputs}
}

func (s *AddActivityScreen) Title() string {
	return "Add Activity"
}

func (s *AddActivityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AddActivityScreen) Init() tea.Cmd {
	return s.inputs[0].Init()
}

func (s *AddActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return nav.PopScreenMsg{} }
		case "tab":
			s.focus = (s.focus + 1) % len(s.inputs)
			return s, nil
		case "shift+tab":
			s.focus = (s.focus - 1 + len(s.inputs)) % len(s.inputs)
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AddActivityScreen) submit() tea.Cmd {
	title := strings.TrimSpace(s.inputs[0].Value())
	subject := strings.TrimSpace(s.inputs[1].Value())
	badge := strings.TrimSpace(s.inputs[2].Value())

	if title == "" {
		s.errMsg = "The activity needs a title"
		return nil
	}

	id := slugify(title)
	graph, err := stagegraph.New(id, activities.StandardStages(
		"Build the "+title,
		title+" Practice Lab",
		title+" Puzzle Challenge",
	))
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	err = activities.Register(activities.Activity{
		ID:      id,
		Title:   title,
		Subject: subject,
		Badge:   badge,
		Graph:   graph,
	})
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	return nav.NavigateReplace(nav.PathActivities)
}

func (s *AddActivityScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render("🔧 Build a new activity"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("It gets the standard five stages automatically."))
	sections = append(sections, "")

	for i, in := range s.inputs {
		label := "  " + fieldLabels[i] + " "
		if i == s.focus {
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render("▸ " + fieldLabels[i] + " ")
		}
		sections = append(sections, label+in.View())
	}

	sections = append(sections, "")
	sections = append(sections, components.NewButton("Create activity", true).View())

	if s.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).Render(s.errMsg))
	}

	content := components.LabCard(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// slugify derives an activity ID from a title.
func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
