// Package activity implements the stage-by-stage activity screen: the
// mission checklist, the star feedback popup, and Sparky's hints.
package activity

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/progression"
	"github.com/tinkerlab/tinkeralpha/internal/screen"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
	"github.com/tinkerlab/tinkeralpha/internal/ui/components"
	"github.com/tinkerlab/tinkeralpha/internal/ui/layout"
)

// Guide is Sparky's voice on this screen: a hint on demand and a cheer
// line for each completed stage. Implemented by the mascot service;
// may be nil.
type Guide interface {
	Hint(ctx context.Context, a activities.Activity, st stagegraph.Stage) (string, error)
	Cheer(st stagegraph.Stage) string
}

// ActivityScreen drives one run of an activity.
type ActivityScreen struct {
	engine *progression.Engine
	guide  Guide

	// quiz is non-nil while the current stage demands a correct answer.
	quiz *components.MultiChoice

	hint        string
	cheer       string
	hintLoading bool
	errMsg      string
	lastAward   int
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)

// New starts a fresh run of the given activity.
func New(a activities.Activity, starService progression.StarService, guide Guide) *ActivityScreen {
	s := &ActivityScreen{
		engine: progression.NewEngine(a, starService),
		guide:  guide,
	}
	s.syncQuiz()
	return s
}

// syncQuiz loads the current stage's quiz question, if the stage has
// one and still needs an answer.
func (s *ActivityScreen) syncQuiz() {
	run := s.engine.Run()
	st := s.engine.CurrentStage()

	if run.IsStageComplete(st.ID) {
		s.quiz = nil
		return
	}
	q, ok := run.Activity.PuzzleFor(st.ID)
	if !ok {
		s.quiz = nil
		return
	}
	mc := components.NewMultiChoice(q.Prompt, q.Options, q.Answer)
	s.quiz = &mc
}

func (s *ActivityScreen) Title() string {
	return s.engine.Run().Activity.Title
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	if s.engine.IsActivityComplete() {
		hints := []layout.KeyHint{{Key: "Esc", Description: "Back to lab"}}
		if s.engine.Run().Activity.NextActivityID != "" {
			hints = append([]layout.KeyHint{{Key: "Enter", Description: "Next adventure"}}, hints...)
		}
		return hints
	}
	if s.quiz != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "H", Description: "Ask Sparky"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done!"},
		{Key: "→", Description: "Next"},
		{Key: "←", Description: "Previous"},
		{Key: "H", Description: "Ask Sparky"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ActivityScreen) Init() tea.Cmd {
	return nil
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackExpiredMsg:
		s.engine.Feedback().Expire(msg.Gen)
		return s, nil

	case hintReadyMsg:
		s.hintLoading = false
		if msg.Err != nil {
			s.hint = "Sparky is thinking too hard... try again!"
		} else {
			s.hint = msg.Text
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ActivityScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// A visible popup dismisses on any key.
	if _, visible := s.engine.Feedback().Visible(); visible {
		s.engine.Feedback().Clear()
		return s, nil
	}

	if s.quiz != nil {
		switch msg.String() {
		case "up", "k", "down", "j":
			mc, _ := s.quiz.Update(msg)
			s.quiz = &mc
			return s, nil
		case "enter":
			return s, s.submitQuiz(msg)
		}
	}

	switch msg.String() {
	case "esc":
		s.engine.Feedback().Clear()
		return s, func() tea.Msg { return nav.PopScreenMsg{} }

	case "enter", "c", "space":
		if s.engine.IsActivityComplete() {
			return s, s.nextAdventure()
		}
		if s.quiz != nil {
			return s, nil
		}
		return s, s.complete("")

	case "right", "n":
		s.hint = ""
		s.cheer = ""
		s.errMsg = ""
		s.engine.AdvanceStage()
		s.syncQuiz()
		return s, nil

	case "left", "p":
		s.hint = ""
		s.cheer = ""
		s.errMsg = ""
		s.engine.GoToPreviousStage()
		s.syncQuiz()
		return s, nil

	case "h":
		return s, s.requestHint()
	}
	return s, nil
}

// submitQuiz judges the selected answer. A correct answer completes the
// stage; a wrong one resets the quiz for another try.
func (s *ActivityScreen) submitQuiz(msg tea.KeyMsg) tea.Cmd {
	mc, _ := s.quiz.Update(msg)
	if mc.IsCorrect() {
		answer := mc.Options[mc.ChosenIndex]
		s.quiz = nil
		s.errMsg = ""
		return s.complete("answered: " + answer)
	}

	s.errMsg = "Not quite! Sparky believes in you. Try again!"
	mc.Submitted = false
	mc.ChosenIndex = -1
	s.quiz = &mc
	return nil
}

func (s *ActivityScreen) complete(evidence string) tea.Cmd {
	tr, err := s.engine.CompleteCurrentStage(context.Background(), evidence)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if tr.AlreadyComplete {
		return nil
	}
	s.hint = ""
	s.cheer = ""
	if s.guide != nil {
		s.cheer = s.guide.Cheer(tr.Stage)
	}
	s.lastAward = tr.StarsAwarded
	s.syncQuiz()
	return expireFeedback(tr.FeedbackGen)
}

func (s *ActivityScreen) nextAdventure() tea.Cmd {
	next := s.engine.Run().Activity.NextActivityID
	if next == "" {
		return func() tea.Msg { return nav.PopScreenMsg{} }
	}
	s.engine.Feedback().Clear()
	return nav.NavigateReplace(nav.ActivityPath(next))
}

func (s *ActivityScreen) requestHint() tea.Cmd {
	if s.guide == nil || s.hintLoading {
		return nil
	}
	s.hintLoading = true
	a := s.engine.Run().Activity
	st := s.engine.CurrentStage()
	return func() tea.Msg {
		text, err := s.guide.Hint(context.Background(), a, st)
		return hintReadyMsg{Text: text, Err: err}
	}
}
