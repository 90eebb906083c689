package activity

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/nav"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

// mockGuide implements Guide for testing.
type mockGuide struct {
	text  string
	cheer string
	err   error
}

func (m *mockGuide) Hint(_ context.Context, _ activities.Activity, _ stagegraph.Stage) (string, error) {
	return m.text, m.err
}

func (m *mockGuide) Cheer(_ stagegraph.Stage) string {
	return m.cheer
}

func newTestScreen(t *testing.T, guide Guide) *ActivityScreen {
	t.Helper()
	a, err := activities.Get("circuit")
	if err != nil {
		t.Fatal(err)
	}
	return New(a, nil, guide)
}

func pressKey(s *ActivityScreen, key string) tea.Cmd {
	var code rune
	if len(key) == 1 {
		code = rune(key[0])
	}
	switch key {
	case "enter":
		code = tea.KeyEnter
	case "esc":
		code = tea.KeyEscape
	case "right":
		code = tea.KeyRight
	case "left":
		code = tea.KeyLeft
	case "up":
		code = tea.KeyUp
	case "down":
		code = tea.KeyDown
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestCompleteAdvancesStage(t *testing.T) {
	s := newTestScreen(t, nil)

	if got := s.engine.CurrentStage().ID; got != "intro" {
		t.Fatalf("start stage = %q", got)
	}

	cmd := pressKey(s, "enter")
	if cmd == nil {
		t.Fatal("completion should schedule a feedback timer")
	}

	if got := s.engine.CurrentStage().ID; got != "build" {
		t.Errorf("stage after completion = %q, want build", got)
	}
	if _, visible := s.engine.Feedback().Visible(); !visible {
		t.Error("expected visible feedback after completion")
	}
}

func TestFeedbackTimerClearsPopup(t *testing.T) {
	s := newTestScreen(t, nil)

	tr, err := s.engine.CompleteCurrentStage(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}

	s.Update(feedbackExpiredMsg{Gen: tr.FeedbackGen})
	if _, visible := s.engine.Feedback().Visible(); visible {
		t.Error("popup should be gone after its timer fires")
	}
}

func TestStaleFeedbackTimerIgnored(t *testing.T) {
	s := newTestScreen(t, nil)
	ctx := context.Background()

	tr1, _ := s.engine.CompleteCurrentStage(ctx, "")
	tr2, _ := s.engine.CompleteCurrentStage(ctx, "")

	// First stage's timer fires after the second stage completed.
	s.Update(feedbackExpiredMsg{Gen: tr1.FeedbackGen})
	if _, visible := s.engine.Feedback().Visible(); !visible {
		t.Fatal("newer popup cleared by stale timer")
	}

	s.Update(feedbackExpiredMsg{Gen: tr2.FeedbackGen})
	if _, visible := s.engine.Feedback().Visible(); visible {
		t.Error("popup should be gone after the current timer fires")
	}
}

func TestAnyKeyDismissesPopup(t *testing.T) {
	s := newTestScreen(t, nil)
	s.engine.CompleteCurrentStage(context.Background(), "")

	// The keypress goes to dismissal, not to another completion.
	pressKey(s, "enter")
	if _, visible := s.engine.Feedback().Visible(); visible {
		t.Error("popup should dismiss on any key")
	}
	if got := s.engine.CurrentStage().ID; got != "build" {
		t.Errorf("stage = %q, dismissal must not complete a stage", got)
	}
}

func TestArrowNavigation(t *testing.T) {
	s := newTestScreen(t, nil)
	s.engine.CompleteCurrentStage(context.Background(), "")
	s.engine.Feedback().Clear()

	// Back to the completed intro, then forward again.
	pressKey(s, "left")
	if got := s.engine.CurrentStage().ID; got != "intro" {
		t.Errorf("after left: %q, want intro", got)
	}
	pressKey(s, "right")
	if got := s.engine.CurrentStage().ID; got != "build" {
		t.Errorf("after right: %q, want build", got)
	}

	// Build is incomplete: right is a no-op.
	pressKey(s, "right")
	if got := s.engine.CurrentStage().ID; got != "build" {
		t.Errorf("gated advance moved to %q", got)
	}
}

func TestCheerOnCompletion(t *testing.T) {
	s := newTestScreen(t, &mockGuide{cheer: "Zap-tastic!"})

	pressKey(s, "enter")
	if s.cheer != "Zap-tastic!" {
		t.Errorf("cheer = %q, want Sparky's line", s.cheer)
	}
	if view := s.View(80, 24); !strings.Contains(view, "Zap-tastic!") {
		t.Error("cheer should render inside the completion popup")
	}

	// Moving on clears the cheer with the rest of Sparky's chatter.
	s.engine.Feedback().Clear()
	pressKey(s, "left")
	if s.cheer != "" {
		t.Errorf("cheer = %q after navigation, want empty", s.cheer)
	}
}

func TestHintRequest(t *testing.T) {
	s := newTestScreen(t, &mockGuide{text: "Check the battery!"})

	cmd := pressKey(s, "h")
	if cmd == nil {
		t.Fatal("expected a hint command")
	}
	if !s.hintLoading {
		t.Error("expected hint loading state")
	}

	s.Update(cmd())
	if s.hintLoading {
		t.Error("loading should end when the hint arrives")
	}
	if s.hint != "Check the battery!" {
		t.Errorf("hint = %q", s.hint)
	}
}

func TestHintErrorFallsBack(t *testing.T) {
	s := newTestScreen(t, &mockGuide{err: errors.New("provider down")})

	cmd := pressKey(s, "h")
	s.Update(cmd())
	if s.hint == "" {
		t.Error("expected a friendly fallback line on hint failure")
	}
}

func TestEscPops(t *testing.T) {
	s := newTestScreen(t, nil)

	cmd := pressKey(s, "esc")
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(nav.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}

func TestPuzzleRequiresCorrectAnswer(t *testing.T) {
	s := newTestScreen(t, nil)
	ctx := context.Background()

	// Walk to the puzzle stage.
	for i := 0; i < 3; i++ {
		if _, err := s.engine.CompleteCurrentStage(ctx, ""); err != nil {
			t.Fatal(err)
		}
	}
	s.engine.Feedback().Clear()
	if got := s.engine.CurrentStage().ID; got != "puzzle" {
		t.Fatalf("stage = %q, want puzzle", got)
	}

	// The gated right is a no-op but refreshes quiz state.
	pressKey(s, "right")
	if s.quiz == nil {
		t.Fatal("puzzle stage should present a quiz")
	}

	// Wrong answer: stage stays put, the learner gets another try.
	pressKey(s, "down")
	pressKey(s, "enter")
	if got := s.engine.CurrentStage().ID; got != "puzzle" {
		t.Errorf("wrong answer moved to %q", got)
	}
	if s.errMsg == "" {
		t.Error("expected an encouragement line after a wrong answer")
	}
	if s.quiz == nil || s.quiz.Submitted {
		t.Error("quiz should reset for a retry")
	}

	// Correct answer completes the stage and carries the choice as evidence.
	pressKey(s, "up")
	cmd := pressKey(s, "enter")
	if cmd == nil {
		t.Fatal("correct answer should complete the stage")
	}
	run := s.engine.Run()
	if !run.IsStageComplete("puzzle") {
		t.Error("puzzle stage should be complete")
	}
	if s.quiz != nil {
		t.Error("quiz should be cleared after a correct answer")
	}
}

func TestNextAdventureAfterCompletion(t *testing.T) {
	s := newTestScreen(t, nil)
	ctx := context.Background()

	count := s.engine.Run().Activity.Graph.Count()
	for i := 0; i < count; i++ {
		s.engine.CompleteCurrentStage(ctx, "")
	}
	s.engine.Feedback().Clear()

	if !s.engine.IsActivityComplete() {
		t.Fatal("activity should be complete")
	}

	cmd := pressKey(s, "enter")
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(nav.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if msg.Path != nav.ActivityPath("motor") {
		t.Errorf("path = %q, want the motor activity", msg.Path)
	}
	if !msg.Replace {
		t.Error("chaining should replace the current screen")
	}
}
