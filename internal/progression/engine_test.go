package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
	"github.com/tinkerlab/tinkeralpha/internal/stars"
)

// recordingStars counts award calls without touching a database.
type recordingStars struct {
	calls []string // "activityID/stageID"
}

func (r *recordingStars) AwardStage(ctx context.Context, runID string, a activities.Activity, st stagegraph.Stage, evidence string) (*stars.Award, error) {
	r.calls = append(r.calls, a.ID+"/"+string(st.ID))
	return &stars.Award{
		ActivityID: a.ID,
		StageID:    string(st.ID),
		Stars:      st.RewardStars,
	}, nil
}

func newTestEngine(t *testing.T) (*Engine, *recordingStars) {
	t.Helper()
	a, err := activities.Get("circuit")
	if err != nil {
		t.Fatal(err)
	}
	rec := &recordingStars{}
	return NewEngine(a, rec), rec
}

func TestNewEngineStartsAtFirstStage(t *testing.T) {
	e, _ := newTestEngine(t)

	if got := e.CurrentStage().ID; got != "intro" {
		t.Errorf("current = %q, want intro", got)
	}
	if e.Run().RunID == "" {
		t.Error("run should have an ID")
	}
	if e.Run().EarnedStars() != 0 {
		t.Error("fresh run should have no stars")
	}
}

func TestCompleteCurrentStageAdvancesAndAwards(t *testing.T) {
	e, rec := newTestEngine(t)

	tr, err := e.CompleteCurrentStage(context.Background(), "watched the demo")
	if err != nil {
		t.Fatal(err)
	}
	if tr.Stage.ID != "intro" {
		t.Errorf("completed stage = %q, want intro", tr.Stage.ID)
	}
	if tr.StarsAwarded != 1 {
		t.Errorf("stars awarded = %d, want 1", tr.StarsAwarded)
	}
	if !tr.AutoAdvanced {
		t.Error("expected auto-advance past intro")
	}
	if got := e.CurrentStage().ID; got != "build" {
		t.Errorf("current after completion = %q, want build", got)
	}

	if len(rec.calls) != 1 || rec.calls[0] != "circuit/intro" {
		t.Errorf("award calls = %v", rec.calls)
	}

	// Completion published a feedback event.
	ev, ok := e.Feedback().Visible()
	if !ok {
		t.Fatal("expected visible feedback after completion")
	}
	if ev.Stars != 1 {
		t.Errorf("feedback stars = %d, want 1", ev.Stars)
	}
	if tr.FeedbackGen == 0 {
		t.Error("expected a feedback generation token")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	e, rec := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.CompleteCurrentStage(ctx, ""); err != nil {
		t.Fatal(err)
	}
	// Go back to the completed intro and complete it again.
	if _, ok := e.GoToPreviousStage(); !ok {
		t.Fatal("expected to move back to intro")
	}

	tr, err := e.CompleteCurrentStage(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if !tr.AlreadyComplete {
		t.Error("expected AlreadyComplete on repeat completion")
	}
	if tr.StarsAwarded != 0 {
		t.Errorf("repeat completion awarded %d stars", tr.StarsAwarded)
	}
	if tr.AutoAdvanced {
		t.Error("repeat completion should not move the learner")
	}
	if e.Run().EarnedStars() != 1 {
		t.Errorf("earned = %d, want 1", e.Run().EarnedStars())
	}
	if len(rec.calls) != 1 {
		t.Errorf("award calls = %v, want exactly one", rec.calls)
	}
}

// flakyStars fails the first award attempt, then behaves normally.
type flakyStars struct {
	recordingStars
	failuresLeft int
	attempts     int
}

func (f *flakyStars) AwardStage(ctx context.Context, runID string, a activities.Activity, st stagegraph.Stage, evidence string) (*stars.Award, error) {
	f.attempts++
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return nil, errors.New("store: disk full")
	}
	return f.recordingStars.AwardStage(ctx, runID, a, st, evidence)
}

func TestFailedAwardLeavesStageIncomplete(t *testing.T) {
	a, err := activities.Get("circuit")
	if err != nil {
		t.Fatal(err)
	}
	flaky := &flakyStars{failuresLeft: 1}
	e := NewEngine(a, flaky)
	ctx := context.Background()

	if _, err := e.CompleteCurrentStage(ctx, ""); err == nil {
		t.Fatal("expected the first completion to surface the award error")
	}

	// Nothing moved: the stage is still incomplete, no stars were
	// counted, no feedback was published, and the learner stayed put.
	if e.Run().IsStageComplete("intro") {
		t.Error("failed award marked the stage complete")
	}
	if e.Run().EarnedStars() != 0 {
		t.Errorf("earned = %d after failed award, want 0", e.Run().EarnedStars())
	}
	if _, ok := e.Feedback().Visible(); ok {
		t.Error("failed award published feedback")
	}
	if got := e.CurrentStage().ID; got != "intro" {
		t.Errorf("current = %q after failed award, want intro", got)
	}

	// The retry persists the award instead of hitting the no-op branch.
	tr, err := e.CompleteCurrentStage(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if tr.AlreadyComplete {
		t.Error("retry after a failed award treated the stage as complete")
	}
	if tr.StarsAwarded != 1 {
		t.Errorf("retry awarded %d stars, want 1", tr.StarsAwarded)
	}
	if flaky.attempts != 2 {
		t.Errorf("award attempts = %d, want 2", flaky.attempts)
	}
	if len(flaky.calls) != 1 || flaky.calls[0] != "circuit/intro" {
		t.Errorf("persisted awards = %v, want exactly circuit/intro", flaky.calls)
	}
	if got := e.CurrentStage().ID; got != "build" {
		t.Errorf("current after retry = %q, want build", got)
	}
}

func TestAdvanceIsGatedOnCompletion(t *testing.T) {
	e, _ := newTestEngine(t)

	// Intro not completed yet: advancing is a rejected no-op.
	st, moved := e.AdvanceStage()
	if moved {
		t.Error("advance should be gated before completion")
	}
	if st.ID != "intro" {
		t.Errorf("position changed to %q", st.ID)
	}

	if _, err := e.CompleteCurrentStage(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	// Auto-advance already moved to build; build is incomplete so a
	// further advance stays put.
	if _, moved := e.AdvanceStage(); moved {
		t.Error("advance past an incomplete stage")
	}
	if got := e.CurrentStage().ID; got != "build" {
		t.Errorf("current = %q, want build", got)
	}
}

func TestPreviousNeverPenalizes(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.CompleteCurrentStage(ctx, ""); err != nil {
		t.Fatal(err)
	}
	earned := e.Run().EarnedStars()

	prev, ok := e.GoToPreviousStage()
	if !ok || prev.ID != "intro" {
		t.Fatalf("previous = %q, %v; want intro", prev.ID, ok)
	}
	if e.Run().EarnedStars() != earned {
		t.Error("revisiting changed earned stars")
	}
	if !e.Run().IsStageComplete("intro") {
		t.Error("revisiting cleared the completion mark")
	}

	// Moving forward again over the completed intro is allowed.
	next, moved := e.AdvanceStage()
	if !moved || next.ID != "build" {
		t.Errorf("advance = %q, %v; want build", next.ID, moved)
	}

	// At the first stage there is nothing before.
	e2, _ := newTestEngine(t)
	if _, ok := e2.GoToPreviousStage(); ok {
		t.Error("previous from the first stage should be rejected")
	}
}

func TestFullRunEarnsEveryStar(t *testing.T) {
	e, rec := newTestEngine(t)
	ctx := context.Background()

	graph := e.Run().Activity.Graph
	for i := 0; i < graph.Count(); i++ {
		tr, err := e.CompleteCurrentStage(ctx, "")
		if err != nil {
			t.Fatal(err)
		}
		if tr.AlreadyComplete {
			t.Fatalf("step %d: unexpected repeat completion", i)
		}
	}

	if !e.IsActivityComplete() {
		t.Error("activity should be complete after finishing every stage")
	}
	if got, want := e.Run().EarnedStars(), graph.TotalStars(); got != want {
		t.Errorf("earned = %d, want %d", got, want)
	}
	if len(rec.calls) != graph.Count() {
		t.Errorf("award calls = %d, want %d", len(rec.calls), graph.Count())
	}

	// The terminal stage has no successor: completing it did not move
	// the learner, and further advancing is a no-op.
	if got := e.CurrentStage().ID; got != graph.Terminal().ID {
		t.Errorf("current = %q, want terminal", got)
	}
	if _, moved := e.AdvanceStage(); moved {
		t.Error("advanced past the terminal stage")
	}
}

func TestFeedbackSupersededByNextCompletion(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	tr1, err := e.CompleteCurrentStage(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	tr2, err := e.CompleteCurrentStage(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	// The first stage's timer fires after the second completion.
	if e.Feedback().Expire(tr1.FeedbackGen) {
		t.Error("stale timer cleared the newer feedback")
	}
	ev, ok := e.Feedback().Visible()
	if !ok || ev.Stars != tr2.StarsAwarded {
		t.Errorf("visible feedback = %+v, %v", ev, ok)
	}
}
