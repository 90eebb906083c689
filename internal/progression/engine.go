// Package progression drives a learner through an activity's stage
// graph: forward movement is gated on completing the current stage,
// backward movement is always free, and each first-time completion
// awards that stage's stars exactly once.
package progression

import (
	"context"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/feedback"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
	"github.com/tinkerlab/tinkeralpha/internal/stars"
)

// StarService persists stage completions. Implemented by stars.Service;
// may be nil, in which case completions stay in-memory only.
type StarService interface {
	AwardStage(ctx context.Context, runID string, a activities.Activity, st stagegraph.Stage, evidence string) (*stars.Award, error)
}

// Transition describes the outcome of a completion attempt.
type Transition struct {
	Stage           stagegraph.Stage
	StarsAwarded    int
	AlreadyComplete bool
	AutoAdvanced    bool
	ActivityDone    bool
	Award           *stars.Award
	FeedbackGen     int
}

// Engine owns one run and its feedback channel.
type Engine struct {
	run   *Run
	fb    feedback.Channel
	stars StarService
}

// NewEngine starts a new run of the given activity.
func NewEngine(a activities.Activity, svc StarService) *Engine {
	return &Engine{
		run:   NewRun(a),
		stars: svc,
	}
}

// Run exposes the underlying run state.
func (e *Engine) Run() *Run {
	return e.run
}

// Feedback exposes the run's feedback channel for the view layer.
func (e *Engine) Feedback() *feedback.Channel {
	return &e.fb
}

// CurrentStage returns the stage the learner is positioned on.
func (e *Engine) CurrentStage() stagegraph.Stage {
	return e.run.CurrentStage()
}

// CompleteCurrentStage awards the current stage's stars, marks it done,
// publishes a feedback event, and auto-advances when a successor
// exists. Completing an already-complete stage is a no-op: no stars,
// no feedback, no movement. Evidence is free-form text describing what
// the learner did, stored with the stage event.
//
// The award is persisted before any run state changes. A failed award
// leaves the stage incomplete, so the learner's next attempt persists
// it again instead of being swallowed by the no-op branch.
func (e *Engine) CompleteCurrentStage(ctx context.Context, evidence string) (Transition, error) {
	st := e.run.CurrentStage()

	if e.run.completed[st.ID] {
		return Transition{Stage: st, AlreadyComplete: true}, nil
	}

	tr := Transition{
		Stage:        st,
		StarsAwarded: st.RewardStars,
	}

	if e.stars != nil {
		award, err := e.stars.AwardStage(ctx, e.run.RunID, e.run.Activity, st, evidence)
		if err != nil {
			return Transition{Stage: st}, err
		}
		tr.Award = award
	}

	e.run.completed[st.ID] = true
	e.run.earned += st.RewardStars

	tr.FeedbackGen = e.fb.Publish(feedback.Event{
		Message: st.CompletionMessage,
		Stars:   st.RewardStars,
	})

	if next, ok := e.run.Activity.Graph.Next(st.ID); ok {
		e.run.current = next.ID
		tr.AutoAdvanced = true
	}
	tr.ActivityDone = e.IsActivityComplete()

	return tr, nil
}

// AdvanceStage moves to the next stage only when the current stage has
// been completed. Returns the stage moved to and whether movement
// happened; a gated or terminal position leaves the run unchanged.
func (e *Engine) AdvanceStage() (stagegraph.Stage, bool) {
	st := e.run.CurrentStage()
	if !e.run.completed[st.ID] {
		return st, false
	}
	next, ok := e.run.Activity.Graph.Next(st.ID)
	if !ok {
		return st, false
	}
	e.run.current = next.ID
	return next, true
}

// GoToPreviousStage moves to the predecessor stage. Revisiting never
// changes earned stars or completion marks. Returns false at the first
// stage.
func (e *Engine) GoToPreviousStage() (stagegraph.Stage, bool) {
	st := e.run.CurrentStage()
	prev, ok := e.run.Activity.Graph.Prev(st.ID)
	if !ok {
		return st, false
	}
	e.run.current = prev.ID
	return prev, true
}

// IsActivityComplete reports whether the terminal stage has been
// completed.
func (e *Engine) IsActivityComplete() bool {
	return e.run.completed[e.run.Activity.Graph.Terminal().ID]
}
