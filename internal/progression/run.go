package progression

import (
	"github.com/google/uuid"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

// Run is the in-memory state of one attempt at an activity. It lives for
// the duration of the activity view; durable star totals come from the
// stage events persisted as each stage completes.
type Run struct {
	RunID     string
	Activity  activities.Activity
	current   stagegraph.StageID
	completed map[stagegraph.StageID]bool
	earned    int
}

// NewRun starts a fresh run positioned at the activity's first stage.
func NewRun(a activities.Activity) *Run {
	return &Run{
		RunID:     uuid.NewString(),
		Activity:  a,
		current:   a.Graph.First().ID,
		completed: make(map[stagegraph.StageID]bool),
	}
}

// CurrentStage returns the stage the learner is positioned on.
func (r *Run) CurrentStage() stagegraph.Stage {
	st, _ := r.Activity.Graph.Get(r.current)
	return st
}

// IsStageComplete reports whether the given stage has been completed in
// this run.
func (r *Run) IsStageComplete(id stagegraph.StageID) bool {
	return r.completed[id]
}

// EarnedStars returns the stars accumulated in this run so far.
func (r *Run) EarnedStars() int {
	return r.earned
}

// CompletedCount returns how many stages have been completed.
func (r *Run) CompletedCount() int {
	return len(r.completed)
}
