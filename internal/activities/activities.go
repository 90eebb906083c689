// Package activities holds the guided activity definitions. Each activity
// contributes only data (stages, rewards, copy) while the progression
// engine supplies all transition logic. Adding an activity means
// registering a new stage graph, never touching the engine.
package activities

import (
	"fmt"
	"slices"
	"sort"

	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

// Question is a multiple-choice puzzle prompt. Answer indexes Options.
type Question struct {
	Prompt  string
	Options []string
	Answer  int
}

// Activity is one guided learning experience.
type Activity struct {
	ID      string
	Title   string
	Subject string
	Tagline string
	// Badge is the completion badge name shown on the final stage.
	Badge string
	// NextActivityID chains activities on the complete screen ("" = none).
	NextActivityID string
	Graph          *stagegraph.Graph
	// Puzzles holds optional quiz questions keyed by stage. A puzzle
	// stage with a question requires a correct answer to complete.
	Puzzles map[stagegraph.StageID]Question
}

// PuzzleFor returns the quiz question for a stage, if one is defined.
func (a Activity) PuzzleFor(id stagegraph.StageID) (Question, bool) {
	q, ok := a.Puzzles[id]
	return q, ok
}

// registry holds all known activities, keyed by ID. The four built-in
// activities are registered at init; teachers can add more at runtime.
var registry = map[string]Activity{}

func init() {
	for _, a := range []Activity{circuit(), motor(), traffic(), robot()} {
		registry[a.ID] = a
	}
}

// Get returns an activity by ID, or an error if not found.
func Get(id string) (Activity, error) {
	a, ok := registry[id]
	if !ok {
		return Activity{}, fmt.Errorf("activity not found: %q", id)
	}
	return a, nil
}

// All returns all registered activities in stable display order:
// the built-in chain first, then custom activities by title.
func All() []Activity {
	builtinOrder := []string{"circuit", "motor", "traffic", "robot"}

	var builtin, custom []Activity
	for id, a := range registry {
		if slices.Contains(builtinOrder, id) {
			builtin = append(builtin, a)
		} else {
			custom = append(custom, a)
		}
	}

	sort.Slice(builtin, func(i, j int) bool {
		return slices.Index(builtinOrder, builtin[i].ID) < slices.Index(builtinOrder, builtin[j].ID)
	})
	sort.Slice(custom, func(i, j int) bool {
		return custom[i].Title < custom[j].Title
	})

	return append(builtin, custom...)
}

// Register adds a new activity. The ID must be unused and the activity
// must carry a valid stage graph.
func Register(a Activity) error {
	if a.Graph == nil {
		return fmt.Errorf("activity %q has no stage graph", a.ID)
	}
	if a.ID != a.Graph.ActivityID() {
		return fmt.Errorf("activity ID %q does not match graph activity %q", a.ID, a.Graph.ActivityID())
	}
	if _, exists := registry[a.ID]; exists {
		return fmt.Errorf("activity %q already registered", a.ID)
	}
	registry[a.ID] = a
	return nil
}

// StandardStages builds the standard activity shape (intro, hands-on
// build, interactive practice, puzzle, complete) with the standard
// reward pattern. Custom activities created at runtime use this shape.
func StandardStages(buildName, practiceName, puzzleName string) []stagegraph.Stage {
	return []stagegraph.Stage{
		{
			ID: "intro", Name: "Introduction", Kind: stagegraph.KindIntro,
			Order: 1, RewardStars: 1,
			CompletionMessage: "Ready to start building!",
		},
		{
			ID: "build", Name: buildName, Kind: stagegraph.KindHandsOn,
			Order: 2, RewardStars: 3,
			CompletionMessage: "Great job! Build completed!",
		},
		{
			ID: "practice", Name: practiceName, Kind: stagegraph.KindPractice,
			Order: 3, RewardStars: 5,
			CompletionMessage: "Interactive activity completed! Amazing work!",
		},
		{
			ID: "puzzle", Name: puzzleName, Kind: stagegraph.KindPuzzle,
			Order: 4, RewardStars: 7,
			CompletionMessage: "Puzzle Master! All sections completed!",
		},
		{
			ID: "complete", Name: "Congratulations!", Kind: stagegraph.KindComplete,
			Order: 5, RewardStars: 0,
			CompletionMessage: "Activity mastered!",
		},
	}
}
