package stagegraph

import (
	"fmt"
	"strings"
)

// validateStages performs all structural checks on a stage slice that is
// already sorted by Order. Returns a combined error describing all
// problems found, or nil if valid.
func validateStages(activityID string, stages []Stage) error {
	var errs []string

	if activityID == "" {
		errs = append(errs, "activity ID must not be empty")
	}
	if len(stages) < 2 {
		errs = append(errs, fmt.Sprintf("need at least an entry and a terminal stage, got %d", len(stages)))
	}

	idSet := make(map[StageID]bool, len(stages))
	orderSet := make(map[int]bool, len(stages))
	completeCount := 0

	for _, s := range stages {
		if s.ID == "" {
			errs = append(errs, "stage with empty ID")
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate stage ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if orderSet[s.Order] {
			errs = append(errs, fmt.Sprintf("duplicate stage order %d (stage %q); order must be a total order with no ties", s.Order, s.ID))
		}
		orderSet[s.Order] = true

		if s.RewardStars < 0 {
			errs = append(errs, fmt.Sprintf("stage %q: RewardStars must be >= 0, got %d", s.ID, s.RewardStars))
		}
		if s.Kind == KindComplete {
			completeCount++
		}
	}

	if len(stages) > 0 {
		if stages[0].Kind != KindIntro {
			errs = append(errs, fmt.Sprintf("first stage %q must be an intro stage", stages[0].ID))
		}
		last := stages[len(stages)-1]
		if last.Kind != KindComplete {
			errs = append(errs, fmt.Sprintf("terminal stage %q must be a completion stage", last.ID))
		}
	}
	if completeCount > 1 {
		errs = append(errs, fmt.Sprintf("exactly one completion stage allowed, got %d", completeCount))
	}

	if len(errs) > 0 {
		return fmt.Errorf("stage graph %q validation failed:\n  %s", activityID, strings.Join(errs, "\n  "))
	}
	return nil
}
