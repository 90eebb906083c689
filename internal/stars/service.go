// Package stars manages star awards and activity badges. Every award is
// backed by a persisted stage event; totals are always recomputed from
// the event log, never cached across runs.
package stars

import (
	"context"
	"fmt"
	"time"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
	"github.com/tinkerlab/tinkeralpha/internal/store"
)

// Service manages star computation and award tracking.
type Service struct {
	eventRepo store.EventRepo

	// SessionAwards accumulates awards granted during the current session.
	SessionAwards []Award
}

// NewService creates a star service backed by the event repo.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// AwardStage grants the stage's stars and persists the completion.
// Completing an activity's terminal stage also earns its badge.
func (s *Service) AwardStage(ctx context.Context, runID string, a activities.Activity, st stagegraph.Stage, evidence string) (*Award, error) {
	award := &Award{
		ActivityID:    a.ID,
		ActivityTitle: a.Title,
		StageID:       string(st.ID),
		StageName:     st.Name,
		Stars:         st.RewardStars,
		Reason:        fmt.Sprintf("Completed %s in %s", st.Name, a.Title),
		AwardedAt:     time.Now(),
	}
	if st.Kind == stagegraph.KindComplete {
		award.ActivityComplete = true
		award.Badge = a.Badge
	}

	if s.eventRepo != nil {
		err := s.eventRepo.AppendStageEvent(ctx, store.StageEventData{
			RunID:            runID,
			ActivityID:       a.ID,
			StageID:          string(st.ID),
			StageName:        st.Name,
			Stars:            st.RewardStars,
			ActivityComplete: award.ActivityComplete,
			Evidence:         evidence,
		})
		if err != nil {
			return nil, err
		}
	}

	s.SessionAwards = append(s.SessionAwards, *award)
	return award, nil
}

// SessionStars sums the stars awarded during the current session.
func (s *Service) SessionStars() int {
	total := 0
	for _, a := range s.SessionAwards {
		total += a.Stars
	}
	return total
}

// ResetSession clears the session accumulator. Called at sign-in.
func (s *Service) ResetSession() {
	s.SessionAwards = nil
}

// Totals returns per-activity star totals and the overall total from
// the event log.
func (s *Service) Totals(ctx context.Context) (map[string]int, int, error) {
	if s.eventRepo == nil {
		return map[string]int{}, 0, nil
	}
	return s.eventRepo.StarTotals(ctx)
}

// Badges returns the badges earned across all runs, in activity display
// order.
func (s *Service) Badges(ctx context.Context) ([]Badge, error) {
	if s.eventRepo == nil {
		return nil, nil
	}
	done, err := s.eventRepo.CompletedActivities(ctx)
	if err != nil {
		return nil, err
	}
	var badges []Badge
	for _, a := range activities.All() {
		if done[a.ID] && a.Badge != "" {
			badges = append(badges, Badge{
				ActivityID: a.ID,
				Title:      a.Title,
				Name:       a.Badge,
			})
		}
	}
	return badges, nil
}

// SnapshotData builds the star totals for snapshot persistence.
func (s *Service) SnapshotData(ctx context.Context) *store.StarsSnapshotData {
	byActivity, total, _ := s.Totals(ctx)
	return &store.StarsSnapshotData{
		TotalStars: total,
		ByActivity: byActivity,
	}
}
