package store

import (
	"context"
	"fmt"

	"github.com/tinkerlab/tinkeralpha/ent"
	"github.com/tinkerlab/tinkeralpha/ent/stageevent"
)

func (r *eventRepo) AppendStageEvent(ctx context.Context, data StageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StageEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetActivityID(data.ActivityID).
		SetStageID(data.StageID).
		SetStageName(data.StageName).
		SetStars(data.Stars).
		SetActivityComplete(data.ActivityComplete).
		SetEvidence(data.Evidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save stage event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error) {
	query := r.client.StageEvent.Query().
		Order(ent.Desc(stageevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(stageevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(stageevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(stageevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(stageevent.TimestampLTE(opts.To))
	}
	if opts.ActivityID != "" {
		query = query.Where(stageevent.ActivityID(opts.ActivityID))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stage events: %w", err)
	}

	records := make([]StageEventRecord, len(events))
	for i, e := range events {
		records[i] = StageEventRecord{
			RunID:            e.RunID,
			ActivityID:       e.ActivityID,
			StageID:          e.StageID,
			StageName:        e.StageName,
			Stars:            e.Stars,
			ActivityComplete: e.ActivityComplete,
			Evidence:         e.Evidence,
			Sequence:         e.Sequence,
			Timestamp:        e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) StarTotals(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.StageEvent.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query star totals: %w", err)
	}

	byActivity := make(map[string]int)
	total := 0
	for _, e := range events {
		byActivity[e.ActivityID] += e.Stars
		total += e.Stars
	}
	return byActivity, total, nil
}

func (r *eventRepo) CompletedActivities(ctx context.Context) (map[string]bool, error) {
	events, err := r.client.StageEvent.Query().
		Where(stageevent.ActivityComplete(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed activities: %w", err)
	}

	done := make(map[string]bool)
	for _, e := range events {
		done[e.ActivityID] = true
	}
	return done, nil
}
