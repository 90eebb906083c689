package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/tinkerlab/tinkeralpha/ent"
	"github.com/tinkerlab/tinkeralpha/ent/mascotrequestevent"
)

func (r *eventRepo) AppendMascotRequest(ctx context.Context, data MascotRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MascotRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mascot request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryMascotRequests(ctx context.Context, opts QueryOpts) ([]MascotRequestRecord, error) {
	query := r.client.MascotRequestEvent.Query().
		Order(ent.Desc(mascotrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(mascotrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(mascotrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(mascotrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(mascotrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mascot request events: %w", err)
	}

	records := make([]MascotRequestRecord, len(events))
	for i, e := range events {
		records[i] = MascotRequestRecord{
			ID:           e.ID,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) MascotUsageByModel(ctx context.Context) ([]MascotUsage, error) {
	events, err := r.client.MascotRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mascot usage: %w", err)
	}

	byModel := make(map[string]*MascotUsage)
	latency := make(map[string]int64)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &MascotUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[e.Model] += e.LatencyMs
	}

	usage := make([]MascotUsage, 0, len(byModel))
	for model, u := range byModel {
		if u.Calls > 0 {
			u.AvgLatencyMs = latency[model] / int64(u.Calls)
		}
		usage = append(usage, *u)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Model < usage[j].Model })
	return usage, nil
}
