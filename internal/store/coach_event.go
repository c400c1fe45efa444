package store

import (
	"context"
	"fmt"
	"sort"
)

func (r *eventRepo) AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CoachRequestEvent.Create().
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
		return fmt.Errorf("save coach request event: %w", err)
	}

	return nil
}

func (r *eventRepo) CoachUsage(ctx context.Context) ([]CoachUsage, error) {
	events, err := r.client.CoachRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query coach requests: %w", err)
	}

	byModel := make(map[string]*CoachUsage)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &CoachUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	usage := make([]CoachUsage, 0, len(byModel))
	for _, u := range byModel {
		usage = append(usage, *u)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Model < usage[j].Model })
	return usage, nil
}
