package store

import (
	"context"
	"fmt"

	"github.com/mattmattheisen/smallcap-lab-study-coach/ent"
	"github.com/mattmattheisen/smallcap-lab-study-coach/ent/sessionevent"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetDay(data.Day).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScore(data.Score).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, SessionSummary{
			SessionID:       e.SessionID,
			Day:             e.Day,
			EndedAt:         e.Timestamp,
			QuestionsServed: e.QuestionsServed,
			CorrectAnswers:  e.CorrectAnswers,
			Score:           e.Score,
			DurationSecs:    e.DurationSecs,
		})
	}
	return summaries, nil
}
