package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/mattmattheisen/smallcap-lab-study-coach/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAttemptID(data.AttemptID).
		SetDay(data.Day).
		SetQuestionID(data.QuestionID).
		SetKind(data.Kind).
		SetPrompt(data.Prompt).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetGraded(data.Graded).
		SetWarmup(data.Warmup).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) DayAccuracy(ctx context.Context) ([]DayStats, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.Graded(true),
			attemptevent.Warmup(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query graded attempts: %w", err)
	}

	byDay := make(map[int]*DayStats)
	for _, e := range events {
		st, ok := byDay[e.Day]
		if !ok {
			st = &DayStats{Day: e.Day}
			byDay[e.Day] = st
		}
		st.Attempts++
		if e.Correct {
			st.Correct++
		}
	}

	stats := make([]DayStats, 0, len(byDay))
	for _, st := range byDay {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Day < stats[j].Day })
	return stats, nil
}
