package store

import (
	"context"
	"testing"
	"time"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Timestamp: now,
		Data:      quiz.SnapshotData{TopicIndex: 4, QuestionIndex: 2, TopicsCompleted: 4},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", snap.Sequence)
	}
	if snap.Data.TopicIndex != 4 || snap.Data.QuestionIndex != 2 {
		t.Errorf("position = (%d, %d), want (4, 2)", snap.Data.TopicIndex, snap.Data.QuestionIndex)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      quiz.SnapshotData{TopicIndex: i},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.TopicIndex != 2 {
		t.Errorf("topic index = %d, want 2", snap.Data.TopicIndex)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAttemptAndDayAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", AttemptID: "a1", Day: 1, QuestionID: 1, Kind: "mcq", Prompt: "q1", LearnerAnswer: "b", Correct: true, Graded: true},
		{SessionID: "s1", AttemptID: "a2", Day: 1, QuestionID: 2, Kind: "mcq", Prompt: "q2", LearnerAnswer: "a", Correct: false, Graded: true},
		{SessionID: "s1", AttemptID: "a3", Day: 1, QuestionID: 3, Kind: "repeat", Prompt: "q3", LearnerAnswer: "x", Correct: true, Graded: false},
		{SessionID: "s2", AttemptID: "a4", Day: 2, QuestionID: 1, Kind: "numeric", Prompt: "q4", LearnerAnswer: "4", Correct: true, Graded: true},
		{SessionID: "s2", AttemptID: "a5", Day: 1, QuestionID: 1, Kind: "mcq", Prompt: "q1", LearnerAnswer: "b", Correct: true, Graded: true, Warmup: true},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %s: %v", a.AttemptID, err)
		}
	}

	stats, err := repo.DayAccuracy(ctx)
	if err != nil {
		t.Fatalf("day accuracy: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got stats for %d days, want 2", len(stats))
	}
	// Day 1: two graded progression attempts, one correct. The recall
	// attempt and the warm-up are excluded.
	if stats[0].Day != 1 || stats[0].Attempts != 2 || stats[0].Correct != 1 {
		t.Errorf("day 1 stats = %+v, want 2 attempts 1 correct", stats[0])
	}
	if got := stats[0].Accuracy(); got != 0.5 {
		t.Errorf("day 1 accuracy = %v, want 0.5", got)
	}
	if stats[1].Day != 2 || stats[1].Attempts != 1 || stats[1].Correct != 1 {
		t.Errorf("day 2 stats = %+v, want 1 attempt 1 correct", stats[1])
	}
}

func TestRecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sessions := []SessionEventData{
		{SessionID: "s1", Action: "start", Day: 1},
		{SessionID: "s1", Action: "end", Day: 1, QuestionsServed: 5, CorrectAnswers: 4, Score: 0.8, DurationSecs: 300},
		{SessionID: "s2", Action: "start", Day: 2},
		{SessionID: "s2", Action: "end", Day: 2, QuestionsServed: 4, CorrectAnswers: 3, Score: 0.75, DurationSecs: 240},
	}
	for _, ev := range sessions {
		if err := repo.AppendSession(ctx, ev); err != nil {
			t.Fatalf("append session %s/%s: %v", ev.SessionID, ev.Action, err)
		}
	}

	got, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2 (start events excluded)", len(got))
	}
	for _, sum := range got {
		if sum.SessionID == "s2" && sum.Score != 0.75 {
			t.Errorf("s2 score = %v, want 0.75", sum.Score)
		}
	}
}

func TestAppendCoachRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendCoachRequest(ctx, CoachRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "explanation",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append coach request: %v", err)
	}

	count, err := s.Client().CoachRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("coach request events = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestCoachUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []CoachRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "explanation", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "explanation", InputTokens: 200, OutputTokens: 70, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "explanation", InputTokens: 90, OutputTokens: 40, Success: false},
	}
	for _, c := range calls {
		if err := repo.AppendCoachRequest(ctx, c); err != nil {
			t.Fatalf("append coach request: %v", err)
		}
	}

	usage, err := repo.CoachUsage(ctx)
	if err != nil {
		t.Fatalf("coach usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage models = %d, want 2", len(usage))
	}

	// Sorted by model name.
	if usage[0].Model != "claude-sonnet-4-5" || usage[1].Model != "gemini-2.5-flash" {
		t.Errorf("unexpected model order: %q, %q", usage[0].Model, usage[1].Model)
	}
	if usage[0].Calls != 2 || usage[0].InputTokens != 300 || usage[0].OutputTokens != 120 {
		t.Errorf("unexpected aggregation: %+v", usage[0])
	}
	if usage[1].Calls != 1 || usage[1].InputTokens != 90 {
		t.Errorf("unexpected aggregation: %+v", usage[1])
	}
}
