package store

import (
	"context"
	"time"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
)

// Snapshot represents a point-in-time capture of quiz progression,
// used to resume a roadmap without replaying the event log.
type Snapshot struct {
	ID        int
	Sequence  int64 // assigned from the global counter on save
	Timestamp time.Time
	Data      quiz.SnapshotData
}

// SnapshotRepo manages progression snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot, stamping snap.Sequence.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures a single answered question.
type AttemptEventData struct {
	SessionID     string
	AttemptID     string
	Day           int
	QuestionID    int
	Kind          string
	Prompt        string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Graded        bool
	Warmup        bool
	TimeMs        int64
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	Day             int
	QuestionsServed int
	CorrectAnswers  int
	Score           float64
	DurationSecs    int
}

// SessionSummary is one finished session as shown by the history views.
type SessionSummary struct {
	SessionID       string
	Day             int
	EndedAt         time.Time
	QuestionsServed int
	CorrectAnswers  int
	Score           float64
	DurationSecs    int
}

// DayStats aggregates graded attempts for one roadmap day.
type DayStats struct {
	Day      int
	Attempts int
	Correct  int
}

// Accuracy returns correct/attempts, or 0 with no attempts.
func (d DayStats) Accuracy() float64 {
	if d.Attempts == 0 {
		return 0
	}
	return float64(d.Correct) / float64(d.Attempts)
}

// CoachRequestEventData captures the data for a single coach API call.
type CoachRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// CoachUsage aggregates coach API calls for one model.
type CoachUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the study event log.
type EventRepo interface {
	// AppendAttempt records one answered question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendCoachRequest records a coach API call event.
	AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error

	// RecentSessions returns finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// DayAccuracy aggregates graded progression attempts per day.
	// Warm-up and recall attempts are excluded.
	DayAccuracy(ctx context.Context) ([]DayStats, error)

	// CoachUsage aggregates coach API token usage per model.
	CoachUsage(ctx context.Context) ([]CoachUsage, error)
}
