package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

// Attempt records one answer submission. Created on submission, never mutated,
// retained for the session's lifetime.
type Attempt struct {
	ID         string
	QuestionID int
	TopicDay   int
	Submitted  string
	Correct    bool
	// Graded is false for recall prompts, which are consumed without
	// counting toward the score.
	Graded bool
	At     time.Time
}

// SessionState is the mutable progress of one learner's run through the
// roadmap. It is owned by exactly one Engine and never shared; multiple
// learners get independent instances.
type SessionState struct {
	// TopicIndex is the 0-based index into the curriculum (day - 1).
	TopicIndex int

	// QuestionIndex is the 0-based index of the next unanswered question
	// within the current topic. Equal to len(Questions) when the topic
	// is complete.
	QuestionIndex int

	// Attempts holds every submission in order.
	Attempts []Attempt

	// TopicsCompleted counts topics fully advanced past.
	TopicsCompleted int

	// finished is set once the final topic has been advanced past.
	finished bool
}

// NewSessionState returns a fresh state positioned at day 1, question 1.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// Finished reports whether the terminal roadmap-complete state was reached.
func (s *SessionState) Finished() bool { return s.finished }

// Score returns (correct, graded) attempt counts.
func (s *SessionState) Score() (correct, graded int) {
	for i := range s.Attempts {
		if !s.Attempts[i].Graded {
			continue
		}
		graded++
		if s.Attempts[i].Correct {
			correct++
		}
	}
	return correct, graded
}

// record appends an attempt for the given question and advances the question
// cursor. Every submission consumes the current question, right or wrong.
func (s *SessionState) record(q *curriculum.Question, day int, submitted string, correct bool) Attempt {
	a := Attempt{
		ID:         uuid.New().String(),
		QuestionID: q.ID,
		TopicDay:   day,
		Submitted:  submitted,
		Correct:    correct,
		Graded:     q.Kind.Gradeable(),
		At:         time.Now(),
	}
	s.Attempts = append(s.Attempts, a)
	s.QuestionIndex++
	return a
}
