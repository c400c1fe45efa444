package quiz

import (
	"fmt"
	"time"
)

// SnapshotData is the serializable form of a session, stored by the snapshot
// repo so a learner resumes exactly where they left off. Reloading a snapshot
// reproduces identical CurrentQuestion output.
type SnapshotData struct {
	TopicIndex      int               `json:"topic_index"`
	QuestionIndex   int               `json:"question_index"`
	TopicsCompleted int               `json:"topics_completed"`
	Finished        bool              `json:"finished"`
	Attempts        []AttemptSnapshot `json:"attempts,omitempty"`
}

// AttemptSnapshot is the serialized form of one Attempt.
type AttemptSnapshot struct {
	ID         string    `json:"id"`
	QuestionID int       `json:"question_id"`
	TopicDay   int       `json:"topic_day"`
	Submitted  string    `json:"submitted"`
	Correct    bool      `json:"correct"`
	Graded     bool      `json:"graded"`
	At         time.Time `json:"at"`
}

// Snapshot captures the current session state.
func (e *Engine) Snapshot() SnapshotData {
	attempts := make([]AttemptSnapshot, len(e.state.Attempts))
	for i, a := range e.state.Attempts {
		attempts[i] = AttemptSnapshot(a)
	}
	return SnapshotData{
		TopicIndex:      e.state.TopicIndex,
		QuestionIndex:   e.state.QuestionIndex,
		TopicsCompleted: e.state.TopicsCompleted,
		Finished:        e.state.Finished(),
		Attempts:        attempts,
	}
}

// Restore replaces the session state with a previously captured snapshot.
// It rejects positions that do not index a valid topic and question.
func (e *Engine) Restore(data SnapshotData) error {
	if data.TopicIndex < 0 || data.TopicIndex >= len(e.topics) {
		return fmt.Errorf("snapshot topic index %d out of range", data.TopicIndex)
	}
	n := len(e.topics[data.TopicIndex].Questions)
	if data.QuestionIndex < 0 || data.QuestionIndex > n {
		return fmt.Errorf("snapshot question index %d out of range for day %d", data.QuestionIndex, data.TopicIndex+1)
	}

	attempts := make([]Attempt, len(data.Attempts))
	for i, a := range data.Attempts {
		attempts[i] = Attempt(a)
	}
	e.state = &SessionState{
		TopicIndex:      data.TopicIndex,
		QuestionIndex:   data.QuestionIndex,
		TopicsCompleted: data.TopicsCompleted,
		Attempts:        attempts,
		finished:        data.Finished,
	}
	return nil
}
