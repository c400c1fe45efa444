// Package quiz implements the deterministic progression engine for the
// 21-day roadmap: question serving, answer grading, topic transitions, and
// progress accounting. The presentation shell owns all I/O and serializes
// every call; the engine is plain call/return with no internal concurrency.
package quiz

import (
	"fmt"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

// Engine drives one learner session through the curriculum.
//
// State machine: InTopic(day, q) --SubmitAnswer--> InTopic(day, q+1) or
// TopicComplete(day); TopicComplete(day) --AdvanceTopic--> InTopic(day+1, 0)
// or RoadmapComplete after the final day. RoadmapComplete is terminal: every
// operation then fails with ErrRoadmapFinished.
type Engine struct {
	topics []curriculum.Topic
	state  *SessionState
}

// AttemptResult is returned to the shell after each submission.
type AttemptResult struct {
	Correct bool
	Graded  bool
	// CorrectAnswer is the canonical answer as display text.
	CorrectAnswer string
	Explanation   string
}

// New creates an engine over a loaded curriculum with a fresh session.
func New(topics []curriculum.Topic) (*Engine, error) {
	if len(topics) != curriculum.TotalDays {
		return nil, fmt.Errorf("curriculum has %d topics, want %d", len(topics), curriculum.TotalDays)
	}
	for i := range topics {
		if topics[i].Day != i+1 {
			return nil, fmt.Errorf("topic at position %d has day %d", i, topics[i].Day)
		}
		if len(topics[i].Questions) == 0 {
			return nil, fmt.Errorf("day %d has no questions", topics[i].Day)
		}
	}
	return &Engine{topics: topics, state: NewSessionState()}, nil
}

// CurrentTopic returns the topic the session is positioned on.
// In the terminal state it returns the final topic.
func (e *Engine) CurrentTopic() *curriculum.Topic {
	return &e.topics[e.state.TopicIndex]
}

// CurrentQuestion returns the next unanswered question of the current topic,
// in ascending question-ID order. It returns ErrTopicComplete when the topic
// is exhausted and ErrRoadmapFinished in the terminal state.
func (e *Engine) CurrentQuestion() (*curriculum.Question, error) {
	if e.state.finished {
		return nil, ErrRoadmapFinished
	}
	t := e.CurrentTopic()
	if e.state.QuestionIndex >= len(t.Questions) {
		return nil, ErrTopicComplete
	}
	return &t.Questions[e.state.QuestionIndex], nil
}

// SubmitAnswer grades text against the question identified by questionID,
// which must be the current question; otherwise it fails with
// *OutOfSequenceError and changes nothing. Every accepted submission appends
// an Attempt and consumes the question, correct or not.
func (e *Engine) SubmitAnswer(questionID int, text string) (AttemptResult, error) {
	q, err := e.CurrentQuestion()
	if err != nil {
		return AttemptResult{}, err
	}
	if q.ID != questionID {
		return AttemptResult{}, &OutOfSequenceError{Submitted: questionID, Expected: q.ID}
	}

	correct := CheckAnswer(text, q)
	e.state.record(q, e.CurrentTopic().Day, text, correct)

	return AttemptResult{
		Correct:       correct,
		Graded:        q.Kind.Gradeable(),
		CorrectAnswer: q.CorrectDisplay(),
		Explanation:   q.Explanation,
	}, nil
}

// AdvanceTopic moves to the next topic. It is valid only once the current
// topic is complete (ErrTopicNotFinished otherwise, state untouched) and
// returns ErrRoadmapFinished with a nil topic after the final day.
func (e *Engine) AdvanceTopic() (*curriculum.Topic, error) {
	if e.state.finished {
		return nil, ErrRoadmapFinished
	}
	if e.state.QuestionIndex < len(e.CurrentTopic().Questions) {
		return nil, ErrTopicNotFinished
	}

	e.state.TopicsCompleted++
	if e.state.TopicIndex == len(e.topics)-1 {
		e.state.finished = true
		return nil, ErrRoadmapFinished
	}
	e.state.TopicIndex++
	e.state.QuestionIndex = 0
	return e.CurrentTopic(), nil
}

// Report is a pure read of session progress.
type Report struct {
	TopicsCompleted int
	TotalTopics     int
	CorrectAttempts int
	GradedAttempts  int
	// OverallScore is CorrectAttempts / GradedAttempts, 0 with no attempts.
	OverallScore float64
}

// Progress returns the session's progress report.
func (e *Engine) Progress() Report {
	correct, graded := e.state.Score()
	r := Report{
		TopicsCompleted: e.state.TopicsCompleted,
		TotalTopics:     curriculum.TotalDays,
		CorrectAttempts: correct,
		GradedAttempts:  graded,
	}
	if graded > 0 {
		r.OverallScore = float64(correct) / float64(graded)
	}
	return r
}

// Attempts returns the session's attempt history in submission order.
// The returned slice must not be mutated.
func (e *Engine) Attempts() []Attempt {
	return e.state.Attempts
}
