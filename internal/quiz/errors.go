package quiz

import (
	"errors"
	"fmt"
)

// ErrTopicComplete marks that every question in the current topic has been
// consumed. Not a failure: the shell should offer AdvanceTopic.
var ErrTopicComplete = errors.New("topic complete")

// ErrTopicNotFinished is returned by AdvanceTopic while unanswered questions
// remain in the current topic. Session state is left unchanged.
var ErrTopicNotFinished = errors.New("topic not finished")

// ErrRoadmapFinished is returned by every operation once the terminal
// roadmap-complete state has been reached.
var ErrRoadmapFinished = errors.New("roadmap finished")

// OutOfSequenceError reports an answer submitted for a question that is not
// the current one. Recoverable: the shell should re-sync via CurrentQuestion.
type OutOfSequenceError struct {
	Submitted int // question ID the shell submitted
	Expected  int // question ID the engine is serving
}

func (e *OutOfSequenceError) Error() string {
	return fmt.Sprintf("answer for question %d submitted out of sequence (current question is %d)", e.Submitted, e.Expected)
}
