package curriculum

import "fmt"

// TotalDays is the length of the Small-Cap Lab roadmap.
const TotalDays = 21

// Phase groups roadmap days into the three study phases.
type Phase string

const (
	PhaseFoundations    Phase = "foundations"     // Days 1-7
	PhaseQuantMechanics Phase = "quant-mechanics" // Days 8-14
	PhaseApplication    Phase = "application"     // Days 15-21
)

// PhaseForDay returns the phase a roadmap day belongs to.
func PhaseForDay(day int) Phase {
	switch {
	case day <= 7:
		return PhaseFoundations
	case day <= 14:
		return PhaseQuantMechanics
	default:
		return PhaseApplication
	}
}

// DisplayName returns a human-readable name for a phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseFoundations:
		return "Foundations"
	case PhaseQuantMechanics:
		return "Quant Mechanics"
	case PhaseApplication:
		return "Application"
	default:
		return string(p)
	}
}

// Kind identifies how a question is asked and graded.
type Kind string

const (
	// KindMultipleChoice presents fixed choices; graded against the answer index.
	KindMultipleChoice Kind = "mcq"
	// KindNumeric expects a number; graded within a tolerance.
	KindNumeric Kind = "numeric"
	// KindRecall is an active-recall prompt. It is shown with its answer text
	// and consumed without grading.
	KindRecall Kind = "repeat"
)

// Gradeable reports whether answers of this kind count toward the score.
func (k Kind) Gradeable() bool {
	return k == KindMultipleChoice || k == KindNumeric
}

// Question is a single quiz item within a topic. Immutable once loaded.
type Question struct {
	// ID is the 1-based position within the topic. Unique per topic.
	ID int

	Kind   Kind
	Prompt string

	// Choices and AnswerIndex apply to multiple-choice questions.
	Choices     []string
	AnswerIndex int

	// NumericAnswer and Tolerance apply to numeric questions.
	NumericAnswer float64
	Tolerance     float64

	// AnswerText is the model answer shown for recall prompts, and as
	// reference text in feedback for the other kinds when set.
	AnswerText string

	// Explanation is shown after the question is answered.
	Explanation string
}

// CorrectDisplay returns the canonical correct answer as display text.
func (q *Question) CorrectDisplay() string {
	switch q.Kind {
	case KindMultipleChoice:
		if q.AnswerIndex >= 0 && q.AnswerIndex < len(q.Choices) {
			return q.Choices[q.AnswerIndex]
		}
		return ""
	case KindNumeric:
		return fmt.Sprintf("%g (±%g)", q.NumericAnswer, q.Tolerance)
	default:
		return q.AnswerText
	}
}

// Topic is one day of the roadmap. Immutable once loaded.
type Topic struct {
	Day       int
	Phase     Phase
	Title     string
	Questions []Question
}

// QuestionByID returns the question with the given ID, or nil.
func (t *Topic) QuestionByID(id int) *Question {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i]
		}
	}
	return nil
}

// GradeableCount returns how many questions in the topic count toward the score.
func (t *Topic) GradeableCount() int {
	n := 0
	for i := range t.Questions {
		if t.Questions[i].Kind.Gradeable() {
			n++
		}
	}
	return n
}
