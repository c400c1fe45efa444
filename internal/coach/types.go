package coach

import "github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"

// Explanation is a generated walkthrough of a question the learner missed.
type Explanation struct {
	Day         int
	QuestionID  int
	Walkthrough string
	KeyInsight  string
	CheckItem   string
}

// ExplanationInput holds all context needed to explain a missed question.
type ExplanationInput struct {
	Day           int
	DayTitle      string
	Phase         curriculum.Phase
	Question      curriculum.Question
	LearnerAnswer string
}
