package quiz

import (
	"testing"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

func TestCheckAnswer_Numeric(t *testing.T) {
	tol := 0.01
	q := &curriculum.Question{
		Kind:          curriculum.KindNumeric,
		Prompt:        "Kelly fraction for p=0.55, b=1.5?",
		NumericAnswer: 0.25,
		Tolerance:     tol,
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact", "0.25", true},
		{"within tolerance above", "0.259", true},
		{"within tolerance below", "0.241", true},
		{"beyond tolerance", "0.27", false},
		{"padded", " 0.25 ", true},
		{"thousands comma stripped", "0.25", true},
		{"not a number", "a quarter", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.text, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCheckAnswer_NumericCommas(t *testing.T) {
	q := &curriculum.Question{
		Kind:          curriculum.KindNumeric,
		NumericAnswer: 1250000,
		Tolerance:     0.5,
	}
	if !CheckAnswer("1,250,000", q) {
		t.Error("comma-grouped numerals should parse")
	}
}

func TestCheckAnswer_Recall(t *testing.T) {
	q := &curriculum.Question{
		Kind:       curriculum.KindRecall,
		Prompt:     "State the Kelly formula.",
		AnswerText: "f = p - q/b",
	}
	// Recall prompts are self-graded; any submission passes.
	if !CheckAnswer("f = p - q/b", q) {
		t.Error("matching recall answer rejected")
	}
	if !CheckAnswer("something else entirely", q) {
		t.Error("recall submissions are never marked incorrect")
	}
}

func TestCheckAnswer_MultipleChoiceLetterBounds(t *testing.T) {
	q := &curriculum.Question{
		Kind:        curriculum.KindMultipleChoice,
		Choices:     []string{"one", "two", "three"},
		AnswerIndex: 2,
	}
	if !CheckAnswer("c", q) {
		t.Error("letter c should select third choice")
	}
	if CheckAnswer("d", q) {
		t.Error("letter beyond choice count must not match")
	}
	if !CheckAnswer("3", q) {
		t.Error("1-based ordinal should select third choice")
	}
	if CheckAnswer("0", q) {
		t.Error("ordinal 0 must not match")
	}
	if CheckAnswer("4", q) {
		t.Error("ordinal beyond choice count must not match")
	}
}
