package quiz

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

// CheckAnswer grades the learner's input against a question.
//
// Normalization rules, applied once here and nowhere else:
//   - Whitespace is trimmed
//   - Comparison is case-insensitive
//   - Multiple choice accepts the 1-based choice number, the choice letter
//     (A-D), or the choice text
//   - Numeric answers parse as floats and match within the question's tolerance
//   - Recall prompts always grade as correct; they are excluded from scoring
//     by the Graded flag on the attempt
func CheckAnswer(submitted string, q *curriculum.Question) bool {
	submitted = strings.TrimSpace(submitted)

	switch q.Kind {
	case curriculum.KindMultipleChoice:
		return checkMultipleChoice(submitted, q)
	case curriculum.KindNumeric:
		return checkNumeric(submitted, q)
	case curriculum.KindRecall:
		return true
	default:
		return false
	}
}

func checkMultipleChoice(submitted string, q *curriculum.Question) bool {
	if submitted == "" {
		return false
	}

	// 1-based choice number.
	if idx, err := strconv.Atoi(submitted); err == nil {
		return idx-1 == q.AnswerIndex
	}

	// Choice letter (A-D, case-insensitive).
	if len(submitted) == 1 {
		c := submitted[0] | 0x20 // lowercase
		if c >= 'a' && c < 'a'+byte(len(q.Choices)) {
			return int(c-'a') == q.AnswerIndex
		}
	}

	// Choice text.
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
		return false
	}
	return strings.EqualFold(submitted, strings.TrimSpace(q.Choices[q.AnswerIndex]))
}

func checkNumeric(submitted string, q *curriculum.Question) bool {
	v, err := strconv.ParseFloat(strings.ReplaceAll(submitted, ",", ""), 64)
	if err != nil {
		return false
	}
	return math.Abs(v-q.NumericAnswer) <= q.Tolerance
}
