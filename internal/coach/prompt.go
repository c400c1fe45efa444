package coach

import (
	"fmt"
	"strings"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

const explanationSystemPrompt = `You are a quantitative investing coach helping a self-directed learner work through a 21-day small-cap fintech study program. The learner just answered a quiz question incorrectly and needs a clear walkthrough.`

func buildExplanationUserMessage(input ExplanationInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Study day: %d (%s, %s phase)\n", input.Day, input.DayTitle, input.Phase.DisplayName()))
	b.WriteString(fmt.Sprintf("Question: %s\n", input.Question.Prompt))

	if input.Question.Kind == curriculum.KindMultipleChoice {
		b.WriteString("Choices:\n")
		for i, c := range input.Question.Choices {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, c))
		}
	}

	b.WriteString(fmt.Sprintf("Correct answer: %s\n", input.Question.CorrectDisplay()))
	b.WriteString(fmt.Sprintf("Learner answered: %s\n", input.LearnerAnswer))

	if input.Question.Explanation != "" {
		b.WriteString(fmt.Sprintf("Curriculum note: %s\n", input.Question.Explanation))
	}

	b.WriteString(`
Instructions:
1. Walk through the reasoning to the correct answer in 3-6 sentences. For numeric questions, show the calculation with numbered steps.
2. Identify the single concept the learner most likely missed, given their answer.
3. Give one short self-check question they can answer to confirm they understand.
4. Use plain ASCII text. No LaTeX, no Unicode math symbols. Use / for division and * for multiplication.`)

	return b.String()
}
