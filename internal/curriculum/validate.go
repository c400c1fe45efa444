package curriculum

import (
	"encoding/json"
	"fmt"
	"math"
)

// Problem describes one validation issue in a day file.
type Problem struct {
	File string
	Msg  string
}

func (p Problem) String() string {
	if p.File == "" {
		return p.Msg
	}
	return fmt.Sprintf("[%s] %s", p.File, p.Msg)
}

// CheckAll validates every embedded day file and returns all problems found.
// Unlike Load, it does not stop at the first bad file, making it suitable for
// the `validate` command.
func CheckAll() []Problem {
	var problems []Problem

	names, err := dayFileNames()
	if err != nil {
		return []Problem{{Msg: err.Error()}}
	}

	seen := make(map[int]string, TotalDays)
	for _, name := range names {
		day, err := dayFromName(name)
		if err != nil {
			problems = append(problems, Problem{File: name, Msg: err.Error()})
			continue
		}
		if prev, dup := seen[day]; dup {
			problems = append(problems, Problem{File: name, Msg: fmt.Sprintf("duplicate day %d (also %s)", day, prev)})
			continue
		}
		seen[day] = name

		raw, err := dayFiles.ReadFile("data/" + name)
		if err != nil {
			problems = append(problems, Problem{File: name, Msg: err.Error()})
			continue
		}
		if err := validateSchema(raw); err != nil {
			problems = append(problems, Problem{File: name, Msg: err.Error()})
			continue
		}
		var df dayFile
		if err := json.Unmarshal(raw, &df); err != nil {
			problems = append(problems, Problem{File: name, Msg: err.Error()})
			continue
		}
		for _, msg := range checkDay(df) {
			problems = append(problems, Problem{File: name, Msg: msg})
		}
	}

	for day := 1; day <= TotalDays; day++ {
		if _, ok := seen[day]; !ok {
			problems = append(problems, Problem{Msg: fmt.Sprintf("missing day %d", day)})
		}
	}
	return problems
}

// checkDay applies the structural rules the schema cannot express.
func checkDay(df dayFile) []string {
	var msgs []string

	seenPrompts := make(map[string]bool, len(df.Questions))
	for i, q := range df.Questions {
		pos := i + 1

		if q.Question != "" {
			if seenPrompts[q.Question] {
				msgs = append(msgs, fmt.Sprintf("Q%d: duplicate question text", pos))
			}
			seenPrompts[q.Question] = true
		}

		switch Kind(q.Type) {
		case KindMultipleChoice:
			if len(q.Options) < 2 {
				msgs = append(msgs, fmt.Sprintf("Q%d: mcq needs >=2 options", pos))
			}
			idx, ok := integerAnswer(q.Answer)
			if !ok {
				msgs = append(msgs, fmt.Sprintf("Q%d: mcq 'answer' must be an option index", pos))
			} else if idx < 0 || idx >= len(q.Options) {
				msgs = append(msgs, fmt.Sprintf("Q%d: mcq 'answer' index out of range", pos))
			}
		case KindNumeric:
			if _, ok := q.Answer.(float64); !ok {
				msgs = append(msgs, fmt.Sprintf("Q%d: numeric needs a number 'answer'", pos))
			}
			if q.Tolerance != nil && *q.Tolerance < 0 {
				msgs = append(msgs, fmt.Sprintf("Q%d: 'tolerance' must be non-negative", pos))
			}
		case KindRecall:
			if q.AnswerText == "" {
				msgs = append(msgs, fmt.Sprintf("Q%d: repeat needs 'answer_text'", pos))
			}
		default:
			msgs = append(msgs, fmt.Sprintf("Q%d: unknown type %q", pos, q.Type))
		}
	}
	return msgs
}

// integerAnswer interprets a decoded JSON answer as an option index.
func integerAnswer(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
