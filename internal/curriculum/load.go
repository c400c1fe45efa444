package curriculum

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

//go:embed data/day*.json
var dayFiles embed.FS

// LoadError reports a malformed or incomplete curriculum source.
// Fatal at startup: the shell must abort initialization.
type LoadError struct {
	File string // offending day file, empty for roadmap-level problems
	Err  error
}

func (e *LoadError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("curriculum: %v", e.Err)
	}
	return fmt.Sprintf("curriculum: %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// dayFile is the on-disk shape of a day file, unchanged from the original
// data format so existing day files keep working.
type dayFile struct {
	Title     string         `json:"title"`
	Questions []questionFile `json:"questions"`
}

type questionFile struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      any      `json:"answer,omitempty"` // index for mcq, number for numeric
	Tolerance   *float64 `json:"tolerance,omitempty"`
	AnswerText  string   `json:"answer_text,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Load parses and validates the embedded 21-day curriculum.
// The returned slice is ordered by ascending day.
func Load() ([]Topic, error) {
	names, err := dayFileNames()
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	byDay := make(map[int]Topic, TotalDays)
	for _, name := range names {
		day, err := dayFromName(name)
		if err != nil {
			return nil, &LoadError{File: name, Err: err}
		}
		if _, dup := byDay[day]; dup {
			return nil, &LoadError{File: name, Err: fmt.Errorf("duplicate day %d", day)}
		}

		raw, err := dayFiles.ReadFile("data/" + name)
		if err != nil {
			return nil, &LoadError{File: name, Err: err}
		}

		topic, err := parseDay(day, raw)
		if err != nil {
			return nil, &LoadError{File: name, Err: err}
		}
		byDay[day] = topic
	}

	topics := make([]Topic, 0, TotalDays)
	for day := 1; day <= TotalDays; day++ {
		t, ok := byDay[day]
		if !ok {
			return nil, &LoadError{Err: fmt.Errorf("missing day %d", day)}
		}
		topics = append(topics, t)
	}
	if len(byDay) != TotalDays {
		return nil, &LoadError{Err: fmt.Errorf("expected %d days, found %d", TotalDays, len(byDay))}
	}
	return topics, nil
}

// parseDay decodes and validates one day file into a Topic.
func parseDay(day int, raw []byte) (Topic, error) {
	if err := validateSchema(raw); err != nil {
		return Topic{}, err
	}

	var df dayFile
	if err := json.Unmarshal(raw, &df); err != nil {
		return Topic{}, fmt.Errorf("parse: %w", err)
	}

	if problems := checkDay(df); len(problems) > 0 {
		return Topic{}, fmt.Errorf("%s", problems[0])
	}

	topic := Topic{
		Day:       day,
		Phase:     PhaseForDay(day),
		Title:     df.Title,
		Questions: make([]Question, 0, len(df.Questions)),
	}
	for i, qf := range df.Questions {
		q := Question{
			ID:          i + 1,
			Kind:        Kind(qf.Type),
			Prompt:      qf.Question,
			Explanation: qf.Explanation,
			AnswerText:  qf.AnswerText,
		}
		switch q.Kind {
		case KindMultipleChoice:
			q.Choices = qf.Options
			q.AnswerIndex = int(qf.Answer.(float64))
		case KindNumeric:
			q.NumericAnswer = qf.Answer.(float64)
			q.Tolerance = defaultTolerance
			if qf.Tolerance != nil {
				q.Tolerance = *qf.Tolerance
			}
		}
		topic.Questions = append(topic.Questions, q)
	}
	return topic, nil
}

// defaultTolerance matches the original data format's implicit tolerance.
const defaultTolerance = 0.01

// dayFileNames lists the embedded day files in lexical (= day) order.
func dayFileNames() ([]string, error) {
	entries, err := dayFiles.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// dayFromName extracts the day number from a "dayNN_topic.json" filename.
func dayFromName(name string) (int, error) {
	if len(name) < 5 || name[:3] != "day" {
		return 0, fmt.Errorf("unexpected file name %q", name)
	}
	day, err := strconv.Atoi(name[3:5])
	if err != nil {
		return 0, fmt.Errorf("unexpected file name %q: %w", name, err)
	}
	if day < 1 || day > TotalDays {
		return 0, fmt.Errorf("day %d out of range 1-%d", day, TotalDays)
	}
	return day, nil
}
