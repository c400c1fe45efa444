package curriculum

import (
	"testing"
)

func TestLoad_FullRoadmap(t *testing.T) {
	topics, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(topics) != TotalDays {
		t.Fatalf("loaded %d topics, want %d", len(topics), TotalDays)
	}

	for i, topic := range topics {
		if topic.Day != i+1 {
			t.Errorf("topic %d has day %d, want %d", i, topic.Day, i+1)
		}
		if topic.Title == "" {
			t.Errorf("day %d has empty title", topic.Day)
		}
		if len(topic.Questions) == 0 {
			t.Errorf("day %d has no questions", topic.Day)
		}
		if want := PhaseForDay(topic.Day); topic.Phase != want {
			t.Errorf("day %d phase = %q, want %q", topic.Day, topic.Phase, want)
		}
		for _, q := range topic.Questions {
			if q.Prompt == "" {
				t.Errorf("day %d question %d has empty prompt", topic.Day, q.ID)
			}
			switch q.Kind {
			case KindMultipleChoice:
				if len(q.Choices) < 2 {
					t.Errorf("day %d question %d: mcq with %d choices", topic.Day, q.ID, len(q.Choices))
				}
				if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
					t.Errorf("day %d question %d: answer index %d out of range", topic.Day, q.ID, q.AnswerIndex)
				}
			case KindNumeric:
				if q.Tolerance < 0 {
					t.Errorf("day %d question %d: negative tolerance", topic.Day, q.ID)
				}
			case KindRecall:
				if q.AnswerText == "" {
					t.Errorf("day %d question %d: recall without answer text", topic.Day, q.ID)
				}
			default:
				t.Errorf("day %d question %d: unknown kind %q", topic.Day, q.ID, q.Kind)
			}
		}
	}
}

func TestLoad_QuestionIDsSequential(t *testing.T) {
	topics, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, topic := range topics {
		for i, q := range topic.Questions {
			if q.ID != i+1 {
				t.Errorf("day %d question at index %d has ID %d", topic.Day, i, q.ID)
			}
		}
	}
}

func TestParseDay_SchemaRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing title", `{"questions":[{"type":"mcq","question":"q","options":["a","b"],"answer":0}]}`},
		{"empty questions", `{"title":"T","questions":[]}`},
		{"bad type", `{"title":"T","questions":[{"type":"essay","question":"q"}]}`},
		{"not json", `{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDay(1, []byte(tt.raw)); err == nil {
				t.Error("expected error for malformed day file")
			}
		})
	}
}

func TestParseDay_DefaultsTolerance(t *testing.T) {
	raw := `{"title":"T","questions":[{"type":"numeric","question":"2+2?","answer":4}]}`
	topic, err := parseDay(3, []byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := topic.Questions[0]
	if q.NumericAnswer != 4 {
		t.Errorf("answer = %v, want 4", q.NumericAnswer)
	}
	if q.Tolerance != defaultTolerance {
		t.Errorf("tolerance = %v, want %v", q.Tolerance, defaultTolerance)
	}
}

func TestDayFromName(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"day01_screening.json", 1, false},
		{"day14_kelly.json", 14, false},
		{"day21_synthesis.json", 21, false},
		{"notes.json", 0, true},
		{"dayXX_bad.json", 0, true},
	}
	for _, tt := range tests {
		got, err := dayFromName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("dayFromName(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("dayFromName(%q) = %d, %v; want %d", tt.name, got, err, tt.want)
		}
	}
}
