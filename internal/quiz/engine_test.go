package quiz

import (
	"errors"
	"testing"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

// testTopics builds a minimal valid 21-day curriculum with two mcq questions
// per day. Answer for every question is choice index 1 ("beta").
func testTopics() []curriculum.Topic {
	topics := make([]curriculum.Topic, curriculum.TotalDays)
	for d := 1; d <= curriculum.TotalDays; d++ {
		topics[d-1] = curriculum.Topic{
			Day:   d,
			Phase: curriculum.PhaseForDay(d),
			Title: "Day",
			Questions: []curriculum.Question{
				{ID: 1, Kind: curriculum.KindMultipleChoice, Prompt: "q1", Choices: []string{"alpha", "beta"}, AnswerIndex: 1},
				{ID: 2, Kind: curriculum.KindMultipleChoice, Prompt: "q2", Choices: []string{"alpha", "beta"}, AnswerIndex: 1},
			},
		}
	}
	return topics
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(testTopics())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestFullTraversal_VisitsEveryQuestionOnceInOrder(t *testing.T) {
	e := testEngine(t)

	type visit struct{ day, id int }
	var visits []visit

	for {
		q, err := e.CurrentQuestion()
		if errors.Is(err, ErrTopicComplete) {
			if _, err := e.AdvanceTopic(); err != nil {
				if errors.Is(err, ErrRoadmapFinished) {
					break
				}
				t.Fatalf("advance: %v", err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("current question: %v", err)
		}
		visits = append(visits, visit{e.CurrentTopic().Day, q.ID})
		if _, err := e.SubmitAnswer(q.ID, "beta"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	want := curriculum.TotalDays * 2
	if len(visits) != want {
		t.Fatalf("visited %d questions, want %d", len(visits), want)
	}
	i := 0
	for d := 1; d <= curriculum.TotalDays; d++ {
		for id := 1; id <= 2; id++ {
			if visits[i] != (visit{d, id}) {
				t.Fatalf("visit %d = %+v, want day %d question %d", i, visits[i], d, id)
			}
			i++
		}
	}
}

func TestSubmitAnswer_Normalization(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact text", "beta", true},
		{"case folded", "BETA", true},
		{"padded", "  beta  ", true},
		{"choice number", "2", true},
		{"choice letter", "b", true},
		{"choice letter upper", "B", true},
		{"wrong text", "gamma", false},
		{"wrong number", "1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine(t)
			res, err := e.SubmitAnswer(1, tt.text)
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if res.Correct != tt.want {
				t.Errorf("Correct = %v, want %v", res.Correct, tt.want)
			}
		})
	}
}

func TestSubmitAnswer_AdvancesRegardlessOfCorrectness(t *testing.T) {
	e := testEngine(t)

	if _, err := e.SubmitAnswer(1, "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	q, err := e.CurrentQuestion()
	if err != nil {
		t.Fatalf("current question: %v", err)
	}
	if q.ID != 2 {
		t.Errorf("current question ID = %d, want 2 (wrong answers still consume)", q.ID)
	}
}

func TestSubmitAnswer_OutOfSequence(t *testing.T) {
	e := testEngine(t)

	_, err := e.SubmitAnswer(2, "beta")
	var oos *OutOfSequenceError
	if !errors.As(err, &oos) {
		t.Fatalf("expected OutOfSequenceError, got %v", err)
	}
	if oos.Submitted != 2 || oos.Expected != 1 {
		t.Errorf("OutOfSequenceError = %+v, want Submitted=2 Expected=1", oos)
	}
	if len(e.Attempts()) != 0 {
		t.Error("out-of-sequence submission must not record an attempt")
	}
}

func TestProgress_Score(t *testing.T) {
	e := testEngine(t)

	// 3 correct, 1 incorrect across days 1-2.
	answers := []string{"beta", "beta", "beta", "wrong"}
	for _, a := range answers {
		q, err := e.CurrentQuestion()
		if errors.Is(err, ErrTopicComplete) {
			if _, err := e.AdvanceTopic(); err != nil {
				t.Fatalf("advance: %v", err)
			}
			q, err = e.CurrentQuestion()
			if err != nil {
				t.Fatalf("current question: %v", err)
			}
		} else if err != nil {
			t.Fatalf("current question: %v", err)
		}
		if _, err := e.SubmitAnswer(q.ID, a); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	r := e.Progress()
	if r.GradedAttempts != 4 || r.CorrectAttempts != 3 {
		t.Fatalf("graded=%d correct=%d, want 4/3", r.GradedAttempts, r.CorrectAttempts)
	}
	if r.OverallScore != 0.75 {
		t.Errorf("OverallScore = %v, want 0.75", r.OverallScore)
	}
}

func TestProgress_ZeroWithoutAttempts(t *testing.T) {
	e := testEngine(t)
	r := e.Progress()
	if r.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", r.OverallScore)
	}
	if r.TotalTopics != curriculum.TotalDays {
		t.Errorf("TotalTopics = %d, want %d", r.TotalTopics, curriculum.TotalDays)
	}
}

func TestAdvanceTopic_TooEarly(t *testing.T) {
	e := testEngine(t)
	if _, err := e.SubmitAnswer(1, "beta"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	before := e.Snapshot()
	_, err := e.AdvanceTopic()
	if !errors.Is(err, ErrTopicNotFinished) {
		t.Fatalf("expected ErrTopicNotFinished, got %v", err)
	}
	after := e.Snapshot()
	if before.TopicIndex != after.TopicIndex || before.QuestionIndex != after.QuestionIndex ||
		before.TopicsCompleted != after.TopicsCompleted || len(before.Attempts) != len(after.Attempts) {
		t.Error("failed AdvanceTopic must leave session state unchanged")
	}
}

func TestTerminalState_AllOperationsFail(t *testing.T) {
	e := testEngine(t)
	for {
		q, err := e.CurrentQuestion()
		if errors.Is(err, ErrTopicComplete) {
			if _, err := e.AdvanceTopic(); errors.Is(err, ErrRoadmapFinished) {
				goto done
			} else if err != nil {
				t.Fatalf("advance: %v", err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("current question: %v", err)
		}
		if _, err := e.SubmitAnswer(q.ID, "beta"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
done:
	if _, err := e.CurrentQuestion(); !errors.Is(err, ErrRoadmapFinished) {
		t.Errorf("CurrentQuestion after finish: %v, want ErrRoadmapFinished", err)
	}
	if _, err := e.SubmitAnswer(1, "beta"); !errors.Is(err, ErrRoadmapFinished) {
		t.Errorf("SubmitAnswer after finish: %v, want ErrRoadmapFinished", err)
	}
	if _, err := e.AdvanceTopic(); !errors.Is(err, ErrRoadmapFinished) {
		t.Errorf("AdvanceTopic after finish: %v, want ErrRoadmapFinished", err)
	}
	if got := e.Progress().TopicsCompleted; got != curriculum.TotalDays {
		t.Errorf("TopicsCompleted = %d, want %d", got, curriculum.TotalDays)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	e := testEngine(t)
	if _, err := e.SubmitAnswer(1, "beta"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := e.SubmitAnswer(2, "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := e.AdvanceTopic(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	snap := e.Snapshot()
	wantQ, err := e.CurrentQuestion()
	if err != nil {
		t.Fatalf("current question: %v", err)
	}

	restored := testEngine(t)
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	gotQ, err := restored.CurrentQuestion()
	if err != nil {
		t.Fatalf("current question after restore: %v", err)
	}
	if gotQ.ID != wantQ.ID || restored.CurrentTopic().Day != e.CurrentTopic().Day {
		t.Errorf("restored position day %d q %d, want day %d q %d",
			restored.CurrentTopic().Day, gotQ.ID, e.CurrentTopic().Day, wantQ.ID)
	}
	if correct, graded := 1, 2; restored.Progress().CorrectAttempts != correct || restored.Progress().GradedAttempts != graded {
		t.Errorf("restored score %d/%d, want %d/%d",
			restored.Progress().CorrectAttempts, restored.Progress().GradedAttempts, correct, graded)
	}
}

func TestRestore_RejectsInvalidPosition(t *testing.T) {
	e := testEngine(t)
	if err := e.Restore(SnapshotData{TopicIndex: 99}); err == nil {
		t.Error("expected error for out-of-range topic index")
	}
	if err := e.Restore(SnapshotData{TopicIndex: 0, QuestionIndex: 5}); err == nil {
		t.Error("expected error for out-of-range question index")
	}
}

func TestAttempts_UniqueIdentity(t *testing.T) {
	e := testEngine(t)
	if _, err := e.SubmitAnswer(1, "beta"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := e.SubmitAnswer(2, "beta"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	seen := make(map[string]bool)
	for _, a := range e.Attempts() {
		if seen[a.ID] {
			t.Fatalf("duplicate attempt ID %s", a.ID)
		}
		seen[a.ID] = true
		if a.At.IsZero() {
			t.Error("attempt timestamp not set")
		}
	}
}
