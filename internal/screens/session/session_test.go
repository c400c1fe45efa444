package session

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/review"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screen"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attemptEvents []store.AttemptEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendCoachRequest(_ context.Context, _ store.CoachRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) DayAccuracy(_ context.Context) ([]store.DayStats, error) {
	return nil, nil
}
func (m *mockEventRepo) CoachUsage(_ context.Context) ([]store.CoachUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testTopics builds a minimal full-length roadmap. Day 1 carries one of each
// question kind; the rest get a single multiple-choice question.
func testTopics() []curriculum.Topic {
	topics := make([]curriculum.Topic, curriculum.TotalDays)
	for i := range topics {
		day := i + 1
		topics[i] = curriculum.Topic{
			Day:   day,
			Phase: curriculum.PhaseForDay(day),
			Title: fmt.Sprintf("Day %d", day),
			Questions: []curriculum.Question{
				{
					ID:          1,
					Kind:        curriculum.KindMultipleChoice,
					Prompt:      "Pick beta",
					Choices:     []string{"alpha", "beta"},
					AnswerIndex: 1,
					Explanation: "Beta is the one.",
				},
			},
		}
	}
	topics[0].Questions = append(topics[0].Questions,
		curriculum.Question{
			ID:            2,
			Kind:          curriculum.KindNumeric,
			Prompt:        "What is 5 / 2?",
			NumericAnswer: 2.5,
			Tolerance:     0.01,
		},
		curriculum.Question{
			ID:         3,
			Kind:       curriculum.KindRecall,
			Prompt:     "State the Kelly criterion.",
			AnswerText: "f = edge over odds",
		},
	)
	return topics
}

func testSessionScreen(t *testing.T) (*SessionScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	topics := testTopics()
	engine, err := quiz.New(topics)
	if err != nil {
		t.Fatalf("quiz.New: %v", err)
	}
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(engine, topics, eventRepo, snapRepo, nil)
	return s, eventRepo, snapRepo
}

func TestSessionScreen_Title(t *testing.T) {
	s, _, _ := testSessionScreen(t)
	if s.Title() != "Study" {
		t.Errorf("Title = %q, want %q", s.Title(), "Study")
	}
}

func TestSessionScreen_NoWarmupOnDayOne(t *testing.T) {
	s, _, _ := testSessionScreen(t)
	if s.inWarmup {
		t.Error("day 1 should start without warm-up questions")
	}
}

func TestSessionScreen_WarmupOnLaterDays(t *testing.T) {
	topics := testTopics()
	engine, err := quiz.New(topics)
	if err != nil {
		t.Fatalf("quiz.New: %v", err)
	}
	if err := engine.Restore(quiz.SnapshotData{TopicIndex: 4}); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s := New(engine, topics, &mockEventRepo{}, &mockSnapshotRepo{}, nil)
	if !s.inWarmup {
		t.Fatal("day 5 should start with warm-up questions")
	}
	if s.Title() != "Warm-up" {
		t.Errorf("Title = %q, want %q", s.Title(), "Warm-up")
	}
	for _, item := range s.warmups {
		if item.Day >= 5 {
			t.Errorf("warm-up item from day %d, want earlier than 5", item.Day)
		}
	}
}

func TestSessionScreen_WarmupReproducibleAfterResume(t *testing.T) {
	topics := testTopics()
	snap := quiz.SnapshotData{TopicIndex: 4, TopicsCompleted: 4}

	draw := func() []review.Item {
		engine, err := quiz.New(topics)
		if err != nil {
			t.Fatalf("quiz.New: %v", err)
		}
		if err := engine.Restore(snap); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		return New(engine, topics, &mockEventRepo{}, &mockSnapshotRepo{}, nil).warmups
	}

	a := draw()
	time.Sleep(2 * time.Millisecond)
	b := draw()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("draw sizes %d and %d, want equal and non-zero", len(a), len(b))
	}
	for i := range a {
		if a[i].Day != b[i].Day || a[i].Question.ID != b[i].Question.ID {
			t.Fatalf("resumed session drew different warm-up: %+v vs %+v", a[i], b[i])
		}
	}
}

func TestSessionScreen_View_Question(t *testing.T) {
	s, _, _ := testSessionScreen(t)
	view := s.View(80, 24)
	if !strings.Contains(view, "Pick beta") {
		t.Error("expected question prompt in view")
	}
	if !strings.Contains(view, "alpha") || !strings.Contains(view, "beta") {
		t.Error("expected all choices in view")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestSessionScreen_MultipleChoiceSubmit(t *testing.T) {
	s, eventRepo, snapRepo := testSessionScreen(t)

	// Press 2 to pick the correct choice.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if !ss.lastCorrect {
		t.Error("expected choice 2 to be correct")
	}
	if len(eventRepo.attemptEvents) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(eventRepo.attemptEvents))
	}
	ev := eventRepo.attemptEvents[0]
	if ev.Day != 1 || ev.QuestionID != 1 || !ev.Correct || !ev.Graded || ev.Warmup {
		t.Errorf("unexpected attempt event: %+v", ev)
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1 after submit", len(snapRepo.snapshots))
	}
}

func TestSessionScreen_IncorrectAnswerRecorded(t *testing.T) {
	s, eventRepo, _ := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if ss.lastCorrect {
		t.Error("expected choice 1 to be wrong")
	}
	view := ss.View(80, 24)
	if !strings.Contains(view, "Correct answer: beta") {
		t.Error("expected correct answer in feedback view")
	}
	if len(eventRepo.attemptEvents) != 1 || eventRepo.attemptEvents[0].Correct {
		t.Error("expected one incorrect attempt event")
	}
}

func TestSessionScreen_NumericSubmit(t *testing.T) {
	s, _, _ := testSessionScreen(t)

	// Answer the MC question, dismiss feedback, then the numeric one.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(keyPress(' '))
	ss := scr.(*SessionScreen)

	if ss.mcActive {
		t.Fatal("expected text input for numeric question")
	}
	ss.input.Model.SetValue("2.5")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if !ss.showingFeedback || !ss.lastCorrect {
		t.Error("expected correct feedback for 2.5")
	}
}

func TestSessionScreen_RecallNotGraded(t *testing.T) {
	s, eventRepo, _ := testSessionScreen(t)

	// MC, numeric, then the recall prompt.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(keyPress(' '))
	ss := scr.(*SessionScreen)
	ss.input.Model.SetValue("2.5")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	ss = scr.(*SessionScreen)

	// Recall may be submitted blank.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Fatal("expected feedback for recall prompt")
	}
	if ss.lastGraded {
		t.Error("recall prompts must not be graded")
	}
	view := ss.View(80, 24)
	if !strings.Contains(view, "f = edge over odds") {
		t.Error("expected model answer in recall feedback")
	}

	last := eventRepo.attemptEvents[len(eventRepo.attemptEvents)-1]
	if last.Graded {
		t.Error("recall attempt event must have Graded=false")
	}
}

func TestSessionScreen_TopicCompleteThenAdvance(t *testing.T) {
	s, _, _ := testSessionScreen(t)

	// Exhaust day 1: mcq, numeric, recall.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(keyPress(' '))
	ss := scr.(*SessionScreen)
	ss.input.Model.SetValue("2.5")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	ss = scr.(*SessionScreen)
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	ss = scr.(*SessionScreen)

	if !ss.topicDone {
		t.Fatal("expected day-complete state after last question")
	}
	view := ss.View(80, 24)
	if !strings.Contains(view, "Day 1 complete") {
		t.Error("expected day-complete banner")
	}

	// Enter advances to day 2.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)
	if ss.topicDone {
		t.Error("expected day-complete state cleared after advance")
	}
	if day := ss.engine.CurrentTopic().Day; day != 2 {
		t.Errorf("engine day = %d, want 2", day)
	}
}

func TestSessionScreen_SessionEndEmitsEvent(t *testing.T) {
	s, eventRepo, _ := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)

	_, cmd := ss.Update(sessionEndMsg{})
	if cmd == nil {
		t.Fatal("expected a navigation command after session end")
	}

	var end *store.SessionEventData
	for i := range eventRepo.sessionEvents {
		if eventRepo.sessionEvents[i].Action == "end" {
			end = &eventRepo.sessionEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end session event")
	}
	if end.QuestionsServed != 1 || end.CorrectAnswers != 1 || end.Score != 1.0 {
		t.Errorf("unexpected end event: %+v", end)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _, _ := testSessionScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.showingFeedback = true
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("feedback hints = %d, want 1", len(hints))
	}
}
