package session

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/coach"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/review"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/router"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screen"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screens/summary"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/components"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/layout"
)

// snapshotsToKeep bounds how many resume points accumulate in the store.
const snapshotsToKeep = 10

// SessionScreen implements screen.Screen for an active study session:
// optional warm-up recap questions, then the current day's quiz.
type SessionScreen struct {
	engine    *quiz.Engine
	topics    []curriculum.Topic
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	coachSvc  *coach.Service

	sessionID     string
	startTime     time.Time
	questionStart time.Time

	warmups   []review.Item
	warmupIdx int
	inWarmup  bool

	input      components.TextInput
	mcActive   bool
	mcSelected int

	showingFeedback    bool
	showingQuitConfirm bool
	topicDone          bool
	roadmapDone        bool

	lastCorrect       bool
	lastGraded        bool
	lastKind          curriculum.Kind
	lastAnswer        string
	lastCorrectAnswer string
	lastExplanation   string

	coachWaiting bool
	coachExpl    *coach.Explanation

	served        int // progression questions served this session
	gradedServed  int
	gradedCorrect int

	errMsg string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen positioned wherever the engine currently is.
// coachSvc may be nil, in which case missed questions get no coach notes.
func New(engine *quiz.Engine, topics []curriculum.Topic, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, coachSvc *coach.Service) *SessionScreen {
	s := &SessionScreen{
		engine:    engine,
		topics:    topics,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		coachSvc:  coachSvc,
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		input:     components.NewTextInput("Type your answer...", false, 30),
	}

	q, err := engine.CurrentQuestion()
	switch {
	case errors.Is(err, quiz.ErrRoadmapFinished):
		s.roadmapDone = true
	case errors.Is(err, quiz.ErrTopicComplete):
		s.topicDone = true
	default:
		day := engine.CurrentTopic().Day
		s.warmups = review.Sample(topics, day, review.DefaultCount, warmupSeed(engine.Snapshot()))
		if len(s.warmups) > 0 {
			s.inWarmup = true
			s.setupQuestion(&s.warmups[0].Question)
		} else {
			s.setupQuestion(q)
		}
	}

	return s
}

// warmupSeed hashes the engine snapshot, so a session resumed from the
// same position re-draws the same warm-up while fresh progress gets a
// fresh draw.
func warmupSeed(data quiz.SnapshotData) uint64 {
	b, _ := json.Marshal(data)
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.recordStart(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	if s.inWarmup {
		return "Warm-up"
	}
	return "Study"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.roadmapDone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Finish"},
		}
	case s.topicDone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next day"},
			{Key: "Esc", Description: "Stop here"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	if s.roadmapDone {
		return s.renderRoadmapDone(width)
	}
	if s.topicDone {
		return s.renderTopicDone(width)
	}
	return s.renderQuestion(width)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case coachTickMsg:
		return s.handleCoachTick()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answeringText() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// answeringText reports whether keystrokes should reach the text input.
func (s *SessionScreen) answeringText() bool {
	return !s.mcActive && !s.showingFeedback && !s.showingQuitConfirm &&
		!s.topicDone && !s.roadmapDone && s.errMsg == ""
}

// recordStart persists the session start event.
func (s *SessionScreen) recordStart() tea.Cmd {
	return func() tea.Msg {
		err := s.eventRepo.AppendSession(context.Background(), store.SessionEventData{
			SessionID: s.sessionID,
			Action:    "start",
			Day:       s.engine.CurrentTopic().Day,
		})
		return sessionStartedMsg{Err: err}
	}
}

// currentQuestion returns the question on screen: the active warm-up item
// or the engine's current question.
func (s *SessionScreen) currentQuestion() *curriculum.Question {
	if s.inWarmup {
		return &s.warmups[s.warmupIdx].Question
	}
	q, err := s.engine.CurrentQuestion()
	if err != nil {
		return nil
	}
	return q
}

// setupQuestion resets the input widgets for a new question.
func (s *SessionScreen) setupQuestion(q *curriculum.Question) {
	s.questionStart = time.Now()
	if q.Kind == curriculum.KindMultipleChoice {
		s.mcActive = true
		s.mcSelected = 0
		return
	}
	s.mcActive = false
	numeric := q.Kind == curriculum.KindNumeric
	placeholder := "Type your answer..."
	if !numeric {
		placeholder = "Recall it in your own words..."
	}
	s.input = components.NewTextInput(placeholder, numeric, 40)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay: any key advances.
	if s.showingFeedback {
		return s.dismissFeedback()
	}

	if s.roadmapDone {
		if key == "enter" {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		return s, nil
	}

	if s.topicDone {
		switch key {
		case "enter":
			return s.advanceDay()
		case "esc":
			s.showingQuitConfirm = true
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	if s.mcActive {
		q := s.currentQuestion()
		if q == nil {
			return s, nil
		}
		switch key {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(key[0] - '1')
			if idx < len(q.Choices) {
				s.mcSelected = idx
				return s.submitAnswer()
			}
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
		case "down", "j":
			if s.mcSelected < len(q.Choices)-1 {
				s.mcSelected++
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer grades the on-screen question and switches to feedback.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.currentQuestion()
	if q == nil {
		return s, nil
	}

	var answer string
	if s.mcActive {
		if s.mcSelected >= 0 && s.mcSelected < len(q.Choices) {
			answer = q.Choices[s.mcSelected]
		}
	} else {
		answer = s.input.Value()
		// Recall prompts may be submitted blank; graded kinds may not.
		if answer == "" && q.Kind != curriculum.KindRecall {
			return s, nil
		}
	}

	timeMs := time.Since(s.questionStart).Milliseconds()
	ctx := context.Background()

	if s.inWarmup {
		correct := quiz.CheckAnswer(answer, q)
		s.setFeedback(q, answer, correct)
		_ = s.eventRepo.AppendAttempt(ctx, store.AttemptEventData{
			SessionID:     s.sessionID,
			AttemptID:     uuid.New().String(),
			Day:           s.warmups[s.warmupIdx].Day,
			QuestionID:    q.ID,
			Kind:          string(q.Kind),
			Prompt:        q.Prompt,
			CorrectAnswer: q.CorrectDisplay(),
			LearnerAnswer: answer,
			Correct:       correct,
			Graded:        q.Kind.Gradeable(),
			Warmup:        true,
			TimeMs:        timeMs,
		})
		return s, nil
	}

	day := s.engine.CurrentTopic().Day
	res, err := s.engine.SubmitAnswer(q.ID, answer)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.served++
	if res.Graded {
		s.gradedServed++
		if res.Correct {
			s.gradedCorrect++
		}
	}
	s.setFeedback(q, answer, res.Correct)

	attempts := s.engine.Attempts()
	attemptID := attempts[len(attempts)-1].ID
	_ = s.eventRepo.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:     s.sessionID,
		AttemptID:     attemptID,
		Day:           day,
		QuestionID:    q.ID,
		Kind:          string(q.Kind),
		Prompt:        q.Prompt,
		CorrectAnswer: res.CorrectAnswer,
		LearnerAnswer: answer,
		Correct:       res.Correct,
		Graded:        res.Graded,
		TimeMs:        timeMs,
	})
	s.saveSnapshot(ctx)

	// A missed graded question gets a coach walkthrough.
	if res.Graded && !res.Correct && s.coachSvc != nil {
		t := s.engine.CurrentTopic()
		s.coachSvc.RequestExplanation(ctx, coach.ExplanationInput{
			Day:           t.Day,
			DayTitle:      t.Title,
			Phase:         t.Phase,
			Question:      *q,
			LearnerAnswer: answer,
		})
		s.coachWaiting = true
		return s, coachTick()
	}

	return s, nil
}

// setFeedback captures everything the feedback view needs before the
// engine cursor moves on.
func (s *SessionScreen) setFeedback(q *curriculum.Question, answer string, correct bool) {
	s.showingFeedback = true
	s.lastCorrect = correct
	s.lastGraded = q.Kind.Gradeable()
	s.lastKind = q.Kind
	s.lastAnswer = answer
	s.lastCorrectAnswer = q.CorrectDisplay()
	s.lastExplanation = q.Explanation
	s.coachExpl = nil
}

func (s *SessionScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.coachWaiting = false
	s.coachExpl = nil

	if s.inWarmup {
		s.warmupIdx++
		if s.warmupIdx < len(s.warmups) {
			s.setupQuestion(&s.warmups[s.warmupIdx].Question)
			return s, s.input.Init()
		}
		s.inWarmup = false
	}

	q, err := s.engine.CurrentQuestion()
	switch {
	case errors.Is(err, quiz.ErrRoadmapFinished):
		s.roadmapDone = true
	case errors.Is(err, quiz.ErrTopicComplete):
		s.topicDone = true
	case err != nil:
		s.errMsg = err.Error()
	default:
		s.setupQuestion(q)
		return s, s.input.Init()
	}
	return s, nil
}

// advanceDay moves the engine to the next topic after a completed day.
func (s *SessionScreen) advanceDay() (screen.Screen, tea.Cmd) {
	s.topicDone = false
	next, err := s.engine.AdvanceTopic()
	if errors.Is(err, quiz.ErrRoadmapFinished) {
		s.roadmapDone = true
		s.saveSnapshot(context.Background())
		return s, nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.saveSnapshot(context.Background())
	q := &next.Questions[0]
	s.setupQuestion(q)
	return s, s.input.Init()
}

func (s *SessionScreen) handleCoachTick() (screen.Screen, tea.Cmd) {
	if !s.coachWaiting || s.coachSvc == nil {
		return s, nil
	}
	if expl, ok := s.coachSvc.ConsumeExplanation(); ok {
		s.coachExpl = expl
		s.coachWaiting = false
		return s, nil
	}
	if s.showingFeedback {
		return s, coachTick()
	}
	s.coachWaiting = false
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	report := s.engine.Progress()

	var score float64
	if s.gradedServed > 0 {
		score = float64(s.gradedCorrect) / float64(s.gradedServed)
	}
	durationSecs := int(time.Since(s.startTime).Seconds())

	_ = s.eventRepo.AppendSession(ctx, store.SessionEventData{
		SessionID:       s.sessionID,
		Action:          "end",
		Day:             s.engine.CurrentTopic().Day,
		QuestionsServed: s.served,
		CorrectAnswers:  s.gradedCorrect,
		Score:           score,
		DurationSecs:    durationSecs,
	})

	s.saveSnapshot(ctx)
	_ = s.snapRepo.Prune(ctx, snapshotsToKeep)

	stats := summary.Stats{
		Day:           s.engine.CurrentTopic().Day,
		Phase:         s.engine.CurrentTopic().Phase,
		Served:        s.served,
		GradedServed:  s.gradedServed,
		GradedCorrect: s.gradedCorrect,
		Score:         score,
		Duration:      time.Duration(durationSecs) * time.Second,
		Report:        report,
		Finished:      report.TopicsCompleted == report.TotalTopics,
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(stats)}
	}
}

func (s *SessionScreen) saveSnapshot(ctx context.Context) {
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      s.engine.Snapshot(),
	}
	_ = s.snapRepo.Save(ctx, snap)
}

// coachTick returns a short poll command for the pending explanation.
func coachTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return coachTickMsg(t)
	})
}
