package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
)

func testStats() Stats {
	return Stats{
		Day:           5,
		Phase:         curriculum.PhaseFoundations,
		Served:        8,
		GradedServed:  6,
		GradedCorrect: 5,
		Score:         float64(5) / float64(6),
		Duration:      15 * time.Minute,
		Report: quiz.Report{
			TopicsCompleted: 4,
			TotalTopics:     21,
			CorrectAttempts: 20,
			GradedAttempts:  24,
			OverallScore:    float64(20) / float64(24),
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testStats())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testStats())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Session complete!") {
		t.Error("expected session-complete title")
	}
	if !strings.Contains(view, "Days 4/21") {
		t.Error("expected roadmap progress label")
	}
}

func TestSummaryScreen_FinishedTitle(t *testing.T) {
	st := testStats()
	st.Finished = true
	st.Report.TopicsCompleted = 21
	view := New(st).View(80, 24)
	if !strings.Contains(view, "Roadmap complete!") {
		t.Error("expected roadmap-complete title")
	}
}

func TestSummaryScreen_NothingGraded(t *testing.T) {
	st := testStats()
	st.GradedServed = 0
	st.GradedCorrect = 0
	view := New(st).View(80, 24)
	if !strings.Contains(view, "nothing graded") {
		t.Error("expected nothing-graded stats line")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testStats())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testStats())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testStats())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
