package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/router"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screen"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/components"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/layout"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/theme"
)

// Stats is everything the summary displays about a finished session.
type Stats struct {
	Day           int
	Phase         curriculum.Phase
	Served        int
	GradedServed  int
	GradedCorrect int
	Score         float64
	Duration      time.Duration
	Report        quiz.Report
	Finished      bool
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	stats Stats
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(stats Stats) *SummaryScreen {
	return &SummaryScreen{stats: stats}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats

	var b strings.Builder

	title := "Session complete!"
	if st.Finished {
		title = "Roadmap complete!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	mins := int(st.Duration.Minutes())
	secs := int(st.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Day %d · %s · %d:%02d", st.Day, st.Phase.DisplayName(), mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Graded correct: %d/%d        Score: %.0f%%",
		st.Served, st.GradedCorrect, st.GradedServed, st.Score*100)
	if st.GradedServed == 0 {
		statsLine = fmt.Sprintf("Questions: %d        (nothing graded this session)", st.Served)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Roadmap")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Days %d/%d", st.Report.TopicsCompleted, st.Report.TotalTopics),
		float64(st.Report.TopicsCompleted)/float64(st.Report.TotalTopics),
		true,
		min(width-8, 50),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	overall := fmt.Sprintf("Overall: %d/%d graded correct (%.0f%%)",
		st.Report.CorrectAttempts, st.Report.GradedAttempts, st.Report.OverallScore*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(overall))
	b.WriteString("\n\n")

	hint := "Come back tomorrow for the next day."
	if st.Finished {
		hint = "All 21 days done. Time to build the screener."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
