package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/theme"
)

// renderQuestion renders the active question display.
func (s *SessionScreen) renderQuestion(width int) string {
	q := s.currentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading question...")
	}

	var b strings.Builder

	var infoLeft string
	if s.inWarmup {
		item := s.warmups[s.warmupIdx]
		infoLeft = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("  Warm-up %d/%d · Day %d: %s",
				s.warmupIdx+1, len(s.warmups), item.Day, item.Title))
	} else {
		t := s.engine.CurrentTopic()
		infoLeft = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("  %s", t.Title))
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(s.progressLabel(q))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	if s.mcActive {
		b.WriteString(s.renderChoices(width, q))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
		if q.Kind == curriculum.KindRecall {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Say it out loud or type it, then press Enter to compare."))
		}
	}

	return b.String()
}

// progressLabel shows the question position within the current block.
func (s *SessionScreen) progressLabel(q *curriculum.Question) string {
	if s.inWarmup {
		return "recap"
	}
	t := s.engine.CurrentTopic()
	pos := 0
	for i := range t.Questions {
		if t.Questions[i].ID == q.ID {
			pos = i + 1
			break
		}
	}
	return fmt.Sprintf("Q %d/%d", pos, len(t.Questions))
}

// renderChoices renders the multiple choice options.
func (s *SessionScreen) renderChoices(width int, q *curriculum.Question) string {
	var b strings.Builder
	for i, choice := range q.Choices {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nSelect (1-%d) or use arrows + Enter", len(q.Choices)))
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the post-answer overlay.
func (s *SessionScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	switch {
	case !s.lastGraded:
		centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "Compare your recall")
		b.WriteString("\n")
		answer := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.lastCorrectAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))
		b.WriteString("\n")
	case s.lastCorrect:
		centered(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Correct!")
	default:
		centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
		centered(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Correct answer: %s", s.lastCorrectAnswer))
	}

	b.WriteString("\n")

	if s.lastExplanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.lastExplanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if s.coachExpl != nil {
		b.WriteString(s.renderCoachNotes(width))
	} else if s.coachWaiting {
		centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Coach is writing a walkthrough...")
		b.WriteString("\n")
	}

	centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Press any key to continue...")

	return b.String()
}

// renderCoachNotes renders the coach walkthrough for a missed question.
func (s *SessionScreen) renderCoachNotes(width int) string {
	blockWidth := min(width-8, 70)
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Coach notes"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(blockWidth).
		Foreground(theme.Text).
		Render(s.coachExpl.Walkthrough))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render("Key insight: "))
	b.WriteString(lipgloss.NewStyle().
		Width(blockWidth).
		Foreground(theme.Text).
		Render(s.coachExpl.KeyInsight))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render("Check yourself: "))
	b.WriteString(lipgloss.NewStyle().
		Width(blockWidth).
		Foreground(theme.Text).
		Render(s.coachExpl.CheckItem))
	b.WriteString("\n\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String()) + "\n"
}

// renderTopicDone renders the day-complete screen.
func (s *SessionScreen) renderTopicDone(width int) string {
	t := s.engine.CurrentTopic()
	report := s.engine.Progress()

	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("Day %d complete: %s", t.Day, t.Title)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Overall score: %.0f%% (%d/%d graded)",
			report.OverallScore*100, report.CorrectAttempts, report.GradedAttempts)))
	b.WriteString("\n\n")

	next := "the next day"
	if t.Day < len(s.topics) {
		next = fmt.Sprintf("Day %d: %s", t.Day+1, s.topics[t.Day].Title)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Press Enter to start %s, or Esc to stop here.", next)))

	return b.String()
}

// renderRoadmapDone renders the roadmap-complete screen.
func (s *SessionScreen) renderRoadmapDone(width int) string {
	report := s.engine.Progress()

	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("★ Roadmap complete ★"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("All %d days finished. Overall score: %.0f%%",
			report.TotalTopics, report.OverallScore*100)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to see your session summary."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your place in the roadmap is saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
