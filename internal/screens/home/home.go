package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/coach"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/router"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screen"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screens/history"
	sessionscreen "github.com/mattmattheisen/smallcap-lab-study-coach/internal/screens/session"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/components"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	engine *quiz.Engine
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The engine carries the learner's current
// roadmap position; the repos and coach service are passed through to the
// session screen.
func New(engine *quiz.Engine, topics []curriculum.Topic, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, coachSvc *coach.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Continue Studying", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(engine, topics, eventRepo, snapRepo, coachSvc),
				}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		engine: engine,
		menu:   components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	t := h.engine.CurrentTopic()
	report := h.engine.Progress()

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Small-Cap Lab Study Coach")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("21 days to a working screener")
	sections = append(sections, title+"\n"+subtitle)

	var status string
	if report.TopicsCompleted == report.TotalTopics {
		status = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("Roadmap complete!")
	} else {
		status = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("Day %d: %s", t.Day, t.Title)) +
			"\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(t.Phase.DisplayName())
	}
	sections = append(sections, status)

	bar := components.NewProgressBar(
		fmt.Sprintf("Days %d/%d", report.TopicsCompleted, report.TotalTopics),
		float64(report.TopicsCompleted)/float64(report.TotalTopics),
		true,
		min(width-20, 40),
	)
	stats := bar.View()
	if report.GradedAttempts > 0 {
		stats += "\n" + lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(fmt.Sprintf("Score: %d/%d graded correct (%.0f%%)",
				report.CorrectAttempts, report.GradedAttempts, report.OverallScore*100))
	}
	sections = append(sections, stats)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
