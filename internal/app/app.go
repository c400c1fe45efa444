package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/coach"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/router"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screen"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screens/home"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Engine    *quiz.Engine
	Topics    []curriculum.Topic
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo

	// CoachSvc may be nil when no provider is configured.
	CoachSvc *coach.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *quiz.Engine
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Engine, opts.Topics, opts.EventRepo, opts.SnapRepo, opts.CoachSvc)
	return AppModel{
		router: router.New(homeScreen),
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	t := m.engine.CurrentTopic()
	report := m.engine.Progress()
	header := layout.RenderHeader(title, t.Day, report.TotalTopics, t.Phase.DisplayName(), m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
