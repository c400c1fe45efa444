package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/screen"
)

// fakeScreen stands in for a real screen and records whether Init ran.
type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func assertActive(t *testing.T, r *Router, name string) {
	t.Helper()
	if got := r.Active().Title(); got != name {
		t.Errorf("active screen = %q, want %q", got, name)
	}
}

func TestPush(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})

	session := &fakeScreen{name: "session"}
	r.Push(session)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "session")
	if !session.initRan {
		t.Error("Init() did not run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})
	r.Push(&fakeScreen{name: "stats"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "dashboard")
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
	assertActive(t, r, "dashboard")
}

func TestReplace(t *testing.T) {
	r := New(&fakeScreen{name: "session"})

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	if r.Depth() != 1 {
		t.Errorf("depth = %d after replace, want 1", r.Depth())
	}
	assertActive(t, r, "summary")
	if !summary.initRan {
		t.Error("Init() did not run on replacement screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&fakeScreen{name: "session"})

	summary := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	assertActive(t, r, "summary")
	if !summary.initRan {
		t.Error("Init() did not run via ReplaceScreenMsg")
	}
}

// Replacing the session with its summary must not grow the stack: backing
// out of the summary lands on the dashboard, not the finished session.
func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})
	r.Push(&fakeScreen{name: "session"})

	r.Replace(&fakeScreen{name: "summary"})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "summary")

	r.Pop()
	assertActive(t, r, "dashboard")
}
