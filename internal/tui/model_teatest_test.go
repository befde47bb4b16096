package tui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/exp/teatest/v2"

	"github.com/hylla/syssla/internal/domain"
)

func waitForText(t *testing.T, tm *teatest.TestModel, want string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return strings.Contains(string(out), want)
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(10*time.Millisecond))
}

// TestModelWithTeatest verifies startup render and quit.
func TestModelWithTeatest(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestModel(t, fixture(t)),
		teatest.WithInitialTermSize(120, 35))
	t.Cleanup(func() {
		_ = tm.Quit()
	})

	waitForText(t, tm, "Write report")
	waitForText(t, tm, "Inbox")

	tm.Send(tea.KeyPressMsg{Code: 'q', Text: "q"})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

// TestModelWithTeatestHelpOverlay verifies the expanded help overlay.
func TestModelWithTeatestHelpOverlay(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestModel(t, fixture(t)),
		teatest.WithInitialTermSize(120, 35))
	t.Cleanup(func() {
		_ = tm.Quit()
	})

	waitForText(t, tm, "Write report")

	tm.Send(tea.KeyPressMsg{Code: '?', Text: "?"})
	waitForText(t, tm, "syssla help")

	tm.Send(tea.KeyPressMsg{Code: tea.KeyEscape})
	tm.Send(tea.KeyPressMsg{Code: 'q', Text: "q"})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

// TestModelWithTeatestTaskDialog verifies the task dialog opens and closes.
func TestModelWithTeatestTaskDialog(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	inbox, _ := domain.NewProject("p-inbox", domain.DefaultProjectName, now)
	fake := newFakeService([]domain.Project{inbox}, nil)

	tm := teatest.NewTestModel(t, newTestModel(t, fake),
		teatest.WithInitialTermSize(120, 35))
	t.Cleanup(func() {
		_ = tm.Quit()
	})

	waitForText(t, tm, "(no tasks)")

	tm.Send(tea.KeyPressMsg{Code: 'a', Text: "a"})
	waitForText(t, tm, "New Task")

	tm.Send(tea.KeyPressMsg{Code: tea.KeyEscape})
	tm.Send(tea.KeyPressMsg{Code: 'q', Text: "q"})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
