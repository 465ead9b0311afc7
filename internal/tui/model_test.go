package tui

import (
	"os"
	"strings"
	"testing"

	"statuskit/internal/app"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.Model = "gpt-5"
	cfg.ShowHostname = false
	m := NewModel(cfg, app.NewLogger(os.Stderr), t.TempDir(), NewFrameScheduler())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestModel_ViewDoesNotOverflow(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m.input.SetValue(strings.Repeat("long message ", 20))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	for _, line := range strings.Split(m.View(), "\n") {
		if got := lipgloss.Width(line); got > m.width {
			t.Fatalf("view line overflows: got %d > %d: %q", got, m.width, line)
		}
	}
}

func TestModel_TaskLifecycleKeys(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.taskRunning {
		t.Fatal("ctrl+s should start a task")
	}
	if _, ok := m.state.ElapsedSeconds(); !ok {
		t.Fatal("a started task should carry a timer")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.paused {
		t.Fatal("ctrl+p should pause")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.paused {
		t.Fatal("ctrl+r should resume")
	}

	m.input.SetValue("do this next")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.queued) != 1 {
		t.Fatalf("enter during a task should queue, got %v", m.queued)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if m.taskRunning {
		t.Fatal("ctrl+x should complete the task")
	}
	if _, ok := m.state.ElapsedSeconds(); ok {
		t.Fatal("completed task should drop the timer")
	}
	if len(m.queued) != 0 {
		t.Fatal("completion should clear the queue")
	}
}
