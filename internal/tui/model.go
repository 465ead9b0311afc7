package tui

import (
	"fmt"
	"strings"
	"time"

	"statuskit/internal/app"
	"statuskit/internal/registry"
	"statuskit/internal/statusline"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type probeTickMsg time.Time

type registryChangedMsg struct{ reg *registry.Registry }

type keyMap struct {
	Start     key.Binding
	Complete  key.Binding
	Pause     key.Binding
	Resume    key.Binding
	Queue     key.Binding
	Interrupt key.Binding
	Quit      key.Binding
}

var defaultKeyMap = keyMap{
	Start:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "start task")),
	Complete:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "complete task")),
	Pause:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pause timer")),
	Resume:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "resume timer")),
	Queue:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "queue message")),
	Interrupt: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "interrupt")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

var taskLabels = []string{"Thinking", "Building", "Testing", "Reviewing"}

// Model is the interactive host: it feeds session events into the status
// line and repaints on the scheduler's cadence.
type Model struct {
	cfg       app.Config
	logger    *app.Logger
	theme     Theme
	keys      keyMap
	state     *statusline.State
	scheduler *FrameScheduler

	input  textarea.Model
	events []string
	queued []string

	width  int
	height int
	ready  bool

	taskIndex   int
	taskRunning bool
	paused      bool

	serverCount int
}

func NewModel(cfg app.Config, logger *app.Logger, cwd string, scheduler *FrameScheduler) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type a message, Enter queues it for the running task."
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetHeight(1)
	ta.Prompt = " "
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	state := statusline.New(cwd, cfg.ContextWindow, scheduler)
	state.SetSessionID(app.NewSessionID())
	if cfg.Model != "" {
		state.UpdateModel(cfg.Model, statusline.ReasoningEffort(cfg.ReasoningEffort))
	}

	m := &Model{
		cfg:       cfg,
		logger:    logger,
		theme:     NewTheme(),
		keys:      defaultKeyMap,
		state:     state,
		scheduler: scheduler,
		input:     ta,
		width:     100,
		height:    30,
	}
	m.runProbes()
	logger.Info("session started", map[string]any{
		"session_id": state.SessionID(),
		"cwd":        cwd,
	})
	return m
}

// SetRegistry pushes the current registry into the model before the program
// starts; later changes arrive through RegistryChanged.
func (m *Model) SetRegistry(reg *registry.Registry) {
	m.serverCount = len(reg.Enabled())
}

// RegistryChanged wraps a reloaded registry as a message for Program.Send.
func RegistryChanged(reg *registry.Registry) tea.Msg {
	return registryChangedMsg{reg: reg}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.probeTick())
}

func (m *Model) probeTick() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.ProbeIntervalSeconds)*time.Second, func(t time.Time) tea.Msg {
		return probeTickMsg(t)
	})
}

func (m *Model) runProbes() {
	m.state.SetGitInfo(app.ProbeGit(m.state.WorkingDirectory()))
	env := app.ProbeEnvironment(m.cfg)
	m.state.SetDevspace(env.Devspace)
	m.state.SetHostname(env.Hostname)
	m.state.SetAWSProfile(env.AWSProfile)
	m.state.SetKubernetesContext(env.KubernetesContext)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		m.ready = true
		return m, nil

	case FrameMsg:
		m.scheduler.FrameDelivered()
		return m, nil

	case probeTickMsg:
		m.runProbes()
		return m, m.probeTick()

	case registryChangedMsg:
		m.serverCount = len(msg.reg.Enabled())
		m.addEvent(fmt.Sprintf("registry reloaded: %d server(s) enabled", m.serverCount))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		label := taskLabels[m.taskIndex%len(taskLabels)]
		m.taskIndex++
		m.state.StartTask(label)
		m.taskRunning = true
		m.paused = false
		m.addEvent("task started: " + label)
		return m, nil

	case key.Matches(msg, m.keys.Complete), key.Matches(msg, m.keys.Interrupt):
		if !m.taskRunning {
			return m, nil
		}
		m.state.CompleteTask()
		m.taskRunning = false
		m.paused = false
		m.queued = nil
		m.state.SetQueuedMessages(nil)
		m.addEvent("task completed")
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if m.taskRunning && !m.paused {
			m.state.PauseTimer()
			m.paused = true
			m.addEvent("timer paused")
		}
		return m, nil

	case key.Matches(msg, m.keys.Resume):
		if m.taskRunning && m.paused {
			m.state.ResumeTimer()
			m.paused = false
			m.addEvent("timer resumed")
		}
		return m, nil

	case key.Matches(msg, m.keys.Queue):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Reset()
		if m.taskRunning {
			m.queued = append(m.queued, text)
			m.state.SetQueuedMessages(m.queued)
			m.addEvent("queued: " + text)
		} else {
			m.addEvent("sent: " + text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addEvent(line string) {
	stamp := time.Now().Format("15:04:05")
	m.events = append(m.events, stamp+" "+line)
	const keep = 200
	if len(m.events) > keep {
		m.events = m.events[len(m.events)-keep:]
	}
}

func (m *Model) View() string {
	if !m.ready {
		return "loading…"
	}

	title := m.theme.Title.Render("statuskit")
	if m.serverCount > 0 {
		title += "  " + m.theme.EventDim.Render(fmt.Sprintf("%d server(s)", m.serverCount))
	}

	inputBox := m.theme.InputBox.Width(m.width - 2).Render(m.input.View())
	status := m.state.RenderLine(m.width)
	footer := m.theme.Footer.Render("ctrl+s start · ctrl+x complete · ctrl+p pause · ctrl+r resume · ctrl+c quit")

	chrome := 1 + lipgloss.Height(inputBox) + 1 + 1 // title, input, status, footer
	eventRows := m.height - chrome
	if eventRows < 0 {
		eventRows = 0
	}
	events := m.renderEvents(eventRows)

	return strings.Join([]string{title, events, inputBox, status, footer}, "\n")
}

func (m *Model) renderEvents(rows int) string {
	if rows == 0 {
		return ""
	}
	start := 0
	if len(m.events) > rows {
		start = len(m.events) - rows
	}
	lines := make([]string, 0, rows)
	for _, ev := range m.events[start:] {
		lines = append(lines, m.theme.Event.Render(truncate.StringWithTail(ev, uint(m.width), "…")))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
