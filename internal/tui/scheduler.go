package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg tells the model to repaint. The scheduler sends at most one
// outstanding FrameMsg at a time; requests that arrive while one is in
// flight coalesce into it.
type FrameMsg struct{}

// FrameScheduler adapts bubbletea's message queue to the status line's
// redraw contract. Duplicate ASAP requests collapse into one message, and
// overlapping delayed requests collapse to the earliest deadline.
type FrameScheduler struct {
	mu       sync.Mutex
	send     func(tea.Msg)
	pending  bool
	deferred bool // a request arrived before Bind
	timer    *time.Timer
	deadline time.Time
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Bind attaches the running program's send function and flushes any request
// that arrived before the program started.
func (f *FrameScheduler) Bind(send func(tea.Msg)) {
	f.mu.Lock()
	f.send = send
	flush := f.deferred
	f.deferred = false
	f.mu.Unlock()
	if flush {
		f.ScheduleFrame()
	}
}

// ScheduleFrame requests a repaint as soon as convenient.
func (f *FrameScheduler) ScheduleFrame() {
	f.mu.Lock()
	if f.send == nil {
		f.deferred = true
		f.mu.Unlock()
		return
	}
	if f.pending {
		f.mu.Unlock()
		return
	}
	f.pending = true
	send := f.send
	f.mu.Unlock()
	go send(FrameMsg{})
}

// ScheduleFrameIn requests a repaint no earlier than d from now. A later
// deadline never pushes out an earlier one.
func (f *FrameScheduler) ScheduleFrameIn(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deadline := time.Now().Add(d)
	if f.timer != nil {
		if deadline.After(f.deadline) {
			return
		}
		f.timer.Stop()
	}
	f.deadline = deadline
	f.timer = time.AfterFunc(d, func() {
		f.mu.Lock()
		f.timer = nil
		f.mu.Unlock()
		f.ScheduleFrame()
	})
}

// FrameDelivered must be called by the model when it processes a FrameMsg,
// re-arming the coalescing gate.
func (f *FrameScheduler) FrameDelivered() {
	f.mu.Lock()
	f.pending = false
	f.mu.Unlock()
}
