package statusline

import "time"

// runTimer accumulates wall-clock time spent in the "running" state of a
// task, across any number of pause/resume cycles. The spinner anchor is fixed
// at creation so animation phase survives pauses without resetting.
type runTimer struct {
	elapsedRunning   time.Duration
	lastResumeAt     time.Time
	paused           bool
	spinnerStartedAt time.Time
}

// RunTimerSnapshot is the materialized, render-ready view of a runTimer at a
// single instant. It carries no behavior.
type RunTimerSnapshot struct {
	ElapsedRunning time.Duration
	LastResumeAt   time.Time
	Paused         bool
}

func newRunTimer(now time.Time) *runTimer {
	return &runTimer{
		lastResumeAt:     now,
		spinnerStartedAt: now,
	}
}

func (t *runTimer) resume(now time.Time) {
	if !t.paused {
		return
	}
	t.lastResumeAt = now
	t.paused = false
}

func (t *runTimer) pause(now time.Time) {
	if t.paused {
		return
	}
	t.elapsedRunning += saturatingSince(now, t.lastResumeAt)
	t.paused = true
}

// snapshotAt reads the timer without mutating it.
func (t *runTimer) snapshotAt(now time.Time) RunTimerSnapshot {
	elapsed := t.elapsedRunning
	if !t.paused {
		elapsed += saturatingSince(now, t.lastResumeAt)
	}
	return RunTimerSnapshot{
		ElapsedRunning: elapsed,
		LastResumeAt:   t.lastResumeAt,
		Paused:         t.paused,
	}
}

// saturatingSince clamps to zero so a skewed or non-monotonic clock can
// never subtract time that was already accounted for.
func saturatingSince(now, since time.Time) time.Duration {
	d := now.Sub(since)
	if d < 0 {
		return 0
	}
	return d
}
