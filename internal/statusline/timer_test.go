package statusline

import (
	"testing"
	"time"
)

func TestRunTimer_ElapsedWhileRunning(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timer := newRunTimer(t0)

	prev := time.Duration(-1)
	for _, offset := range []time.Duration{0, time.Second, 3 * time.Second, 10 * time.Second} {
		got := timer.snapshotAt(t0.Add(offset)).ElapsedRunning
		if got != offset {
			t.Errorf("elapsed at +%v: got %v, want %v", offset, got, offset)
		}
		if got < prev {
			t.Errorf("elapsed went backwards: %v after %v", got, prev)
		}
		prev = got
	}
}

func TestRunTimer_PauseExcludesGap(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timer := newRunTimer(t0)

	timer.pause(t0.Add(5 * time.Second))
	if got := timer.snapshotAt(t0.Add(8 * time.Second)).ElapsedRunning; got != 5*time.Second {
		t.Fatalf("elapsed while paused: got %v, want 5s", got)
	}

	timer.resume(t0.Add(8 * time.Second))
	if got := timer.snapshotAt(t0.Add(10 * time.Second)).ElapsedRunning; got != 7*time.Second {
		t.Fatalf("elapsed after resume: got %v, want 7s (paused gap excluded)", got)
	}
}

func TestRunTimer_PauseResumeIdempotent(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timer := newRunTimer(t0)

	// Resuming a running timer must not reset the resume anchor.
	timer.resume(t0.Add(2 * time.Second))
	if got := timer.snapshotAt(t0.Add(4 * time.Second)).ElapsedRunning; got != 4*time.Second {
		t.Fatalf("after redundant resume: got %v, want 4s", got)
	}

	timer.pause(t0.Add(4 * time.Second))
	timer.pause(t0.Add(9 * time.Second))
	if got := timer.snapshotAt(t0.Add(20 * time.Second)).ElapsedRunning; got != 4*time.Second {
		t.Fatalf("after redundant pause: got %v, want 4s", got)
	}
}

func TestRunTimer_SnapshotIsPure(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timer := newRunTimer(t0)

	at := t0.Add(3 * time.Second)
	first := timer.snapshotAt(at)
	second := timer.snapshotAt(at)
	if first != second {
		t.Fatalf("repeated snapshots differ: %+v vs %+v", first, second)
	}
	if first.Paused {
		t.Fatal("fresh timer should be running")
	}
}

func TestRunTimer_BackwardClockSaturates(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timer := newRunTimer(t0)

	// A clock jump behind the resume anchor must read as zero, not negative.
	if got := timer.snapshotAt(t0.Add(-30 * time.Second)).ElapsedRunning; got != 0 {
		t.Fatalf("elapsed with backward clock: got %v, want 0", got)
	}

	timer.pause(t0.Add(-30 * time.Second))
	if got := timer.snapshotAt(t0.Add(time.Minute)).ElapsedRunning; got != 0 {
		t.Fatalf("pause with backward clock accrued time: got %v, want 0", got)
	}
}

func TestRunTimer_SpinnerAnchorFixed(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timer := newRunTimer(t0)

	timer.pause(t0.Add(time.Second))
	timer.resume(t0.Add(5 * time.Second))
	timer.pause(t0.Add(6 * time.Second))
	if timer.spinnerStartedAt != t0 {
		t.Fatalf("spinner anchor moved: got %v, want %v", timer.spinnerStartedAt, t0)
	}
}
