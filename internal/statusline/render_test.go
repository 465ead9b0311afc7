package statusline

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func fullSnapshot(now time.Time) *Snapshot {
	last := TokenCounts{TotalTokens: 120}
	return &Snapshot{
		CwdDisplay:  "~/src/statuskit",
		CwdBasename: "statuskit",
		CwdFallback: "statuskit",
		Model:       &ModelSnapshot{Label: "gpt-5", Detail: "high"},
		Tokens:      &TokenSnapshot{Total: TokenCounts{TotalTokens: 45_200}, Last: &last},
		Context:     &ContextSnapshot{PercentRemaining: 72, TokensInContext: 56_000, Window: 200_000},
		Git:         &GitSnapshot{Branch: "main", Dirty: true},
		Environment: EnvironmentSnapshot{
			Devspace:          "dev-2",
			Hostname:          "workbox",
			AWSProfile:        "staging",
			KubernetesContext: "us-east-1",
		},
		Run: &RunState{
			Label:             "Building",
			ShowInterruptHint: true,
			QueuedMessages:    []string{"one", "two"},
			Timer:             &RunTimerSnapshot{ElapsedRunning: 95 * time.Second},
			SpinnerStartedAt:  now.Add(-3 * time.Second),
		},
	}
}

func TestRender_DoesNotOverflow(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	snap := fullSnapshot(now)
	var r Renderer

	for _, width := range []int{20, 40, 60, 80, 120, 200} {
		line := r.Render(snap, width, now)
		if got := lipgloss.Width(line); got > width {
			t.Errorf("width %d: line overflows to %d: %q", width, got, line)
		}
	}
}

func TestRender_SegmentsPresentWhenWide(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	line := Renderer{}.Render(fullSnapshot(now), 300, now)

	for _, want := range []string{
		"Building", "1m 35s", "esc to interrupt", "+2 queued",
		"statuskit", "gpt-5 high", "72% context left", "45.2k tokens",
		"main*", "dev-2", "workbox", "staging", "us-east-1",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("rendered line missing %q: %q", want, line)
		}
	}
}

func TestRender_OmitsUnknownSegments(t *testing.T) {
	now := time.Now()
	snap := &Snapshot{CwdFallback: "project"}
	line := Renderer{}.Render(snap, 120, now)

	for _, absent := range []string{"context", "tokens", "esc", "queued"} {
		if strings.Contains(line, absent) {
			t.Errorf("empty snapshot should omit %q segment: %q", absent, line)
		}
	}
	if !strings.Contains(line, "project") {
		t.Errorf("directory fallback missing: %q", line)
	}
}

func TestRender_PausedTimerMarked(t *testing.T) {
	now := time.Now()
	snap := &Snapshot{
		CwdFallback: "project",
		Run: &RunState{
			Label: "Building",
			Timer: &RunTimerSnapshot{ElapsedRunning: 10 * time.Second, Paused: true},
		},
	}
	line := Renderer{}.Render(snap, 120, now)
	if !strings.Contains(line, "⏸") {
		t.Errorf("paused run should carry the pause mark: %q", line)
	}
}

func TestRender_SpinnerPhaseFollowsAnchor(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{Run: &RunState{Label: "Go", SpinnerStartedAt: now}}
	var r Renderer

	first := r.Render(snap, 80, now)
	same := r.Render(snap, 80, now)
	if first != same {
		t.Fatal("render must be pure: identical inputs gave different lines")
	}
	later := r.Render(snap, 80, now.Add(spinnerFrameInterval))
	if first == later {
		t.Fatal("spinner frame should advance with now")
	}
}

func TestRender_ZeroWidth(t *testing.T) {
	if got := (Renderer{}).Render(&Snapshot{CwdFallback: "x"}, 0, time.Now()); got != "" {
		t.Fatalf("zero width should render nothing, got %q", got)
	}
}
