package statusline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerFrameInterval = 80 * time.Millisecond

var (
	runStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "111"})
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"})
	modelStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "133", Dark: "176"})
	contextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "78"})
	gitStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "94", Dark: "179"})
	envStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "31", Dark: "80"})
)

const segmentSeparator = "  "

// Renderer turns a snapshot into one displayable line. It holds no state;
// the same (snapshot, width, now) always yields the same line.
type Renderer struct{}

// Render lays out left-anchored session segments and right-anchored
// environment tags, padded to width and truncated with an ellipsis when the
// terminal is too narrow.
func (Renderer) Render(snap *Snapshot, width int, now time.Time) string {
	if width <= 0 {
		return ""
	}

	left := strings.Join(leftSegments(snap, now), segmentSeparator)
	right := strings.Join(rightSegments(snap), segmentSeparator)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if right == "" || gap < 1 {
		line := left
		if right != "" {
			line += segmentSeparator + right
		}
		return truncate.StringWithTail(line, uint(width), "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func leftSegments(snap *Snapshot, now time.Time) []string {
	var segs []string
	if run := snap.Run; run != nil {
		segs = append(segs, runSegment(run, now))
	}
	if cwd := snap.CwdFallback; cwd != "" {
		segs = append(segs, dimStyle.Render(cwd))
	}
	if m := snap.Model; m != nil {
		label := m.Label
		if m.Detail != "" {
			label += " " + m.Detail
		}
		segs = append(segs, modelStyle.Render(label))
	}
	if ctx := snap.Context; ctx != nil {
		segs = append(segs, contextStyle.Render(fmt.Sprintf("%d%% context left", ctx.PercentRemaining)))
	}
	if tok := snap.Tokens; tok != nil {
		segs = append(segs, dimStyle.Render(formatTokenCount(tok.Total.TotalTokens)+" tokens"))
	}
	return segs
}

func rightSegments(snap *Snapshot) []string {
	var segs []string
	if git := snap.Git; git != nil && git.Branch != "" {
		branch := git.Branch
		if git.Dirty {
			branch += "*"
		}
		segs = append(segs, gitStyle.Render(branch))
	}
	env := snap.Environment
	for _, tag := range []string{env.Devspace, env.Hostname, env.AWSProfile, env.KubernetesContext} {
		if tag != "" {
			segs = append(segs, envStyle.Render(tag))
		}
	}
	return segs
}

func runSegment(run *RunState, now time.Time) string {
	frame := spinnerFrames[0]
	if !run.SpinnerStartedAt.IsZero() {
		phase := saturatingSince(now, run.SpinnerStartedAt) / spinnerFrameInterval
		frame = spinnerFrames[int(phase)%len(spinnerFrames)]
	}

	var b strings.Builder
	b.WriteString(frame)
	if run.Label != "" {
		b.WriteString(" ")
		b.WriteString(run.Label)
	}
	if run.Timer != nil {
		b.WriteString(" ")
		b.WriteString(formatElapsed(run.Timer.ElapsedRunning))
		if run.Timer.Paused {
			b.WriteString(" ⏸")
		}
	}
	seg := runStyle.Render(b.String())
	if run.ShowInterruptHint {
		seg += " " + dimStyle.Render("(esc to interrupt)")
	}
	if n := len(run.QueuedMessages); n > 0 {
		seg += " " + dimStyle.Render(fmt.Sprintf("+%d queued", n))
	}
	return seg
}

func formatElapsed(d time.Duration) string {
	secs := uint64(d / time.Second)
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm %02ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%dh %02dm", secs/3600, (secs%3600)/60)
	}
}

func formatTokenCount(n uint64) string {
	switch {
	case n < 1_000:
		return fmt.Sprintf("%d", n)
	case n < 1_000_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%.2fM", float64(n)/1_000_000)
	}
}
