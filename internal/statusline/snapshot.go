package statusline

import "time"

// Snapshot is everything the renderer needs to draw one status line at one
// instant. State hands out deep copies so a snapshot taken for a frame can
// never be mutated underneath the renderer.
type Snapshot struct {
	CwdDisplay  string
	CwdBasename string
	CwdFallback string

	Model   *ModelSnapshot
	Tokens  *TokenSnapshot
	Context *ContextSnapshot

	Environment EnvironmentSnapshot
	Git         *GitSnapshot

	Run *RunState
}

// ModelSnapshot describes the selected model and an optional detail suffix
// (e.g. a reasoning-effort qualifier).
type ModelSnapshot struct {
	Label  string
	Detail string
}

// TokenCounts mirrors the provider's usage counters for one accounting bucket.
type TokenCounts struct {
	TotalTokens           uint64
	InputTokens           uint64
	CachedInputTokens     uint64
	OutputTokens          uint64
	ReasoningOutputTokens uint64
}

// TokenSnapshot carries cumulative session totals plus the last turn's delta.
type TokenSnapshot struct {
	Total TokenCounts
	Last  *TokenCounts
}

// ContextSnapshot is present only when a context-window size is known.
type ContextSnapshot struct {
	PercentRemaining int
	TokensInContext  uint64
	Window           uint64
}

// EnvironmentSnapshot groups the independently-optional environment tags.
// Empty string means "unknown"; the renderer omits empty segments.
type EnvironmentSnapshot struct {
	Devspace          string
	Hostname          string
	AWSProfile        string
	KubernetesContext string
}

// GitSnapshot describes the working tree, as far as the probe could tell.
type GitSnapshot struct {
	Branch string
	Dirty  bool
}

// RunState is the sub-snapshot for a currently active task. It exists from
// StartTask (or an early UpdateRunHeader) until CompleteTask.
type RunState struct {
	Label             string
	ShowInterruptHint bool
	QueuedMessages    []string
	Timer             *RunTimerSnapshot
	SpinnerStartedAt  time.Time
}

// Clone returns an independent deep copy.
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	if s.Model != nil {
		m := *s.Model
		out.Model = &m
	}
	if s.Tokens != nil {
		t := *s.Tokens
		if s.Tokens.Last != nil {
			last := *s.Tokens.Last
			t.Last = &last
		}
		out.Tokens = &t
	}
	if s.Context != nil {
		c := *s.Context
		out.Context = &c
	}
	if s.Git != nil {
		g := *s.Git
		out.Git = &g
	}
	if s.Run != nil {
		out.Run = s.Run.clone()
	}
	return &out
}

func (r *RunState) clone() *RunState {
	out := *r
	out.QueuedMessages = append([]string(nil), r.QueuedMessages...)
	if r.Timer != nil {
		t := *r.Timer
		out.Timer = &t
	}
	return &out
}
