package statusline

import (
	"path/filepath"
	"time"
)

// ReasoningEffort is the model's configured reasoning level.
type ReasoningEffort string

const (
	ReasoningMinimal ReasoningEffort = "minimal"
	ReasoningLow     ReasoningEffort = "low"
	ReasoningMedium  ReasoningEffort = "medium"
	ReasoningHigh    ReasoningEffort = "high"
)

// followUpFrameDelay sustains a ~20fps spinner while a task runs unpaused:
// every render of an active run schedules the next one.
const followUpFrameDelay = 48 * time.Millisecond

// State owns the current status-line snapshot and the optional run timer,
// and turns incoming session events into redraw requests.
//
// It is written for a single-threaded host event loop: mutators and
// SnapshotForRender must never run concurrently. Hosts that need
// multi-threaded access should serialize at their boundary (one mutex around
// the whole State, or an actor feeding it messages) rather than expect
// internal locking.
type State struct {
	cwd               string
	frames            FrameRequester
	renderer          Renderer
	snapshot          Snapshot
	timer             *runTimer
	queuedMessages    []string
	escHint           bool
	contextWindowHint uint64
	sessionID         string

	// now is swapped out by tests; everything time-related funnels through it.
	now func() time.Time
}

// New builds a State rooted at cwd and immediately requests the first frame.
// contextWindowHint is the configured fallback window size (0 = none) used
// when a usage report does not name its own.
func New(cwd string, contextWindowHint uint64, frames FrameRequester) *State {
	s := &State{
		frames:            frames,
		renderer:          Renderer{},
		escHint:           true,
		contextWindowHint: contextWindowHint,
		now:               time.Now,
	}
	s.SetWorkingDirectory(cwd)
	return s
}

// WorkingDirectory returns the directory last passed to SetWorkingDirectory.
func (s *State) WorkingDirectory() string {
	return s.cwd
}

// SetWorkingDirectory recomputes the directory display fields. It always
// requests a redraw; callers own the dedup cadence.
func (s *State) SetWorkingDirectory(cwd string) {
	s.cwd = cwd
	display := DisplayPath(cwd)
	basename := filepath.Base(cwd)
	if basename == "." || basename == string(filepath.Separator) {
		basename = ""
	}
	s.snapshot.CwdDisplay = display
	s.snapshot.CwdBasename = basename
	if basename != "" {
		s.snapshot.CwdFallback = basename
	} else {
		s.snapshot.CwdFallback = display
	}
	s.requestRedraw()
}

// UpdateModel sets the model label plus a detail string derived from the
// reasoning effort. Only explicit high/low levels produce a detail; medium,
// minimal and unset all render without one.
func (s *State) UpdateModel(label string, effort ReasoningEffort) {
	s.snapshot.Model = &ModelSnapshot{
		Label:  label,
		Detail: reasoningDetail(effort),
	}
	s.requestRedraw()
}

func reasoningDetail(effort ReasoningEffort) string {
	switch effort {
	case ReasoningHigh:
		return "high"
	case ReasoningLow:
		return "low"
	default:
		return ""
	}
}

// UpdateTokens replaces the token and context fields from a usage report.
// A nil report clears both. The context snapshot only materializes when a
// window size resolves: model-reported first, configured hint second.
func (s *State) UpdateTokens(info *TokenUsageInfo) {
	if info != nil {
		window := info.ModelContextWindow
		if window == 0 {
			window = s.contextWindowHint
		}
		s.snapshot.Tokens, s.snapshot.Context = tokenSnapshotFromInfo(*info, window)
	} else {
		s.snapshot.Tokens = nil
		s.snapshot.Context = nil
	}
	s.requestRedraw()
}

// SetGitInfo replaces the git field wholesale; nil clears it.
func (s *State) SetGitInfo(git *GitSnapshot) {
	s.snapshot.Git = git
	s.requestRedraw()
}

func (s *State) SetDevspace(devspace string) {
	s.snapshot.Environment.Devspace = devspace
	s.requestRedraw()
}

func (s *State) SetHostname(hostname string) {
	s.snapshot.Environment.Hostname = hostname
	s.requestRedraw()
}

func (s *State) SetAWSProfile(profile string) {
	s.snapshot.Environment.AWSProfile = profile
	s.requestRedraw()
}

func (s *State) SetKubernetesContext(context string) {
	s.snapshot.Environment.KubernetesContext = context
	s.requestRedraw()
}

// SetSessionID records the session identifier for log correlation. It does
// not appear in the rendered line and does not trigger a redraw.
func (s *State) SetSessionID(id string) {
	s.sessionID = id
}

// SessionID returns the identifier recorded by SetSessionID.
func (s *State) SessionID() string {
	return s.sessionID
}

// SetQueuedMessages replaces the queued list and mirrors it into the run
// sub-snapshot when one exists.
func (s *State) SetQueuedMessages(messages []string) {
	s.queuedMessages = messages
	if s.snapshot.Run != nil {
		s.snapshot.Run.QueuedMessages = append([]string(nil), messages...)
	}
	s.requestRedraw()
}

// UpdateRunHeader changes the active run's label without touching timer or
// queued-message state. With no active run it creates the sub-snapshot, so a
// header can land before the task formally starts. An unchanged label is a
// no-op with no redraw.
func (s *State) UpdateRunHeader(header string) {
	if run := s.snapshot.Run; run != nil {
		if run.Label == header {
			return
		}
		run.Label = header
		s.requestRedraw()
		return
	}
	s.snapshot.Run = &RunState{
		Label:             header,
		ShowInterruptHint: s.escHint,
		QueuedMessages:    append([]string(nil), s.queuedMessages...),
	}
	s.requestRedraw()
}

// StartTask begins (or resumes) the active run: the existing timer resumes,
// or a fresh one starts anchored at the current instant. Prior run fields
// other than label/hint/queue are preserved.
func (s *State) StartTask(header string) {
	now := s.now()
	if s.timer != nil {
		s.timer.resume(now)
	} else {
		s.timer = newRunTimer(now)
	}
	run := &RunState{}
	if s.snapshot.Run != nil {
		run = s.snapshot.Run.clone()
	}
	run.Label = header
	run.ShowInterruptHint = s.escHint
	run.QueuedMessages = append([]string(nil), s.queuedMessages...)
	s.snapshot.Run = run
	s.requestRedraw()
}

// CompleteTask ends the active run. The timer is paused for bookkeeping
// symmetry and then dropped along with the whole run sub-snapshot; a
// completed task shows no run indicator at all.
func (s *State) CompleteTask() {
	if s.timer != nil {
		s.timer.pause(s.now())
	}
	s.timer = nil
	s.snapshot.Run = nil
	s.requestRedraw()
}

// ResumeTimer resumes a paused timer. No timer, no effect, no redraw.
func (s *State) ResumeTimer() {
	if s.timer == nil {
		return
	}
	s.timer.resume(s.now())
	s.requestRedraw()
}

// PauseTimer pauses the timer while keeping the run indicator up, e.g. while
// the session waits on user approval. No timer, no effect, no redraw.
func (s *State) PauseTimer() {
	if s.timer == nil {
		return
	}
	s.timer.pause(s.now())
	s.requestRedraw()
}

// ElapsedSeconds reports whole seconds of running time, or false when no
// task is active. Pure read.
func (s *State) ElapsedSeconds() (uint64, bool) {
	if s.timer == nil {
		return 0, false
	}
	return uint64(s.timer.snapshotAt(s.now()).ElapsedRunning / time.Second), true
}

// SnapshotForRender materializes a frame-ready copy of the snapshot. Timer
// state, spinner anchor, queued messages and the interrupt hint are
// recomputed at render time rather than trusted from the stored sub-snapshot.
//
// Side effect: while a timer runs unpaused, every call schedules a follow-up
// frame; that chain is what keeps the spinner moving.
func (s *State) SnapshotForRender(now time.Time) *Snapshot {
	snap := s.snapshot.Clone()
	if snap.Run != nil && s.timer != nil {
		timerSnap := s.timer.snapshotAt(now)
		snap.Run.Timer = &timerSnap
		snap.Run.SpinnerStartedAt = s.timer.spinnerStartedAt
		snap.Run.QueuedMessages = append([]string(nil), s.queuedMessages...)
		snap.Run.ShowInterruptHint = s.escHint
	}
	if s.timer != nil && !s.timer.paused {
		s.frames.ScheduleFrameIn(followUpFrameDelay)
	}
	return snap
}

// RenderLine captures now, materializes the snapshot, and hands both to the
// renderer.
func (s *State) RenderLine(width int) string {
	now := s.now()
	return s.renderer.Render(s.SnapshotForRender(now), width, now)
}

func (s *State) requestRedraw() {
	s.frames.ScheduleFrame()
}
