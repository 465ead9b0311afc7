package statusline

import "time"

// FrameRequester is the redraw-scheduling sink the status line cooperates
// with. Both calls are fire-and-forget; the host event loop is responsible
// for coalescing duplicate requests, and the status line leans on that
// instead of deduplicating its own.
type FrameRequester interface {
	// ScheduleFrame requests a repaint as soon as convenient.
	ScheduleFrame()
	// ScheduleFrameIn requests a repaint no earlier than d from now.
	ScheduleFrameIn(d time.Duration)
}

// NopFrameRequester discards every request. Useful for headless rendering
// and tests that do not care about scheduling.
type NopFrameRequester struct{}

func (NopFrameRequester) ScheduleFrame()                  {}
func (NopFrameRequester) ScheduleFrameIn(_ time.Duration) {}
