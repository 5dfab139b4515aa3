package ui

import (
	"strconv"
	"time"
)

// Guarded action durations.
const (
	EjectSeconds = 10
	ResetSeconds = 30
)

// Countdown is the confirmation timer in front of a destructive
// action. It decrements once per distinct wall-clock second while
// active; cancelling rewinds it to the full duration without firing.
type Countdown struct {
	total     int
	remaining int
	lastTick  int64
	active    bool
}

// NewCountdown creates an idle countdown of the given duration.
func NewCountdown(totalSeconds int) *Countdown {
	return &Countdown{total: totalSeconds, remaining: totalSeconds}
}

// Start arms the countdown at the full duration. The current second
// is recorded so the first decrement happens on the next second
// boundary, not immediately.
func (c *Countdown) Start(now time.Time) {
	c.remaining = c.total
	c.lastTick = now.Unix()
	c.active = true
}

// Tick advances the countdown. It decrements at most once per
// distinct wall-clock second regardless of how often the control loop
// calls it, and returns true exactly once, when the count reaches
// zero. After firing the countdown is idle again.
//
// Seconds earlier than the last tick are ignored rather than counted
// as new seconds, so a time source that steps backwards (an RTC
// correction, or readings mixed from two timebases) can only stall
// the countdown, never accelerate it.
func (c *Countdown) Tick(now time.Time) bool {
	if !c.active {
		return false
	}
	sec := now.Unix()
	if sec <= c.lastTick {
		return false
	}
	c.lastTick = sec
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	c.active = false
	c.remaining = c.total
	return true
}

// Cancel rewinds to the full duration and disarms without firing.
func (c *Countdown) Cancel() {
	c.remaining = c.total
	c.active = false
}

// Active reports whether the countdown is armed.
func (c *Countdown) Active() bool {
	return c.active
}

// Remaining returns the seconds left before the action fires.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// FormatRemaining renders the count with correct number agreement.
func FormatRemaining(seconds int) string {
	if seconds == 1 {
		return "1 second"
	}
	return strconv.Itoa(seconds) + " seconds"
}
