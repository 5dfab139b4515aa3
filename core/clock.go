package core

import "time"

// Clock is the wall-clock source. Hardware backs it with the DS3231
// RTC; tests step it by hand. Countdown ticking and the clock page
// both key off whole seconds from this source.
type Clock interface {
	Now() time.Time
}

// OffsetClock serves wall-clock time from the monotonic system clock
// plus a fixed offset captured once against a reference reading. The
// reference device (the RTC) is never consulted again, so a flaky bus
// cannot mix two timebases into the second stream the countdowns and
// debouncing depend on.
type OffsetClock struct {
	offset time.Duration
}

// NewOffsetClock captures the offset between ref and the system
// clock. Call it once at boot with the RTC reading.
func NewOffsetClock(ref time.Time) *OffsetClock {
	return &OffsetClock{offset: time.Until(ref)}
}

func (c *OffsetClock) Now() time.Time {
	return time.Now().Add(c.offset)
}

// SystemClock is the fallback when no valid RTC reading exists at
// boot: monotonic, but epoch-relative rather than calendar time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
