package core

import "time"

// Button samples the raw navigation input level. True means pressed.
type Button interface {
	Pressed() bool
}

// DefaultStableLow is the minimum unpressed interval before the next
// press counts, which filters contact bounce on release.
const DefaultStableLow = 30 * time.Millisecond

// Debouncer turns raw level samples into press edges without blocking
// the control loop. An edge is a low-to-high transition after the
// input has been stably low; holding the button produces no further
// edges until it is released.
type Debouncer struct {
	minStable time.Duration
	level     bool
	lowSince  time.Time
	primed    bool
}

// NewDebouncer creates a debouncer with the given stable-low
// requirement. Zero selects DefaultStableLow.
func NewDebouncer(minStable time.Duration) *Debouncer {
	if minStable <= 0 {
		minStable = DefaultStableLow
	}
	return &Debouncer{minStable: minStable}
}

// Sample feeds one raw level reading and reports whether it completes
// a press edge. Exactly one edge results per physical press,
// regardless of press duration or loop rate.
func (d *Debouncer) Sample(level bool, now time.Time) bool {
	if !d.primed {
		d.primed = true
		d.level = level
		d.lowSince = now
		return false
	}

	edge := false
	if level && !d.level && now.Sub(d.lowSince) >= d.minStable {
		edge = true
	}
	if !level && d.level {
		d.lowSince = now
	}
	d.level = level
	return edge
}
