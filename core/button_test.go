package core

import (
	"testing"
	"time"
)

func TestDebouncerOneEdgePerPress(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	now := time.Unix(1000, 0)

	d.Sample(false, now)
	now = now.Add(50 * time.Millisecond)

	// Press held across many samples: exactly one edge.
	edges := 0
	for i := 0; i < 20; i++ {
		if d.Sample(true, now) {
			edges++
		}
		now = now.Add(5 * time.Millisecond)
	}
	if edges != 1 {
		t.Errorf("held press: expected 1 edge, got %d", edges)
	}

	// Release, wait out the stable-low interval, press again.
	d.Sample(false, now)
	now = now.Add(50 * time.Millisecond)
	if !d.Sample(true, now) {
		t.Errorf("second press after stable low produced no edge")
	}
}

func TestDebouncerSuppressesBounce(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	now := time.Unix(2000, 0)

	d.Sample(false, now)
	now = now.Add(50 * time.Millisecond)
	if !d.Sample(true, now) {
		t.Fatal("clean press produced no edge")
	}

	// Release bounce: brief low then high again within the stable
	// window must not count as a new press.
	now = now.Add(2 * time.Millisecond)
	d.Sample(false, now)
	now = now.Add(2 * time.Millisecond)
	if d.Sample(true, now) {
		t.Errorf("bounce within stable-low window produced an edge")
	}
}

func TestDebouncerPressedAtPowerOn(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	now := time.Unix(3000, 0)

	// Button already held at the first sample: no edge until a full
	// release-then-press.
	if d.Sample(true, now) {
		t.Errorf("edge on priming sample")
	}
	now = now.Add(time.Second)
	if d.Sample(true, now) {
		t.Errorf("edge while still held from power-on")
	}

	d.Sample(false, now)
	now = now.Add(50 * time.Millisecond)
	if !d.Sample(true, now) {
		t.Errorf("press after release produced no edge")
	}
}
