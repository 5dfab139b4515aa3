package ui

import (
	"strings"
	"testing"
	"time"

	"velo/config"
)

// frameDisplay records printed lines per committed frame.
type frameDisplay struct {
	lines   []string
	commits int
}

func (f *frameDisplay) Clear()            { f.lines = f.lines[:0] }
func (f *frameDisplay) SetCursor(uint8)   {}
func (f *frameDisplay) SetTextSize(uint8) {}
func (f *frameDisplay) Print(s string)    { f.lines = append(f.lines, s) }
func (f *frameDisplay) Commit() error     { f.commits++; return nil }
func (f *frameDisplay) frame() string     { return strings.Join(f.lines, "\n") }

func (f *frameDisplay) contains(s string) bool {
	return strings.Contains(f.frame(), s)
}

func TestRenderHome(t *testing.T) {
	d := &frameDisplay{}
	if err := RenderHome(d, Stats{SpeedKmh: 23.46, DistanceKm: 5.2}); err != nil {
		t.Fatalf("RenderHome failed: %v", err)
	}
	if !d.contains("23.5 km/h") {
		t.Errorf("speed missing or misrounded: %q", d.frame())
	}
	if !d.contains("trip 5.2 km") {
		t.Errorf("distance missing: %q", d.frame())
	}
	if d.commits != 1 {
		t.Errorf("expected one commit, got %d", d.commits)
	}
}

func TestRenderClock(t *testing.T) {
	d := &frameDisplay{}
	now := time.Date(2026, time.March, 7, 14, 5, 9, 0, time.UTC)
	if err := RenderClock(d, now); err != nil {
		t.Fatalf("RenderClock failed: %v", err)
	}
	if !d.contains("14:05:09") {
		t.Errorf("time missing: %q", d.frame())
	}
	if !d.contains("Sat 07 Mar 2026") {
		t.Errorf("date missing: %q", d.frame())
	}
}

func TestRenderIdentity(t *testing.T) {
	d := &frameDisplay{}
	rec := config.Record{HasData: true, WheelCircumferenceCm: 215, DeviceName: "Trusty", OperatorName: "Ada"}
	if err := RenderIdentity(d, rec); err != nil {
		t.Fatalf("RenderIdentity failed: %v", err)
	}
	for _, want := range []string{"Trusty", "rider Ada", "wheel 215 cm"} {
		if !d.contains(want) {
			t.Errorf("identity frame missing %q: %q", want, d.frame())
		}
	}
}

func TestRenderCountdownPhrasing(t *testing.T) {
	d := &frameDisplay{}
	if err := RenderCountdown(d, "eject card?", 1); err != nil {
		t.Fatalf("RenderCountdown failed: %v", err)
	}
	if !d.contains("1 second left") {
		t.Errorf("singular phrasing missing: %q", d.frame())
	}
	if d.contains("1 seconds") {
		t.Errorf("plural used for one second: %q", d.frame())
	}

	if err := RenderCountdown(d, "eject card?", 10); err != nil {
		t.Fatalf("RenderCountdown failed: %v", err)
	}
	if !d.contains("10 seconds left") {
		t.Errorf("plural phrasing missing: %q", d.frame())
	}
}

func TestFormatFixed1(t *testing.T) {
	testCases := []struct {
		in   float32
		want string
	}{
		{0, "0.0"},
		{0.04, "0.0"},
		{0.05, "0.1"},
		{9.96, "10.0"},
		{23.4, "23.4"},
		{-3, "0.0"},
	}
	for _, tc := range testCases {
		if got := formatFixed1(tc.in); got != tc.want {
			t.Errorf("formatFixed1(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
