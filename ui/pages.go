package ui

import (
	"strconv"
	"time"

	"velo/config"
)

// Stats holds the ride values shown on the home page. They are
// written by the acquisition side and only read here.
type Stats struct {
	SpeedKmh   float32
	DistanceKm float32
}

// RenderHome shows current speed large and total distance beneath it.
func RenderHome(d Display, stats Stats) error {
	d.Clear()
	d.SetTextSize(2)
	d.SetCursor(0)
	d.Print(formatFixed1(stats.SpeedKmh) + " km/h")
	d.SetTextSize(1)
	d.SetCursor(3)
	d.Print("trip " + formatFixed1(stats.DistanceKm) + " km")
	return d.Commit()
}

// RenderClock shows the RTC time and date.
func RenderClock(d Display, now time.Time) error {
	d.Clear()
	d.SetTextSize(2)
	d.SetCursor(0)
	d.Print(now.Format("15:04:05"))
	d.SetTextSize(1)
	d.SetCursor(3)
	d.Print(now.Format("Mon 02 Jan 2006"))
	return d.Commit()
}

// RenderIdentity shows the committed configuration record.
func RenderIdentity(d Display, rec config.Record) error {
	d.Clear()
	d.SetTextSize(1)
	d.SetCursor(0)
	d.Print(rec.DeviceName)
	d.SetCursor(1)
	d.Print("rider " + rec.OperatorName)
	d.SetCursor(2)
	d.Print("wheel " + strconv.Itoa(int(rec.WheelCircumferenceCm)) + " cm")
	return d.Commit()
}

// RenderCountdown shows a guarded action prompt with the time left.
func RenderCountdown(d Display, title string, remaining int) error {
	d.Clear()
	d.SetTextSize(1)
	d.SetCursor(0)
	d.Print(title)
	d.SetCursor(2)
	d.Print(FormatRemaining(remaining) + " left")
	d.SetCursor(3)
	d.Print("press to cancel")
	return d.Commit()
}

// RenderConfirm shows the loaded card record for operator sign-off
// during bootstrap.
func RenderConfirm(d Display, rec config.Record) error {
	d.Clear()
	d.SetTextSize(1)
	d.SetCursor(0)
	d.Print("new setup found")
	d.SetCursor(1)
	d.Print(rec.DeviceName + " / " + rec.OperatorName)
	d.SetCursor(2)
	d.Print("wheel " + strconv.Itoa(int(rec.WheelCircumferenceCm)) + " cm")
	d.SetCursor(3)
	d.Print("press to save")
	return d.Commit()
}

// RenderFatal shows a persistent diagnostic. The device stays on this
// screen until power cycled.
func RenderFatal(d Display, reason string) error {
	d.Clear()
	d.SetTextSize(1)
	d.SetCursor(0)
	d.Print("setup failed")
	d.SetCursor(2)
	d.Print(reason)
	return d.Commit()
}

// RenderHalted shows the safe-to-remove screen after eject completes.
func RenderHalted(d Display) error {
	d.Clear()
	d.SetTextSize(1)
	d.SetCursor(1)
	d.Print("card ejected")
	d.SetCursor(2)
	d.Print("power off now")
	return d.Commit()
}

// RenderErrorPage is the defensive out-of-range page. It must never
// be reachable through normal navigation.
func RenderErrorPage(d Display, page PageID) error {
	d.Clear()
	d.SetTextSize(1)
	d.SetCursor(0)
	d.Print("page error")
	d.SetCursor(1)
	d.Print("id " + strconv.Itoa(int(page)))
	return d.Commit()
}

// formatFixed1 renders a non-negative value with one decimal place
// without pulling in float formatting.
func formatFixed1(v float32) string {
	if v < 0 {
		v = 0
	}
	tenths := int(v*10 + 0.5)
	return strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10)
}
