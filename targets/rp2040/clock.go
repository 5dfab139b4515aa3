//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/ds3231"

	"velo/core"
)

// initClock reads the DS3231 once at boot and serves time from the
// monotonic system clock plus that fixed offset. The RTC is never
// read again while running: per-tick reads over a flaky bus would mix
// two timebases into the countdown second stream. Without a valid
// reading the clock page shows epoch-relative time but countdowns and
// debouncing still work.
func initClock() core.Clock {
	rtc := ds3231.New(machine.I2C0)
	rtc.Configure()

	if !rtc.IsTimeValid() {
		println("velo: rtc time invalid, using system clock")
		return core.SystemClock{}
	}
	ref, err := rtc.ReadTime()
	if err != nil {
		println("velo: rtc read failed, using system clock:", err.Error())
		return core.SystemClock{}
	}
	return core.NewOffsetClock(ref)
}
