//go:build rp2040

package main

import (
	"machine"
	"time"

	"velo/core"
	"velo/store"
)

// Board wiring (Raspberry Pi Pico):
//
//	I2C0 SDA=GP4 SCL=GP5  - SSD1306 OLED, DS3231 RTC, AT24C32 EEPROM
//	SPI0 SCK=GP18 TX=GP19 RX=GP16 CS=GP17 - SD card
//	GP15 navigation button (to ground, internal pull-up)
//	GP22 WS2812 status LED
const (
	buttonPin = machine.GP15
	ledPin    = machine.GP22

	sdSCK = machine.GP18
	sdTX  = machine.GP19
	sdRX  = machine.GP16
	sdCS  = machine.GP17

	pollInterval = 10 * time.Millisecond
)

func main() {
	// Give USB CDC a moment to enumerate so early debug output
	// reaches the host console.
	time.Sleep(2 * time.Second)
	println("velo: boot")

	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		println("velo: i2c setup failed:", err.Error())
		return
	}

	display := initDisplay()
	indicator := initIndicator()
	clock := initClock()
	button := initButton()

	backend := initEEPROM()
	st, err := store.New(backend, store.DefaultLayout)
	if err != nil {
		// Static layout; only a bad integration change gets here.
		println("velo: store layout:", err.Error())
		return
	}

	card := initCard()
	if card == nil {
		println("velo: no card; logging unavailable")
	}

	dev := core.NewDevice(st, card, display, clock, indicator, button)

	for {
		dev.Tick()
		time.Sleep(pollInterval)
	}
}
