//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"velo/ui"
)

// oledDisplay adapts the 128x64 SSD1306 to ui.Display. Text size 1 is
// a four-line layout in the small font; size 2 uses the large font
// for the headline rows.
type oledDisplay struct {
	dev  ssd1306.Device
	line uint8
	size uint8
}

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	smallFont = &proggy.TinySZ8pt7b
	largeFont = &freemono.Bold9pt7b
)

func initDisplay() *oledDisplay {
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearBuffer()
	dev.ClearDisplay()
	return &oledDisplay{dev: dev, size: 1}
}

func (o *oledDisplay) Clear() {
	o.dev.ClearBuffer()
	o.line = 0
	o.size = 1
}

func (o *oledDisplay) SetCursor(line uint8) {
	o.line = line
}

func (o *oledDisplay) SetTextSize(size uint8) {
	o.size = size
}

func (o *oledDisplay) Print(s string) {
	font := smallFont
	lineHeight := int16(13)
	if o.size >= 2 {
		font = largeFont
		lineHeight = 20
	}
	y := int16(o.line)*lineHeight + lineHeight - 3
	tinyfont.WriteLine(&o.dev, font, 0, y, s, white)
	o.line++
}

func (o *oledDisplay) Commit() error {
	return o.dev.Display()
}
