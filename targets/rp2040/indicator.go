//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"velo/core"
)

// ledIndicator maps the boot outcome onto a single WS2812 pixel:
// blue while initializing, orange when logging is unavailable, green
// when nominal.
type ledIndicator struct {
	dev ws2812.Device
}

func initIndicator() *ledIndicator {
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &ledIndicator{dev: ws2812.New(ledPin)}
}

func (l *ledIndicator) Set(state core.IndicatorState) {
	var c color.RGBA
	switch state {
	case core.IndicatorInitializing:
		c = color.RGBA{B: 64}
	case core.IndicatorDegraded:
		c = color.RGBA{R: 64, G: 24}
	case core.IndicatorNominal:
		c = color.RGBA{G: 64}
	}
	if err := l.dev.WriteColors([]color.RGBA{c}); err != nil {
		println("ws2812:", err.Error())
	}
}
