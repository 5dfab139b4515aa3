//go:build rp2040

package main

import "machine"

// navButton reads the navigation switch. The pin idles high through
// the internal pull-up and the switch shorts it to ground, so pressed
// is the inverted level.
type navButton struct {
	pin machine.Pin
}

func initButton() *navButton {
	buttonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &navButton{pin: buttonPin}
}

func (b *navButton) Pressed() bool {
	return !b.pin.Get()
}
