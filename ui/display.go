// Package ui holds the display-facing state machines: the page cycle,
// the guarded-action countdown and the page renderers. Everything here
// is pure state plus calls into the Display interface; no hardware.
package ui

// Display is the capability set the firmware needs from a screen. The
// RP2040 target backs it with an SSD1306; tests record the calls.
// The core never reads display state back.
type Display interface {
	// Clear resets the frame buffer.
	Clear()

	// SetCursor positions subsequent prints at the given text line.
	SetCursor(line uint8)

	// SetTextSize selects the glyph scale (1 = small, 2 = large).
	SetTextSize(size uint8)

	// Print writes one line of text at the cursor and advances it.
	Print(s string)

	// Commit pushes the frame buffer to the panel.
	Commit() error
}
