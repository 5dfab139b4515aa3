// Package core ties the configuration store, the card loader and the
// display pages together into the single-threaded device controller.
// Everything runs from one Tick call per control-loop iteration; no
// goroutines, no locks.
package core

import (
	"time"

	"velo/config"
	"velo/store"
	"velo/ui"
)

// State is the top-level device state. Fatal and Halted are terminal;
// the run loop keeps ticking but nothing changes until power cycle.
type State uint8

const (
	// StateBootstrap checks the store presence flag and, on first
	// boot, pulls the record from the card.
	StateBootstrap State = iota

	// StateConfirm shows the loaded card record and waits for the
	// operator to commit it.
	StateConfirm

	// StateRunning is normal page navigation.
	StateRunning

	// StateHalted follows a completed eject; the card is safe to
	// remove and only a power cycle leaves this state.
	StateHalted

	// StateFatal is a failed bootstrap. The diagnostic stays on
	// screen; there is no retry.
	StateFatal
)

// Device owns all mutable device state and the injected peripherals.
type Device struct {
	store     *store.Store
	card      CardMedium // nil when the card did not mount
	display   ui.Display
	clock     Clock
	indicator Indicator
	button    Button
	debounce  *Debouncer

	state       State
	fatalReason string

	record  config.Record
	pending config.Record
	stats   ui.Stats

	pager *ui.Pager
	eject *ui.Countdown
	reset *ui.Countdown

	needRender bool
	lastShown  int64 // unix second of the last clock-page render
}

// NewDevice wires a device. card may be nil when the removable
// storage is absent or failed to mount; the device then boots
// degraded if the store already holds a record, or fatally if it
// does not.
func NewDevice(st *store.Store, card CardMedium, display ui.Display, clock Clock, indicator Indicator, button Button) *Device {
	d := &Device{
		store:      st,
		card:       card,
		display:    display,
		clock:      clock,
		indicator:  indicator,
		button:     button,
		debounce:   NewDebouncer(0),
		pager:      ui.NewPager(ui.PageCount),
		eject:      ui.NewCountdown(ui.EjectSeconds),
		reset:      ui.NewCountdown(ui.ResetSeconds),
		needRender: true,
	}
	indicator.Set(IndicatorInitializing)
	return d
}

// State returns the top-level state.
func (d *Device) State() State { return d.state }

// FatalReason returns the diagnostic text once in StateFatal.
func (d *Device) FatalReason() string { return d.fatalReason }

// Record returns the in-memory configuration record.
func (d *Device) Record() config.Record { return d.record }

// SetStats updates the ride values shown on the home page. The
// acquisition side calls this from the same control loop.
func (d *Device) SetStats(stats ui.Stats) {
	if stats != d.stats {
		d.stats = stats
		d.needRender = true
	}
}

// Tick runs one control-loop iteration: sample the button, advance
// whichever state machine is in control, and re-render if anything
// changed.
func (d *Device) Tick() {
	now := d.clock.Now()
	edge := d.debounce.Sample(d.button.Pressed(), now)

	switch d.state {
	case StateBootstrap:
		d.bootstrap()
	case StateConfirm:
		if edge {
			d.commitPending()
		}
	case StateRunning:
		d.running(now, edge)
	case StateHalted, StateFatal:
		// Terminal; the screen already shows the outcome.
		return
	}

	d.render(now)
}

// bootstrap is the one-shot first-run sequence. With a committed
// record in the store it resolves immediately; otherwise the card
// record is loaded and handed to the operator for confirmation.
func (d *Device) bootstrap() {
	rec, err := d.store.ReadRecord()
	if err != nil {
		d.fail("store read: " + err.Error())
		return
	}

	if rec.HasData {
		d.record = rec
		d.enterRunning()
		return
	}

	if d.card == nil {
		d.fail("insert card with " + config.RecordFile)
		return
	}

	loaded, err := config.Load(d.card)
	if err != nil {
		d.fail(err.Error())
		return
	}

	d.pending = loaded
	d.state = StateConfirm
	d.needRender = true
}

// commitPending persists the confirmed card record. A store write
// failure is fatal; the device never runs on unpersisted
// configuration.
func (d *Device) commitPending() {
	d.pending.HasData = true
	if err := d.store.WriteRecord(d.pending); err != nil {
		d.fail("store write: " + err.Error())
		return
	}
	d.record = d.pending
	d.pending = config.Record{}
	d.enterRunning()
}

func (d *Device) enterRunning() {
	d.state = StateRunning
	d.needRender = true
	if d.card != nil {
		d.indicator.Set(IndicatorNominal)
	} else {
		d.indicator.Set(IndicatorDegraded)
	}
}

// running handles page navigation and the two guarded countdowns.
// A press during a countdown cancels it and still advances the page,
// so cancel is just navigation.
func (d *Device) running(now time.Time, edge bool) {
	if edge {
		d.eject.Cancel()
		d.reset.Cancel()
		d.pager.Advance()
		switch d.pager.Page() {
		case ui.PageEject:
			d.eject.Start(now)
		case ui.PageReset:
			d.reset.Start(now)
		}
		d.needRender = true
		return
	}

	if d.eject.Active() {
		before := d.eject.Remaining()
		if d.eject.Tick(now) {
			d.fireEject()
			return
		}
		if d.eject.Remaining() != before {
			d.needRender = true
		}
	}
	if d.reset.Active() {
		before := d.reset.Remaining()
		if d.reset.Tick(now) {
			d.fireReset()
			return
		}
		if d.reset.Remaining() != before {
			d.needRender = true
		}
	}
}

// fireEject finalizes the card and halts. Irreversible within the
// session.
func (d *Device) fireEject() {
	if d.card != nil {
		// Best effort; the device halts either way and the screen
		// says so.
		if err := d.card.Sync(); err != nil {
			println("card sync:", err.Error())
		}
	}
	d.state = StateHalted
	d.needRender = true
}

// fireReset wipes the store and resumes navigation with a cleared
// record. The next power cycle re-runs bootstrap.
func (d *Device) fireReset() {
	if err := d.store.Wipe(); err != nil {
		d.fail("store wipe: " + err.Error())
		return
	}
	d.record = config.Record{}
	d.stats = ui.Stats{}
	d.pager.Reset()
	d.needRender = true
}

func (d *Device) fail(reason string) {
	d.state = StateFatal
	d.fatalReason = reason
	d.needRender = true
}

// render draws the current frame when something changed. The clock
// page additionally refreshes once per second.
func (d *Device) render(now time.Time) {
	if d.state == StateRunning && d.pager.Page() == ui.PageClock && now.Unix() != d.lastShown {
		d.needRender = true
	}
	if !d.needRender {
		return
	}
	d.needRender = false
	d.lastShown = now.Unix()

	var err error
	switch d.state {
	case StateConfirm:
		err = ui.RenderConfirm(d.display, d.pending)
	case StateFatal:
		err = ui.RenderFatal(d.display, d.fatalReason)
	case StateHalted:
		err = ui.RenderHalted(d.display)
	case StateRunning:
		switch page := d.pager.Page(); page {
		case ui.PageHome:
			err = ui.RenderHome(d.display, d.stats)
		case ui.PageClock:
			err = ui.RenderClock(d.display, now)
		case ui.PageIdentity:
			err = ui.RenderIdentity(d.display, d.record)
		case ui.PageEject:
			err = ui.RenderCountdown(d.display, "eject card?", d.eject.Remaining())
		case ui.PageReset:
			err = ui.RenderCountdown(d.display, "factory reset?", d.reset.Remaining())
		default:
			err = ui.RenderErrorPage(d.display, page)
		}
	}
	if err != nil {
		println("display:", err.Error())
	}
}
