package core

// IndicatorState is the three-color boot outcome signal.
type IndicatorState uint8

const (
	// IndicatorInitializing is shown from power-on until bootstrap
	// resolves.
	IndicatorInitializing IndicatorState = iota

	// IndicatorDegraded means the device is configured but the card
	// is absent, so ride logging is unavailable.
	IndicatorDegraded

	// IndicatorNominal means configuration and card are both good.
	IndicatorNominal
)

// Indicator drives the status LED. The RP2040 target maps the states
// onto a WS2812 pixel.
type Indicator interface {
	Set(state IndicatorState)
}

func (s IndicatorState) String() string {
	switch s {
	case IndicatorInitializing:
		return "initializing"
	case IndicatorDegraded:
		return "degraded"
	case IndicatorNominal:
		return "nominal"
	}
	return "unknown"
}
