// Package config holds the persistent device configuration and the
// parser for the removable-card record it is provisioned from.
package config

import "errors"

// Field size limits. Each string lives in a fixed EEPROM slot with a
// one-byte length prefix; these are the slot widths minus that byte.
const (
	MaxDeviceName   = 97
	MaxOperatorName = 97
)

var (
	ErrNameTooLong     = errors.New("device name exceeds store slot")
	ErrOperatorTooLong = errors.New("operator name exceeds store slot")
)

// Record is the device configuration held in RAM and mirrored in the
// non-volatile store.
type Record struct {
	// HasData is true once a valid record has been committed to the
	// store. While false the other fields are undefined and must not
	// be shown or persisted.
	HasData bool

	WheelCircumferenceCm uint8

	DeviceName   string
	OperatorName string
}

// Validate checks the string fields against the store slot widths.
// Callers must validate before committing; the store codec does not
// truncate.
func (r Record) Validate() error {
	if len(r.DeviceName) > MaxDeviceName {
		return ErrNameTooLong
	}
	if len(r.OperatorName) > MaxOperatorName {
		return ErrOperatorTooLong
	}
	return nil
}
