package core

import "io"

// CardMedium is the removable storage as the device core sees it:
// a place to read the provisioning record from and something to
// finalize before the operator pulls the card. A device whose card
// failed to mount runs with a nil CardMedium and a degraded
// indicator.
type CardMedium interface {
	// Open opens a named file on the card for reading.
	Open(name string) (io.ReadCloser, error)

	// Sync flushes pending card writes so removal is safe.
	Sync() error
}
