package store

import (
	"errors"
	"io"
)

// MemBackend is an in-memory Backend. It backs tests and the host
// tool's dry runs, and counts flushes so commit ordering is checkable.
type MemBackend struct {
	buf     []byte
	flushes int
}

// NewMemBackend creates a zeroed backend of the given size.
func NewMemBackend(size int) *MemBackend {
	return &MemBackend{buf: make([]byte, size)}
}

func (m *MemBackend) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.buf)) {
		return 0, errors.New("read past end of region")
	}
	n := copy(p, m.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemBackend) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > int64(len(m.buf)) {
		return 0, errors.New("write past end of region")
	}
	return copy(m.buf[off:], p), nil
}

func (m *MemBackend) Flush() error {
	m.flushes++
	return nil
}

// Flushes returns how many times Flush has been called.
func (m *MemBackend) Flushes() int { return m.flushes }

// Bytes exposes the raw region for inspection in tests.
func (m *MemBackend) Bytes() []byte { return m.buf }
