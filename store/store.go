// Package store implements the non-volatile configuration record
// codec over a byte-addressed backend. On hardware the backend is an
// I2C EEPROM (tinygo.org/x/drivers/at24cx); tests use a byte slice.
package store

import (
	"errors"
	"fmt"
	"io"

	"velo/config"
)

var (
	ErrFieldOverflow = errors.New("string exceeds reserved field slot")
	ErrBadLayout     = errors.New("invalid store layout")
	ErrShortIO       = errors.New("short backend transfer")
)

// Backend is the byte-addressed storage the store runs on. at24cx
// devices satisfy it directly. Backends that buffer writes also
// implement Flusher.
type Backend interface {
	io.ReaderAt
	io.WriterAt
}

// Flusher is an optional Backend extension for media that need an
// explicit commit before a write is durable.
type Flusher interface {
	Flush() error
}

// Field is one reserved byte range in the store region. Width covers
// the length prefix for string fields.
type Field struct {
	Name   string
	Offset int64
	Width  int
}

// Layout maps the record fields to fixed byte ranges.
type Layout struct {
	Flag     Field
	Circ     Field
	Device   Field
	Operator Field
	Size     int
}

// DefaultLayout matches the shipped 512-byte EEPROM region: flag and
// circumference in single bytes, two 98-byte string slots (one length
// byte plus up to 97 payload bytes each).
var DefaultLayout = Layout{
	Flag:     Field{Name: "flag", Offset: 0, Width: 1},
	Circ:     Field{Name: "circumference", Offset: 1, Width: 1},
	Device:   Field{Name: "device", Offset: 2, Width: config.MaxDeviceName + 1},
	Operator: Field{Name: "operator", Offset: 100, Width: config.MaxOperatorName + 1},
	Size:     512,
}

// Validate checks that the fields are ordered, in bounds and do not
// overlap. Run once at startup; the layout is static afterwards.
func (l Layout) Validate() error {
	fields := []Field{l.Flag, l.Circ, l.Device, l.Operator}
	var prevEnd int64
	for _, f := range fields {
		if f.Width < 1 {
			return fmt.Errorf("%w: field %s has width %d", ErrBadLayout, f.Name, f.Width)
		}
		if f.Offset < prevEnd {
			return fmt.Errorf("%w: field %s overlaps previous field", ErrBadLayout, f.Name)
		}
		prevEnd = f.Offset + int64(f.Width)
	}
	if prevEnd > int64(l.Size) {
		return fmt.Errorf("%w: fields exceed %d byte region", ErrBadLayout, l.Size)
	}
	return nil
}

// Store reads and writes configuration records on a Backend.
type Store struct {
	backend Backend
	layout  Layout
}

// New creates a store on the given backend. The layout is validated
// here so a bad integration fails at startup, not mid-write.
func New(backend Backend, layout Layout) (*Store, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Store{backend: backend, layout: layout}, nil
}

// ReadRecord reads the persisted record. An unset presence flag is the
// normal first-boot state and yields a zero record with no error.
func (s *Store) ReadRecord() (config.Record, error) {
	var rec config.Record

	flag, err := s.readByte(s.layout.Flag.Offset)
	if err != nil {
		return rec, fmt.Errorf("read presence flag: %w", err)
	}
	if flag == 0 {
		return rec, nil
	}

	circ, err := s.readByte(s.layout.Circ.Offset)
	if err != nil {
		return rec, fmt.Errorf("read circumference: %w", err)
	}
	device, err := s.readString(s.layout.Device)
	if err != nil {
		return rec, fmt.Errorf("read device name: %w", err)
	}
	operator, err := s.readString(s.layout.Operator)
	if err != nil {
		return rec, fmt.Errorf("read operator name: %w", err)
	}

	rec.HasData = true
	rec.WheelCircumferenceCm = circ
	rec.DeviceName = device
	rec.OperatorName = operator
	return rec, nil
}

// WriteRecord persists the record. String lengths are validated
// against the layout before any byte is written, and the presence
// flag goes last, so a failed or oversized write never leaves the
// flag set over a partial record.
func (s *Store) WriteRecord(rec config.Record) error {
	if len(rec.DeviceName) > s.layout.Device.Width-1 {
		return fmt.Errorf("%w: device name %d bytes, slot %d", ErrFieldOverflow, len(rec.DeviceName), s.layout.Device.Width-1)
	}
	if len(rec.OperatorName) > s.layout.Operator.Width-1 {
		return fmt.Errorf("%w: operator name %d bytes, slot %d", ErrFieldOverflow, len(rec.OperatorName), s.layout.Operator.Width-1)
	}

	if err := s.writeByte(s.layout.Circ.Offset, rec.WheelCircumferenceCm); err != nil {
		return fmt.Errorf("write circumference: %w", err)
	}
	if err := s.writeString(s.layout.Device, rec.DeviceName); err != nil {
		return fmt.Errorf("write device name: %w", err)
	}
	if err := s.writeString(s.layout.Operator, rec.OperatorName); err != nil {
		return fmt.Errorf("write operator name: %w", err)
	}
	if err := s.writeByte(s.layout.Flag.Offset, 1); err != nil {
		return fmt.Errorf("write presence flag: %w", err)
	}
	return s.flush()
}

// Wipe zeroes the whole reserved region, clearing the presence flag.
func (s *Store) Wipe() error {
	zeros := make([]byte, s.layout.Size)
	n, err := s.backend.WriteAt(zeros, 0)
	if err != nil {
		return fmt.Errorf("wipe: %w", err)
	}
	if n != len(zeros) {
		return fmt.Errorf("wipe: %w", ErrShortIO)
	}
	return s.flush()
}

func (s *Store) flush() error {
	if f, ok := s.backend.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (s *Store) readByte(off int64) (byte, error) {
	var b [1]byte
	if _, err := s.backend.ReadAt(b[:], off); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Store) writeByte(off int64, v byte) error {
	b := [1]byte{v}
	_, err := s.backend.WriteAt(b[:], off)
	return err
}

// writeString encodes one length byte followed by the raw payload.
// The caller has already checked the payload against the slot width.
func (s *Store) writeString(f Field, v string) error {
	buf := make([]byte, 1+len(v))
	buf[0] = byte(len(v))
	copy(buf[1:], v)
	n, err := s.backend.WriteAt(buf, f.Offset)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return ErrShortIO
	}
	return nil
}

// readString decodes a length-prefixed string. A length byte larger
// than the slot means the slot was corrupted or never written under
// this layout; it is reported rather than read past the slot.
func (s *Store) readString(f Field) (string, error) {
	n, err := s.readByte(f.Offset)
	if err != nil {
		return "", err
	}
	if int(n) > f.Width-1 {
		return "", fmt.Errorf("%w: length byte %d in %d byte slot", ErrFieldOverflow, n, f.Width-1)
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := s.backend.ReadAt(buf, f.Offset+1); err != nil {
		return "", err
	}
	return string(buf), nil
}
