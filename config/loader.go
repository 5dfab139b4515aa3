package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RecordFile is the provisioning file name on the removable card.
const RecordFile = "info.txt"

var (
	// ErrNotFound means the card record could not be opened. There is
	// no recovery path at first boot; the caller halts.
	ErrNotFound = errors.New("card record not found")

	// ErrMalformedRecord means the card record did not contain three
	// parseable fields.
	ErrMalformedRecord = errors.New("malformed card record")
)

// Opener is the slice of the card filesystem the loader needs.
// tinyfs filesystems satisfy it via a thin adapter in the target.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// ParseRecord reads the three-field card record: wheel circumference
// in cm as a decimal integer, device name, operator name, separated by
// newlines. Content after the third field is ignored. A record with
// fewer than three fields is rejected rather than padded with empty
// strings.
func ParseRecord(r io.Reader) (Record, error) {
	var rec Record

	fields, err := splitFields(r)
	if err != nil {
		return rec, err
	}
	if len(fields) < 3 {
		return rec, fmt.Errorf("%w: got %d of 3 fields", ErrMalformedRecord, len(fields))
	}

	circ, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 8)
	if err != nil {
		return rec, fmt.Errorf("%w: bad circumference %q", ErrMalformedRecord, fields[0])
	}

	rec.WheelCircumferenceCm = uint8(circ)
	rec.DeviceName = strings.TrimRight(fields[1], "\r")
	rec.OperatorName = strings.TrimRight(fields[2], "\r")

	if err := rec.Validate(); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return rec, nil
}

// Load opens RecordFile on the card and parses it.
func Load(fsys Opener) (Record, error) {
	f, err := fsys.Open(RecordFile)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()
	return ParseRecord(f)
}

// splitFields collects up to three newline-delimited fields. The third
// field ends at the next newline or EOF; anything beyond is discarded.
func splitFields(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	fields := make([]string, 0, 3)
	var cur strings.Builder

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			// A trailing terminator on the last field is optional.
			if cur.Len() > 0 || len(fields) == 2 {
				fields = append(fields, cur.String())
			}
			return fields, nil
		}
		if err != nil {
			return nil, err
		}
		if b == '\n' {
			fields = append(fields, cur.String())
			cur.Reset()
			if len(fields) == 3 {
				return fields, nil
			}
			continue
		}
		cur.WriteByte(b)
	}
}
