package config

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseRecord(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Record
	}{
		{
			name:  "all three fields with trailing newline",
			input: "30\nTrusty\nAda\n",
			want:  Record{WheelCircumferenceCm: 30, DeviceName: "Trusty", OperatorName: "Ada"},
		},
		{
			name:  "no trailing terminator",
			input: "215\nCommuter\nGrace",
			want:  Record{WheelCircumferenceCm: 215, DeviceName: "Commuter", OperatorName: "Grace"},
		},
		{
			name:  "content after third field ignored",
			input: "90\nTourer\nEdsger\nleftover junk\nmore",
			want:  Record{WheelCircumferenceCm: 90, DeviceName: "Tourer", OperatorName: "Edsger"},
		},
		{
			name:  "CRLF line endings",
			input: "42\r\nRoadie\r\nBarbara\r\n",
			want:  Record{WheelCircumferenceCm: 42, DeviceName: "Roadie", OperatorName: "Barbara"},
		},
		{
			name:  "boundary circumference values",
			input: "255\nMax\nOp\n",
			want:  Record{WheelCircumferenceCm: 255, DeviceName: "Max", OperatorName: "Op"},
		},
	}

	for _, tc := range testCases {
		got, err := ParseRecord(strings.NewReader(tc.input))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestParseRecordMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"circumference only", "30"},
		{"one separator", "30\nTrusty"},
		{"non-decimal circumference", "abc\nTrusty\nAda\n"},
		{"circumference out of range", "300\nTrusty\nAda\n"},
		{"negative circumference", "-5\nTrusty\nAda\n"},
		{"empty circumference line", "\nTrusty\nAda\n"},
		{"device name over slot width", "30\n" + strings.Repeat("x", MaxDeviceName+1) + "\nAda\n"},
	}

	for _, tc := range testCases {
		_, err := ParseRecord(strings.NewReader(tc.input))
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%s: expected ErrMalformedRecord, got %v", tc.name, err)
		}
	}
}

// fakeFS serves a single named file from memory.
type fakeFS struct {
	name    string
	content string
}

func (f *fakeFS) Open(name string) (io.ReadCloser, error) {
	if name != f.name {
		return nil, errors.New("no such file")
	}
	return io.NopCloser(strings.NewReader(f.content)), nil
}

func TestLoad(t *testing.T) {
	fsys := &fakeFS{name: RecordFile, content: "30\nTrusty\nAda\n"}
	rec, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Record{WheelCircumferenceCm: 30, DeviceName: "Trusty", OperatorName: "Ada"}
	if rec != want {
		t.Errorf("expected %+v, got %+v", want, rec)
	}
}

func TestLoadNotFound(t *testing.T) {
	fsys := &fakeFS{name: "other.txt"}
	_, err := Load(fsys)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	rec := Record{DeviceName: strings.Repeat("a", MaxDeviceName), OperatorName: strings.Repeat("b", MaxOperatorName)}
	if err := rec.Validate(); err != nil {
		t.Errorf("max-length names should validate, got %v", err)
	}

	rec.DeviceName += "a"
	if !errors.Is(rec.Validate(), ErrNameTooLong) {
		t.Errorf("expected ErrNameTooLong")
	}

	rec.DeviceName = "ok"
	rec.OperatorName += "b"
	if !errors.Is(rec.Validate(), ErrOperatorTooLong) {
		t.Errorf("expected ErrOperatorTooLong")
	}
}
