package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"velo/config"
)

// Profile is the YAML provisioning description a fleet keeps in
// version control. It carries the same three fields the card record
// does, with the same limits.
type Profile struct {
	WheelCircumferenceCm int    `yaml:"wheel_circumference_cm"`
	DeviceName           string `yaml:"device_name"`
	OperatorName         string `yaml:"operator_name"`
}

// LoadProfile reads and validates a YAML profile, returning the
// record the device will end up with.
func LoadProfile(path string) (config.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Record{}, err
	}
	return parseProfile(data)
}

func parseProfile(data []byte) (config.Record, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return config.Record{}, fmt.Errorf("parse profile: %w", err)
	}
	if p.WheelCircumferenceCm < 0 || p.WheelCircumferenceCm > 255 {
		return config.Record{}, fmt.Errorf("wheel_circumference_cm %d out of range [0,255]", p.WheelCircumferenceCm)
	}

	rec := config.Record{
		WheelCircumferenceCm: uint8(p.WheelCircumferenceCm),
		DeviceName:           p.DeviceName,
		OperatorName:         p.OperatorName,
	}
	if err := rec.Validate(); err != nil {
		return config.Record{}, fmt.Errorf("profile: %w", err)
	}
	return rec, nil
}

// CardFileContent renders the record in the exact card format the
// firmware loader parses: three newline-terminated fields.
func CardFileContent(rec config.Record) string {
	return strconv.Itoa(int(rec.WheelCircumferenceCm)) + "\n" +
		rec.DeviceName + "\n" +
		rec.OperatorName + "\n"
}

// WriteCardFile writes info.txt into dir, typically a mounted SD
// card.
func WriteCardFile(rec config.Record, dir string) (string, error) {
	path := filepath.Join(dir, config.RecordFile)
	if err := os.WriteFile(path, []byte(CardFileContent(rec)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
