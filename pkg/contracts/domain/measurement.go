package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MissingMarker is the literal the penguin datasets use for an absent value.
const MissingMarker = "NA"

// MeasurementState describes how a raw numeric cell was classified at load time.
type MeasurementState int

const (
	// MeasurementMissing marks a blank or "NA" cell
	MeasurementMissing MeasurementState = iota
	// MeasurementValid marks a cell that parsed as a float
	MeasurementValid
	// MeasurementMalformed marks a non-numeric, non-missing cell
	MeasurementMalformed
)

// String returns a readable name for the state
func (s MeasurementState) String() string {
	switch s {
	case MeasurementMissing:
		return "missing"
	case MeasurementValid:
		return "valid"
	case MeasurementMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("MeasurementState(%d)", int(s))
	}
}

// Measurement is a numeric field converted once at the parsing boundary.
// A malformed value keeps its parse error so it only fails the consumer
// that actually needs the number.
type Measurement struct {
	Raw   string
	value float64
	state MeasurementState
	err   error
}

// IsMissingValue reports whether a normalized raw cell is a missing marker.
func IsMissingValue(raw string) bool {
	return raw == "" || raw == MissingMarker
}

// ParseMeasurement classifies a normalized raw cell.
func ParseMeasurement(raw string) Measurement {
	if IsMissingValue(raw) {
		return Measurement{Raw: raw, state: MeasurementMissing}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Measurement{Raw: raw, state: MeasurementMalformed, err: err}
	}
	return Measurement{Raw: raw, value: v, state: MeasurementValid}
}

// NewMeasurement builds a valid measurement from a number
func NewMeasurement(v float64) Measurement {
	return Measurement{Raw: strconv.FormatFloat(v, 'f', -1, 64), value: v, state: MeasurementValid}
}

// MissingMeasurement returns a measurement in the missing state
func MissingMeasurement() Measurement {
	return Measurement{Raw: MissingMarker, state: MeasurementMissing}
}

// State returns the load-time classification
func (m Measurement) State() MeasurementState {
	return m.state
}

// IsMissing reports whether the cell was blank or "NA"
func (m Measurement) IsMissing() bool {
	return m.state == MeasurementMissing
}

// Float returns the parsed value. Malformed cells return the original
// strconv error; missing cells return an error as well, callers are
// expected to check IsMissing first.
func (m Measurement) Float() (float64, error) {
	switch m.state {
	case MeasurementValid:
		return m.value, nil
	case MeasurementMalformed:
		return 0, m.err
	default:
		return 0, fmt.Errorf("measurement is missing")
	}
}

// MarshalJSON encodes missing and malformed values as null
func (m Measurement) MarshalJSON() ([]byte, error) {
	if m.state != MeasurementValid {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}
