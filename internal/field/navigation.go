package field

import "math"

const (
	coordScale = 600000.0

	lonLimit       = 180 * 600000
	lonUnavailable = 181 * 600000
	latLimit       = 90 * 600000
	latUnavailable = 91 * 600000

	sogUnavailable     = 1023
	cogUnavailable     = 3600
	headingUnavailable = 511

	rotUnavailable = -128
	rotFastTurn    = 127
	rotScale       = 4.733
)

// Longitude decodes a 28-bit signed longitude in 1/10000 minute.
func Longitude(raw int32) (*float64, error) {
	switch {
	case raw == lonUnavailable:
		return nil, nil
	case raw >= -lonLimit && raw <= lonLimit:
		return ptr(float64(raw) / coordScale), nil
	default:
		return nil, outOfRange("longitude", int64(raw))
	}
}

// Latitude decodes a 27-bit signed latitude in 1/10000 minute.
func Latitude(raw int32) (*float64, error) {
	switch {
	case raw == latUnavailable:
		return nil, nil
	case raw >= -latLimit && raw <= latLimit:
		return ptr(float64(raw) / coordScale), nil
	default:
		return nil, outOfRange("latitude", int64(raw))
	}
}

// SpeedOverGround decodes a 10-bit speed in 1/10 knot.
func SpeedOverGround(raw uint32) (*float64, error) {
	switch {
	case raw == sogUnavailable:
		return nil, nil
	case raw < sogUnavailable:
		return ptr(float64(raw) / 10), nil
	default:
		return nil, outOfRange("speed over ground", int64(raw))
	}
}

// CourseOverGround decodes a 12-bit course in 1/10 degree. Every code other
// than the sentinel passes through.
func CourseOverGround(raw uint32) *float64 {
	if raw == cogUnavailable {
		return nil
	}
	return ptr(float64(raw) / 10)
}

// Heading decodes a 9-bit true heading in degrees.
func Heading(raw uint32) (*uint16, error) {
	switch {
	case raw == headingUnavailable:
		return nil, nil
	case raw < 360:
		h := uint16(raw)
		return &h, nil
	default:
		return nil, outOfRange("heading", int64(raw))
	}
}

// Accuracy is the position fix accuracy flag.
type Accuracy uint8

const (
	Unaugmented Accuracy = iota
	DGPS
)

func (a Accuracy) String() string {
	switch a {
	case Unaugmented:
		return "unaugmented"
	case DGPS:
		return "dgps"
	default:
		return "unknown"
	}
}

// ParseAccuracy decodes the 1-bit position accuracy flag.
func ParseAccuracy(raw uint32) (Accuracy, error) {
	switch raw {
	case 0:
		return Unaugmented, nil
	case 1:
		return DGPS, nil
	default:
		return 0, outOfRange("position accuracy", int64(raw))
	}
}

// Bool decodes a 1-bit flag.
func Bool(name string, raw uint32) (bool, error) {
	switch raw {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, outOfRange(name, int64(raw))
	}
}

// Direction is the sense of a turn.
type Direction uint8

const (
	NoTurn Direction = iota
	Port
	Starboard
)

func (d Direction) String() string {
	switch d {
	case Port:
		return "port"
	case Starboard:
		return "starboard"
	default:
		return "none"
	}
}

// RateOfTurn holds the raw ROT indicator. Magnitude and direction are
// derived on demand.
type RateOfTurn struct {
	raw int8
}

// ParseRateOfTurn decodes an 8-bit signed rate of turn; -128 is "not
// available".
func ParseRateOfTurn(raw int8) *RateOfTurn {
	if raw == rotUnavailable {
		return nil
	}
	return &RateOfTurn{raw: raw}
}

// Raw returns the ROT indicator as transmitted.
func (r RateOfTurn) Raw() int8 { return r.raw }

// Rate returns degrees per minute. It is nil for ±127, which signal a turn
// faster than 5 degrees per 30 seconds with no rate available.
func (r RateOfTurn) Rate() *float64 {
	if r.raw == rotFastTurn || r.raw == -rotFastTurn {
		return nil
	}
	return ptr(math.Pow(float64(r.raw)/rotScale, 2))
}

// Direction returns the turn direction.
func (r RateOfTurn) Direction() Direction {
	switch {
	case r.raw > 0:
		return Starboard
	case r.raw < 0:
		return Port
	default:
		return NoTurn
	}
}

func ptr[T any](v T) *T {
	return &v
}
