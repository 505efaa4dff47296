package field

const (
	maxYear           = 9999
	hourUnavailable   = 24
	minSecUnavailable = 60
)

// Year decodes a 14-bit UTC year. Zero and anything past 9999 are absent.
func Year(raw uint32) *uint16 {
	if raw == 0 || raw > maxYear {
		return nil
	}
	y := uint16(raw)
	return &y
}

// Month decodes a 4-bit month; 0 is absent.
func Month(raw uint32) (*uint8, error) {
	return bounded("month", raw, 1, 12, 0)
}

// Day decodes a 5-bit day of month; 0 is absent.
func Day(raw uint32) (*uint8, error) {
	return bounded("day", raw, 1, 31, 0)
}

// Hour decodes a 5-bit hour; 24 is absent.
func Hour(raw uint32) (*uint8, error) {
	return bounded("hour", raw, 0, 23, hourUnavailable)
}

// Minute decodes a 6-bit minute; 60 is absent.
func Minute(raw uint32) (*uint8, error) {
	return bounded("minute", raw, 0, 59, minSecUnavailable)
}

// Second decodes a 6-bit second; 60 is absent.
func Second(raw uint32) (*uint8, error) {
	return bounded("second", raw, 0, 59, minSecUnavailable)
}

func bounded(name string, raw, lo, hi, sentinel uint32) (*uint8, error) {
	switch {
	case raw == sentinel:
		return nil, nil
	case raw >= lo && raw <= hi:
		v := uint8(raw)
		return &v, nil
	default:
		return nil, outOfRange(name, int64(raw))
	}
}

// TimestampStatus qualifies the 6-bit position report timestamp.
type TimestampStatus uint8

const (
	TimestampValid TimestampStatus = iota
	TimestampUnavailable
	TimestampManualInput
	TimestampDeadReckoning
	TimestampInoperative
)

func (s TimestampStatus) String() string {
	switch s {
	case TimestampValid:
		return "valid"
	case TimestampUnavailable:
		return "not available"
	case TimestampManualInput:
		return "manual input"
	case TimestampDeadReckoning:
		return "dead reckoning"
	case TimestampInoperative:
		return "inoperative"
	default:
		return "unknown"
	}
}

// PositionTimestamp decodes the 6-bit UTC second of a position report.
// Codes 60-63 are status values and carry no second.
func PositionTimestamp(raw uint32) (*uint8, TimestampStatus, error) {
	switch raw {
	case 60:
		return nil, TimestampUnavailable, nil
	case 61:
		return nil, TimestampManualInput, nil
	case 62:
		return nil, TimestampDeadReckoning, nil
	case 63:
		return nil, TimestampInoperative, nil
	}
	if raw > 63 {
		return nil, 0, outOfRange("timestamp", int64(raw))
	}
	s := uint8(raw)
	return &s, TimestampValid, nil
}
