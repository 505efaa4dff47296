package message

import (
	"fmt"

	"gitlab.com/d21d3q/goais/internal/bitstream"
	"gitlab.com/d21d3q/goais/internal/codes"
	"gitlab.com/d21d3q/goais/internal/field"
	"gitlab.com/d21d3q/goais/internal/radio"
)

// PositionReport is a Class A position report, message types 1, 2 and 3.
type PositionReport struct {
	header Header

	NavigationStatus *codes.NavigationStatus
	RateOfTurn       *field.RateOfTurn
	SpeedOverGround  *float64
	Accuracy         field.Accuracy
	Longitude        *float64
	Latitude         *float64
	CourseOverGround *float64
	Heading          *uint16
	Second           *uint8
	TimestampStatus  field.TimestampStatus
	Maneuver         *codes.Maneuver
	Raim             bool
	Radio            radio.Status
}

func (m *PositionReport) Name() string {
	switch m.header.Type {
	case 2:
		return "Position Report Class A (Assigned schedule)"
	case 3:
		return "Position Report Class A (Response to interrogation)"
	default:
		return "Position Report Class A"
	}
}

func (m *PositionReport) Header() Header { return m.header }

func (m *PositionReport) Fields() map[string]any {
	fields := m.header.fields()
	if m.NavigationStatus != nil {
		fields["status"] = m.NavigationStatus.String()
	}
	if m.RateOfTurn != nil {
		fields["turn_raw"] = m.RateOfTurn.Raw()
		setIf(fields, "turn", m.RateOfTurn.Rate())
		fields["turn_direction"] = m.RateOfTurn.Direction().String()
	}
	setIf(fields, "speed", m.SpeedOverGround)
	fields["accuracy"] = m.Accuracy.String()
	setIf(fields, "lon", m.Longitude)
	setIf(fields, "lat", m.Latitude)
	setIf(fields, "course", m.CourseOverGround)
	setIf(fields, "heading", m.Heading)
	setIf(fields, "second", m.Second)
	if m.TimestampStatus != field.TimestampValid {
		fields["timestamp_status"] = m.TimestampStatus.String()
	}
	if m.Maneuver != nil {
		fields["maneuver"] = m.Maneuver.String()
	}
	fields["raim"] = m.Raim
	radioFields(fields, m.Radio)
	return fields
}

// PositionDecoder decodes message types 1, 2 and 3.
type PositionDecoder struct{}

func (PositionDecoder) Name() string { return "position report" }

// Parse implements Decoder.
func (d PositionDecoder) Parse(buf bitstream.Buffer) (Message, error) {
	name := d.Name()
	c := buf.Cursor()
	h, err := ParseHeader(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := expectType(name, h, 1, 2, 3); err != nil {
		return nil, err
	}
	m := &PositionReport{header: h}

	raw, err := c.Uint(4)
	if err != nil {
		return nil, wrap(name, "navigation status", err)
	}
	if m.NavigationStatus, err = codes.ParseNavigationStatus(raw); err != nil {
		return nil, wrap(name, "navigation status", err)
	}
	rot, err := c.Int(8)
	if err != nil {
		return nil, wrap(name, "rate of turn", err)
	}
	m.RateOfTurn = field.ParseRateOfTurn(int8(rot))
	if raw, err = c.Uint(10); err != nil {
		return nil, wrap(name, "speed over ground", err)
	}
	if m.SpeedOverGround, err = field.SpeedOverGround(raw); err != nil {
		return nil, wrap(name, "speed over ground", err)
	}
	if raw, err = c.Uint(1); err != nil {
		return nil, wrap(name, "accuracy", err)
	}
	if m.Accuracy, err = field.ParseAccuracy(raw); err != nil {
		return nil, wrap(name, "accuracy", err)
	}
	if m.Longitude, m.Latitude, err = readPosition(c); err != nil {
		return nil, wrap(name, "position", err)
	}
	if raw, err = c.Uint(12); err != nil {
		return nil, wrap(name, "course over ground", err)
	}
	m.CourseOverGround = field.CourseOverGround(raw)
	if raw, err = c.Uint(9); err != nil {
		return nil, wrap(name, "heading", err)
	}
	if m.Heading, err = field.Heading(raw); err != nil {
		return nil, wrap(name, "heading", err)
	}
	if raw, err = c.Uint(6); err != nil {
		return nil, wrap(name, "timestamp", err)
	}
	if m.Second, m.TimestampStatus, err = field.PositionTimestamp(raw); err != nil {
		return nil, wrap(name, "timestamp", err)
	}
	if raw, err = c.Uint(2); err != nil {
		return nil, wrap(name, "maneuver", err)
	}
	if m.Maneuver, err = codes.ParseManeuver(raw); err != nil {
		return nil, wrap(name, "maneuver", err)
	}
	if err = c.Skip(3); err != nil {
		return nil, wrap(name, "spare", err)
	}
	if raw, err = c.Uint(1); err != nil {
		return nil, wrap(name, "raim", err)
	}
	if m.Raim, err = field.Bool("raim", raw); err != nil {
		return nil, wrap(name, "raim", err)
	}
	if m.Radio, err = radio.Parse(c, h.Type); err != nil {
		return nil, wrap(name, "radio status", err)
	}
	return m, nil
}
