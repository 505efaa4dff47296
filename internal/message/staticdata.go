package message

import (
	"fmt"

	"gitlab.com/d21d3q/goais/internal/bitstream"
	"gitlab.com/d21d3q/goais/internal/codes"
)

// StaticDataReport is a type 24 message carrying either Part A or Part B.
type StaticDataReport struct {
	header Header
	Part   MessagePart
}

// MessagePart is implemented by PartA and PartB only.
type MessagePart interface {
	PartNumber() uint8
	isMessagePart()
}

// PartA carries the vessel name.
type PartA struct {
	VesselName string
}

// PartB carries vessel identity and dimensions. VendorID and ModelSerial
// are two readings of overlapping bits: some senders use the full vendor
// string, others a short vendor id followed by model and serial.
type PartB struct {
	ShipType             *codes.ShipType
	VendorID             string
	ModelSerial          string
	UnitModelCode        uint8
	SerialNumber         uint32
	Callsign             string
	DimensionToBow       uint16
	DimensionToStern     uint16
	DimensionToPort      uint16
	DimensionToStarboard uint16
}

func (PartA) PartNumber() uint8 { return 0 }
func (PartB) PartNumber() uint8 { return 1 }
func (PartA) isMessagePart()    {}
func (PartB) isMessagePart()    {}

func (m *StaticDataReport) Name() string   { return "Static Data Report" }
func (m *StaticDataReport) Header() Header { return m.header }

func (m *StaticDataReport) Fields() map[string]any {
	fields := m.header.fields()
	switch p := m.Part.(type) {
	case PartA:
		fields["part"] = "A"
		fields["vessel_name"] = p.VesselName
	case PartB:
		fields["part"] = "B"
		if p.ShipType != nil {
			fields["ship_type"] = p.ShipType.String()
		}
		fields["vendor_id"] = p.VendorID
		fields["model_serial"] = p.ModelSerial
		fields["unit_model_code"] = p.UnitModelCode
		fields["serial_number"] = p.SerialNumber
		fields["callsign"] = p.Callsign
		fields["to_bow"] = p.DimensionToBow
		fields["to_stern"] = p.DimensionToStern
		fields["to_port"] = p.DimensionToPort
		fields["to_starboard"] = p.DimensionToStarboard
	}
	return fields
}

// StaticDataDecoder decodes message type 24.
type StaticDataDecoder struct{}

func (StaticDataDecoder) Name() string { return "static data report" }

// Parse implements Decoder.
func (d StaticDataDecoder) Parse(buf bitstream.Buffer) (Message, error) {
	name := d.Name()
	c := buf.Cursor()
	h, err := ParseHeader(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := expectType(name, h, 24); err != nil {
		return nil, err
	}
	part, err := c.Uint(2)
	if err != nil {
		return nil, wrap(name, "part number", err)
	}
	m := &StaticDataReport{header: h}
	switch part {
	case 0:
		m.Part, err = parsePartA(c)
	case 1:
		m.Part, err = parsePartB(c)
	default:
		err = fmt.Errorf("part number %d: %w", part, ErrUnknownMessagePart)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

func parsePartA(c *bitstream.Cursor) (MessagePart, error) {
	vesselName, err := c.Text(120)
	if err != nil {
		return nil, fmt.Errorf("vessel name: %w", err)
	}
	// Some senders drop the trailing spare bits.
	if err := c.Skip(min(7, c.Remaining())); err != nil {
		return nil, fmt.Errorf("spare: %w", err)
	}
	return PartA{VesselName: vesselName}, nil
}

func parsePartB(c *bitstream.Cursor) (MessagePart, error) {
	var p PartB
	raw, err := c.Uint(8)
	if err != nil {
		return nil, fmt.Errorf("ship type: %w", err)
	}
	if p.ShipType, err = codes.ParseShipType(raw); err != nil {
		return nil, fmt.Errorf("ship type: %w", err)
	}
	if p.VendorID, err = c.Text(18); err != nil {
		return nil, fmt.Errorf("vendor id: %w", err)
	}
	if p.ModelSerial, err = c.Peek().Text(24); err != nil {
		return nil, fmt.Errorf("model serial: %w", err)
	}
	if raw, err = c.Uint(4); err != nil {
		return nil, fmt.Errorf("unit model code: %w", err)
	}
	p.UnitModelCode = uint8(raw)
	if p.SerialNumber, err = c.Uint(20); err != nil {
		return nil, fmt.Errorf("serial number: %w", err)
	}
	if p.Callsign, err = c.Text(42); err != nil {
		return nil, fmt.Errorf("callsign: %w", err)
	}
	dimensions := []struct {
		name  string
		width int
		dst   *uint16
	}{
		{"dimension to bow", 9, &p.DimensionToBow},
		{"dimension to stern", 9, &p.DimensionToStern},
		{"dimension to port", 6, &p.DimensionToPort},
		{"dimension to starboard", 6, &p.DimensionToStarboard},
	}
	for _, dim := range dimensions {
		raw, err := c.Uint(dim.width)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", dim.name, err)
		}
		*dim.dst = uint16(raw)
	}
	if err := c.Skip(6); err != nil {
		return nil, fmt.Errorf("spare: %w", err)
	}
	return p, nil
}
