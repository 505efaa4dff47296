package message

import (
	"fmt"
	"time"

	"gitlab.com/d21d3q/goais/internal/bitstream"
	"gitlab.com/d21d3q/goais/internal/codes"
	"gitlab.com/d21d3q/goais/internal/field"
	"gitlab.com/d21d3q/goais/internal/radio"
)

// BaseStationReport is a type 4 base station report or a type 11 UTC/date
// response; both share one layout.
type BaseStationReport struct {
	header Header

	Year      *uint16
	Month     *uint8
	Day       *uint8
	Hour      *uint8
	Minute    *uint8
	Second    *uint8
	Accuracy  field.Accuracy
	Longitude *float64
	Latitude  *float64
	Epfd      *codes.Epfd
	Raim      bool
	Radio     radio.Status
}

func (m *BaseStationReport) Name() string {
	if m.header.Type == 11 {
		return "UTC/Date Response"
	}
	return "Base Station Report"
}

func (m *BaseStationReport) Header() Header { return m.header }

// Timestamp assembles the reported UTC time. It reports false when a
// calendar field is absent or the date does not exist.
func (m *BaseStationReport) Timestamp() (time.Time, bool) {
	if m.Year == nil || m.Month == nil || m.Day == nil || m.Hour == nil || m.Minute == nil || m.Second == nil {
		return time.Time{}, false
	}
	ts := time.Date(int(*m.Year), time.Month(*m.Month), int(*m.Day), int(*m.Hour), int(*m.Minute), int(*m.Second), 0, time.UTC)
	if ts.Day() != int(*m.Day) || ts.Month() != time.Month(*m.Month) {
		return time.Time{}, false
	}
	return ts, true
}

func (m *BaseStationReport) Fields() map[string]any {
	fields := m.header.fields()
	setIf(fields, "year", m.Year)
	setIf(fields, "month", m.Month)
	setIf(fields, "day", m.Day)
	setIf(fields, "hour", m.Hour)
	setIf(fields, "minute", m.Minute)
	setIf(fields, "second", m.Second)
	if ts, ok := m.Timestamp(); ok {
		fields["timestamp"] = ts.Format(time.RFC3339)
	}
	fields["accuracy"] = m.Accuracy.String()
	setIf(fields, "lon", m.Longitude)
	setIf(fields, "lat", m.Latitude)
	if m.Epfd != nil {
		fields["epfd"] = m.Epfd.String()
	}
	fields["raim"] = m.Raim
	radioFields(fields, m.Radio)
	return fields
}

// BaseStationDecoder decodes message types 4 and 11.
type BaseStationDecoder struct{}

func (BaseStationDecoder) Name() string { return "base station report" }

// Parse implements Decoder.
func (d BaseStationDecoder) Parse(buf bitstream.Buffer) (Message, error) {
	name := d.Name()
	c := buf.Cursor()
	h, err := ParseHeader(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := expectType(name, h, 4, 11); err != nil {
		return nil, err
	}
	m := &BaseStationReport{header: h}

	raw, err := c.Uint(14)
	if err != nil {
		return nil, wrap(name, "year", err)
	}
	m.Year = field.Year(raw)

	calendar := []struct {
		name  string
		width int
		parse func(uint32) (*uint8, error)
		dst   **uint8
	}{
		{"month", 4, field.Month, &m.Month},
		{"day", 5, field.Day, &m.Day},
		{"hour", 5, field.Hour, &m.Hour},
		{"minute", 6, field.Minute, &m.Minute},
		{"second", 6, field.Second, &m.Second},
	}
	for _, f := range calendar {
		raw, err := c.Uint(f.width)
		if err != nil {
			return nil, wrap(name, f.name, err)
		}
		if *f.dst, err = f.parse(raw); err != nil {
			return nil, wrap(name, f.name, err)
		}
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
	if raw, err = c.Uint(4); err != nil {
		return nil, wrap(name, "epfd", err)
	}
	if m.Epfd, err = codes.ParseEpfd(raw); err != nil {
		return nil, wrap(name, "epfd", err)
	}
	if err = c.Skip(10); err != nil {
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

// readPosition reads the 28-bit longitude followed by the 27-bit latitude.
func readPosition(c *bitstream.Cursor) (lon, lat *float64, err error) {
	rawLon, err := c.Int(28)
	if err != nil {
		return nil, nil, fmt.Errorf("longitude: %w", err)
	}
	if lon, err = field.Longitude(rawLon); err != nil {
		return nil, nil, err
	}
	rawLat, err := c.Int(27)
	if err != nil {
		return nil, nil, fmt.Errorf("latitude: %w", err)
	}
	if lat, err = field.Latitude(rawLat); err != nil {
		return nil, nil, err
	}
	return lon, lat, nil
}

func radioFields(fields map[string]any, status radio.Status) {
	switch s := status.(type) {
	case radio.Sotdma:
		fields["radio"] = "sotdma"
		fields["sync_state"] = s.SyncState.String()
		fields["slot_timeout"] = s.SlotTimeout
		switch sub := s.SubMessage.(type) {
		case radio.SlotOffset:
			fields["slot_offset"] = uint16(sub)
		case radio.SlotNumber:
			fields["slot_number"] = uint16(sub)
		case radio.ReceivedStations:
			fields["received_stations"] = uint16(sub)
		case radio.UtcTime:
			fields["utc_hour"] = sub.Hour
			fields["utc_minute"] = sub.Minute
		}
	case radio.Itdma:
		fields["radio"] = "itdma"
		fields["sync_state"] = s.SyncState.String()
		fields["slot_increment"] = s.SlotIncrement
		fields["number_of_slots"] = s.NumberOfSlots
		fields["keep_flag"] = s.KeepFlag
	}
}
