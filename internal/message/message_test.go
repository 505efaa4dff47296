package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/goais/internal/armor"
	"gitlab.com/d21d3q/goais/internal/bitstream"
	"gitlab.com/d21d3q/goais/internal/codes"
	"gitlab.com/d21d3q/goais/internal/field"
	"gitlab.com/d21d3q/goais/internal/radio"
)

func unarmor(t *testing.T, payload string, fill int) bitstream.Buffer {
	t.Helper()
	buf, err := armor.Unarmor(payload, fill)
	require.NoError(t, err)
	return buf
}

type bitField struct {
	v     uint32
	width int
}

func build(t *testing.T, fields ...bitField) bitstream.Buffer {
	t.Helper()
	var w bitstream.Writer
	for _, f := range fields {
		require.NoError(t, w.WriteUint(f.v, f.width))
	}
	return w.Buffer()
}

func header(msgType, mmsi uint32) []bitField {
	return []bitField{{msgType, 6}, {0, 2}, {mmsi, 30}}
}

func TestParseHeaderAndPeekType(t *testing.T) {
	buf := unarmor(t, "403OtVAv7=i?;o?IaHE`4Iw020S:", 0)
	msgType, err := PeekType(buf)
	require.NoError(t, err)
	require.Equal(t, uint8(4), msgType)

	h, err := ParseHeader(buf.Cursor())
	require.NoError(t, err)
	require.Equal(t, Header{Type: 4, Repeat: 0, MMSI: 3669145}, h)
	require.Equal(t, "003669145", h.MMSIString())

	_, err = PeekType(build(t, bitField{1, 4}))
	require.ErrorIs(t, err, bitstream.ErrInsufficientBits)
}

func TestBaseStationReport(t *testing.T) {
	msg, err := BaseStationDecoder{}.Parse(unarmor(t, "403OtVAv7=i?;o?IaHE`4Iw020S:", 0))
	require.NoError(t, err)
	report, ok := msg.(*BaseStationReport)
	require.True(t, ok, "unexpected message %T", msg)

	require.Equal(t, "Base Station Report", report.Name())
	require.Equal(t, uint8(4), report.Header().Type)
	require.Equal(t, uint32(3669145), report.Header().MMSI)
	ts, ok := report.Timestamp()
	require.True(t, ok)
	require.Equal(t, time.Date(2017, 12, 27, 17, 15, 11, 0, time.UTC), ts)
	require.Equal(t, field.DGPS, report.Accuracy)
	require.NotNil(t, report.Longitude)
	require.InDelta(t, -122.464775, *report.Longitude, 1e-4)
	require.NotNil(t, report.Latitude)
	require.InDelta(t, 37.794308, *report.Latitude, 1e-4)
	require.Nil(t, report.Epfd)
	require.True(t, report.Raim)
	require.Equal(t, radio.Sotdma{
		SyncState:   radio.UtcDirect,
		SlotTimeout: 0,
		SubMessage:  radio.SlotOffset(2250),
	}, report.Radio)
}

func TestBaseStationReportSurveyed(t *testing.T) {
	msg, err := BaseStationDecoder{}.Parse(unarmor(t, "403OviQuMGCqWrRO9>E6fE700@GO", 0))
	require.NoError(t, err)
	report := msg.(*BaseStationReport)

	require.Equal(t, uint32(3669702), report.Header().MMSI)
	ts, ok := report.Timestamp()
	require.True(t, ok)
	require.Equal(t, time.Date(2007, 5, 14, 19, 57, 39, 0, time.UTC), ts)
	require.InDelta(t, -76.352362, *report.Longitude, 1e-4)
	require.InDelta(t, 36.883767, *report.Latitude, 1e-4)
	require.NotNil(t, report.Epfd)
	require.Equal(t, codes.Surveyed, *report.Epfd)
	require.False(t, report.Raim)
	require.Equal(t, radio.SlotNumber(1503), report.Radio.(radio.Sotdma).SubMessage)

	fields := report.Fields()
	require.Equal(t, "surveyed", fields["epfd"])
	require.Equal(t, "2007-05-14T19:57:39Z", fields["timestamp"])
	require.Equal(t, uint16(1503), fields["slot_number"])
}

func baseStation(t *testing.T, msgType, year, month, day, hour, minute, second uint32) bitstream.Buffer {
	t.Helper()
	fields := header(msgType, 2190047)
	fields = append(fields,
		bitField{year, 14}, bitField{month, 4}, bitField{day, 5},
		bitField{hour, 5}, bitField{minute, 6}, bitField{second, 6},
		bitField{0, 1},
		bitField{181 * 600000, 28}, bitField{91 * 600000, 27},
		bitField{1, 4}, bitField{0, 10}, bitField{0, 1},
		bitField{0, 19},
	)
	return build(t, fields...)
}

func TestBaseStationCalendarSentinels(t *testing.T) {
	msg, err := BaseStationDecoder{}.Parse(baseStation(t, 11, 0, 0, 0, 24, 60, 60))
	require.NoError(t, err)
	report := msg.(*BaseStationReport)
	require.Equal(t, "UTC/Date Response", report.Name())
	require.Nil(t, report.Year)
	require.Nil(t, report.Month)
	require.Nil(t, report.Day)
	require.Nil(t, report.Hour)
	require.Nil(t, report.Minute)
	require.Nil(t, report.Second)
	require.Nil(t, report.Longitude)
	require.Nil(t, report.Latitude)
	_, ok := report.Timestamp()
	require.False(t, ok)

	fields := report.Fields()
	require.NotContains(t, fields, "year")
	require.NotContains(t, fields, "lon")
	require.NotContains(t, fields, "timestamp")
	require.Equal(t, "GPS", fields["epfd"])
}

func TestBaseStationImpossibleDate(t *testing.T) {
	msg, err := BaseStationDecoder{}.Parse(baseStation(t, 4, 2021, 2, 30, 12, 0, 0))
	require.NoError(t, err)
	_, ok := msg.(*BaseStationReport).Timestamp()
	require.False(t, ok)
}

func TestBaseStationRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name                             string
		month, day, hour, minute, second uint32
		field                            string
	}{
		{"month", 13, 1, 0, 0, 0, "month"},
		{"hour", 1, 1, 25, 0, 0, "hour"},
		{"minute", 1, 1, 0, 61, 0, "minute"},
		{"second", 1, 1, 0, 0, 63, "second"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := BaseStationDecoder{}.Parse(baseStation(t, 4, 2020, tc.month, tc.day, tc.hour, tc.minute, tc.second))
			require.Nil(t, msg)
			require.ErrorIs(t, err, field.ErrOutOfRange)
			var fe *field.FieldError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, tc.field, fe.Field)
			require.Contains(t, err.Error(), "base station report: "+tc.field)
		})
	}
}

func TestBaseStationTruncated(t *testing.T) {
	full := unarmor(t, "403OtVAv7=i?;o?IaHE`4Iw020S:", 0)
	short, err := bitstream.NewBuffer(full.Bytes(), full.Len()-1)
	require.NoError(t, err)
	msg, err := BaseStationDecoder{}.Parse(short)
	require.Nil(t, msg)
	require.ErrorIs(t, err, bitstream.ErrInsufficientBits)
	require.Contains(t, err.Error(), "radio status")
}

func TestStaticDataReportPartA(t *testing.T) {
	msg, err := StaticDataDecoder{}.Parse(unarmor(t, "H6:lEgQL4r1<QDr0P4pN3KSKP00", 0))
	require.NoError(t, err)
	report := msg.(*StaticDataReport)
	require.Equal(t, "Static Data Report", report.Name())
	require.Equal(t, uint32(413996478), report.Header().MMSI)
	part, ok := report.Part.(PartA)
	require.True(t, ok, "expected part A, got %T", report.Part)
	require.Equal(t, "WAN SHUN HANG 6868", part.VesselName)
	require.Equal(t, uint8(0), part.PartNumber())
}

func TestStaticDataReportPartB(t *testing.T) {
	msg, err := StaticDataDecoder{}.Parse(unarmor(t, "H3mr@L4NC=D62?P<7nmpl00@8220", 0))
	require.NoError(t, err)
	report := msg.(*StaticDataReport)
	require.Equal(t, uint32(257855600), report.Header().MMSI)
	part, ok := report.Part.(PartB)
	require.True(t, ok, "expected part B, got %T", report.Part)
	require.NotNil(t, part.ShipType)
	require.Equal(t, codes.Fishing, *part.ShipType)
	require.Equal(t, "SMT", part.VendorID)
	require.Equal(t, "FBO", part.ModelSerial)
	require.Equal(t, uint8(1), part.UnitModelCode)
	require.Equal(t, uint32(533472), part.SerialNumber)
	require.Equal(t, "LG6584", part.Callsign)
	require.Equal(t, uint16(2), part.DimensionToBow)
	require.Equal(t, uint16(8), part.DimensionToStern)
	require.Equal(t, uint16(2), part.DimensionToPort)
	require.Equal(t, uint16(2), part.DimensionToStarboard)
}

func TestStaticDataReportPartBAuxiliary(t *testing.T) {
	msg, err := StaticDataDecoder{}.Parse(unarmor(t, "H>cfmI4UFC@0DAN00000000H3110", 0))
	require.NoError(t, err)
	report := msg.(*StaticDataReport)
	require.Equal(t, uint32(985380196), report.Header().MMSI)
	part := report.Part.(PartB)
	require.Equal(t, codes.PleasureCraft, *part.ShipType)
	require.Equal(t, "VSP", part.VendorID)
	require.Equal(t, "@TQ^", part.ModelSerial)
	require.Equal(t, uint8(0), part.UnitModelCode)
	require.Equal(t, uint32(83038), part.SerialNumber)
	require.Equal(t, "", part.Callsign)
	require.Equal(t, uint16(3), part.DimensionToBow)
	require.Equal(t, uint16(3), part.DimensionToStern)
	require.Equal(t, uint16(1), part.DimensionToPort)
	require.Equal(t, uint16(1), part.DimensionToStarboard)

	fields := report.Fields()
	require.Equal(t, "B", fields["part"])
	require.Equal(t, "pleasure craft", fields["ship_type"])
}

func partA(t *testing.T, name string, spare int) bitstream.Buffer {
	t.Helper()
	var w bitstream.Writer
	for _, f := range header(24, 211000001) {
		require.NoError(t, w.WriteUint(f.v, f.width))
	}
	require.NoError(t, w.WriteUint(0, 2))
	require.NoError(t, bitstream.EncodeText(&w, name, 120))
	require.NoError(t, w.WriteUint(0, spare))
	return w.Buffer()
}

func TestStaticDataReportSpareTolerance(t *testing.T) {
	var parts []MessagePart
	for _, spare := range []int{0, 3, 7, 8} {
		msg, err := StaticDataDecoder{}.Parse(partA(t, "NORDIC STAR", spare))
		require.NoError(t, err, "spare bits %d", spare)
		parts = append(parts, msg.(*StaticDataReport).Part)
	}
	for _, p := range parts[1:] {
		require.Equal(t, parts[0], p)
	}
	require.Equal(t, PartA{VesselName: "NORDIC STAR"}, parts[0])
}

func TestStaticDataReportPartBSpareIsStrict(t *testing.T) {
	full := unarmor(t, "H3mr@L4NC=D62?P<7nmpl00@8220", 0)
	short, err := bitstream.NewBuffer(full.Bytes(), full.Len()-6)
	require.NoError(t, err)
	msg, err := StaticDataDecoder{}.Parse(short)
	require.Nil(t, msg)
	require.ErrorIs(t, err, bitstream.ErrInsufficientBits)
	require.Contains(t, err.Error(), "spare")
}

func TestStaticDataReportUnknownPart(t *testing.T) {
	for _, part := range []uint32{2, 3} {
		fields := append(header(24, 211000001), bitField{part, 2}, bitField{0, 32}, bitField{0, 32}, bitField{0, 32}, bitField{0, 32})
		msg, err := StaticDataDecoder{}.Parse(build(t, fields...))
		require.Nil(t, msg)
		require.ErrorIs(t, err, ErrUnknownMessagePart)
	}
}

func TestStaticDataReportTruncatedName(t *testing.T) {
	fields := append(header(24, 211000001), bitField{0, 2}, bitField{0, 30})
	msg, err := StaticDataDecoder{}.Parse(build(t, fields...))
	require.Nil(t, msg)
	require.ErrorIs(t, err, bitstream.ErrInsufficientBits)
	require.Contains(t, err.Error(), "vessel name")
}

func TestDecoderRejectsForeignType(t *testing.T) {
	_, err := BaseStationDecoder{}.Parse(unarmor(t, "H6:lEgQL4r1<QDr0P4pN3KSKP00", 0))
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = StaticDataDecoder{}.Parse(unarmor(t, "403OtVAv7=i?;o?IaHE`4Iw020S:", 0))
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = PositionDecoder{}.Parse(unarmor(t, "403OtVAv7=i?;o?IaHE`4Iw020S:", 0))
	require.ErrorIs(t, err, ErrTypeMismatch)
}
