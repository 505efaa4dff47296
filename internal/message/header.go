package message

import (
	"fmt"

	"gitlab.com/d21d3q/goais/internal/bitstream"
)

// HeaderBits is the width of the common type, repeat and MMSI prefix.
const HeaderBits = 38

// Header is the prefix shared by every AIS message.
type Header struct {
	Type   uint8
	Repeat uint8
	MMSI   uint32
}

// ParseHeader reads the 6-bit type, 2-bit repeat indicator and 30-bit MMSI.
func ParseHeader(c *bitstream.Cursor) (Header, error) {
	msgType, err := c.Uint(6)
	if err != nil {
		return Header{}, fmt.Errorf("message type: %w", err)
	}
	repeat, err := c.Uint(2)
	if err != nil {
		return Header{}, fmt.Errorf("repeat indicator: %w", err)
	}
	mmsi, err := c.Uint(30)
	if err != nil {
		return Header{}, fmt.Errorf("mmsi: %w", err)
	}
	return Header{
		Type:   uint8(msgType),
		Repeat: uint8(repeat),
		MMSI:   mmsi,
	}, nil
}

// MMSIString returns the MMSI in its usual nine digit form.
func (h Header) MMSIString() string {
	return fmt.Sprintf("%09d", h.MMSI)
}

// PeekType returns the message type code without consuming the buffer.
func PeekType(buf bitstream.Buffer) (uint8, error) {
	v, err := buf.Cursor().Uint(6)
	if err != nil {
		return 0, fmt.Errorf("message type: %w", err)
	}
	return uint8(v), nil
}

func (h Header) fields() map[string]any {
	return map[string]any{
		"type":   h.Type,
		"repeat": h.Repeat,
		"mmsi":   h.MMSI,
	}
}
