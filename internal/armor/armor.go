// Package armor converts between the AIS 6-bit ASCII payload armoring and
// packed bit buffers.
package armor

import (
	"errors"
	"fmt"

	"gitlab.com/d21d3q/goais/internal/bitstream"
)

var (
	// ErrInvalidCharacter is returned for bytes outside the armor alphabet.
	ErrInvalidCharacter = errors.New("invalid armor character")
	// ErrInvalidFillBits is returned for fill counts outside 0-5 or past the payload.
	ErrInvalidFillBits = errors.New("invalid fill bit count")
)

// MaxFillBits is the largest fill count a single armor character can carry.
const MaxFillBits = 5

// Unarmor decodes an armored payload, dropping fillBits bits from the end.
func Unarmor(text string, fillBits int) (bitstream.Buffer, error) {
	if fillBits < 0 || fillBits > MaxFillBits {
		return bitstream.Buffer{}, fmt.Errorf("%w: %d", ErrInvalidFillBits, fillBits)
	}
	if fillBits > len(text)*6 {
		return bitstream.Buffer{}, fmt.Errorf("%w: %d exceeds %d payload bits", ErrInvalidFillBits, fillBits, len(text)*6)
	}
	var w bitstream.Writer
	for i := 0; i < len(text); i++ {
		v, ok := Sextet(text[i])
		if !ok {
			return bitstream.Buffer{}, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, text[i], i)
		}
		if err := w.WriteUint(uint32(v), 6); err != nil {
			return bitstream.Buffer{}, err
		}
	}
	if err := w.Truncate(fillBits); err != nil {
		return bitstream.Buffer{}, err
	}
	return w.Buffer(), nil
}

// Armor encodes buf and returns the fill bit count needed to pad the final
// character.
func Armor(buf bitstream.Buffer) (string, int) {
	fill := (6 - buf.Len()%6) % 6
	out := make([]byte, 0, (buf.Len()+fill)/6)
	c := buf.Cursor()
	for c.Remaining() > 0 {
		width := 6
		if c.Remaining() < width {
			width = c.Remaining()
		}
		// width is 1-6 and never exceeds Remaining.
		v, err := c.Uint(width)
		if err != nil {
			panic(err)
		}
		v <<= uint(6 - width)
		out = append(out, Char(uint8(v)))
	}
	return string(out), fill
}

// Sextet maps an armor character to its 6-bit value.
func Sextet(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= 'W':
		return ch - '0', true
	case ch >= '`' && ch <= 'w':
		return ch - '`' + 40, true
	default:
		return 0, false
	}
}

// Char maps a 6-bit value to its armor character.
func Char(v uint8) byte {
	v &= 0x3F
	if v < 40 {
		return '0' + v
	}
	return '`' + v - 40
}
