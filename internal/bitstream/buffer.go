package bitstream

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientBits is returned when a read runs past the end of the buffer.
	ErrInsufficientBits = errors.New("insufficient bits remaining")
	// ErrInvalidWidth is returned for a field width outside 0-32 bits.
	ErrInvalidWidth = errors.New("invalid field width")
)

// Buffer is an immutable, MSB-first bit sequence. Bits past Len in the final
// byte are always zero.
type Buffer struct {
	data   []byte
	bitLen int
}

// NewBuffer wraps data as a buffer holding exactly bitLen bits. The slice is
// copied and any bits beyond bitLen are cleared.
func NewBuffer(data []byte, bitLen int) (Buffer, error) {
	if bitLen < 0 || bitLen > len(data)*8 {
		return Buffer{}, fmt.Errorf("bit length %d does not fit %d bytes", bitLen, len(data))
	}
	buf := make([]byte, (bitLen+7)/8)
	copy(buf, data)
	if rem := bitLen % 8; rem != 0 {
		buf[len(buf)-1] &= byte(0xFF << (8 - rem))
	}
	return Buffer{data: buf, bitLen: bitLen}, nil
}

// Len returns the number of valid bits.
func (b Buffer) Len() int { return b.bitLen }

// Bytes returns a copy of the packed bytes, final byte zero-padded.
func (b Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Cursor opens a new cursor positioned at the first bit.
func (b Buffer) Cursor() *Cursor {
	return &Cursor{buf: b}
}

// String renders the bits grouped by byte, for debugging.
func (b Buffer) String() string {
	out := make([]byte, 0, b.bitLen+b.bitLen/8)
	for i := 0; i < b.bitLen; i++ {
		if i > 0 && i%8 == 0 {
			out = append(out, ' ')
		}
		out = append(out, '0'+b.bit(i))
	}
	return string(out)
}

func (b Buffer) bit(i int) byte {
	return (b.data[i>>3] >> (7 - uint(i&7))) & 1
}
