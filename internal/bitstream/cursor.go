package bitstream

import "fmt"

// Cursor reads fields from a Buffer strictly left to right. A failed read
// leaves the position unchanged.
type Cursor struct {
	buf Buffer
	pos int
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() int { return c.buf.bitLen - c.pos }

// Offset returns the number of bits consumed so far.
func (c *Cursor) Offset() int { return c.pos }

// Peek returns an independent cursor at the current position. Reads on the
// copy do not move c.
func (c *Cursor) Peek() *Cursor {
	cp := *c
	return &cp
}

// Uint reads the next width bits as a big-endian unsigned integer.
func (c *Cursor) Uint(width int) (uint32, error) {
	if width < 0 || width > 32 {
		return 0, fmt.Errorf("read %d bits: %w", width, ErrInvalidWidth)
	}
	if width > c.Remaining() {
		return 0, fmt.Errorf("read %d bits at offset %d with %d left: %w", width, c.pos, c.Remaining(), ErrInsufficientBits)
	}
	var v uint32
	for i := 0; i < width; i++ {
		v = v<<1 | uint32(c.buf.bit(c.pos+i))
	}
	c.pos += width
	return v, nil
}

// Int reads the next width bits as a two's complement integer, sign-extended
// from bit width-1.
func (c *Cursor) Int(width int) (int32, error) {
	if width < 1 || width > 32 {
		return 0, fmt.Errorf("read %d signed bits: %w", width, ErrInvalidWidth)
	}
	v, err := c.Uint(width)
	if err != nil {
		return 0, err
	}
	shift := uint(32 - width)
	return int32(v<<shift) >> shift, nil
}

// Bool reads a single bit.
func (c *Cursor) Bool() (bool, error) {
	v, err := c.Uint(1)
	return v == 1, err
}

// Skip discards width bits.
func (c *Cursor) Skip(width int) error {
	if width < 0 {
		return fmt.Errorf("skip %d bits: %w", width, ErrInvalidWidth)
	}
	if width > c.Remaining() {
		return fmt.Errorf("skip %d bits at offset %d with %d left: %w", width, c.pos, c.Remaining(), ErrInsufficientBits)
	}
	c.pos += width
	return nil
}
