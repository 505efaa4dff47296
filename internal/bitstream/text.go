package bitstream

import (
	"fmt"
	"strings"
)

// DecodeText reads width bits as 6-bit AIS characters. Trailing '@' padding
// and trailing blanks are removed.
func DecodeText(c *Cursor, width int) (string, error) {
	if width < 0 || width%6 != 0 {
		return "", fmt.Errorf("text field of %d bits: %w", width, ErrInvalidWidth)
	}
	if width > c.Remaining() {
		return "", fmt.Errorf("text field of %d bits at offset %d with %d left: %w", width, c.pos, c.Remaining(), ErrInsufficientBits)
	}
	var b strings.Builder
	b.Grow(width / 6)
	for i := 0; i < width/6; i++ {
		v, err := c.Uint(6)
		if err != nil {
			return "", err
		}
		b.WriteByte(SixBitChar(v))
	}
	return strings.TrimRight(b.String(), "@ "), nil
}

// Text is shorthand for DecodeText(c, width).
func (c *Cursor) Text(width int) (string, error) {
	return DecodeText(c, width)
}

// SixBitChar maps a 6-bit code to its printable character: 0-31 become
// '@'..'_', 32-63 become ' '..'?'.
func SixBitChar(v uint32) byte {
	v &= 0x3F
	if v < 32 {
		return byte('@' + v)
	}
	return byte(v)
}

// SixBitCode is the inverse of SixBitChar. Lowercase letters are folded to
// uppercase; characters outside the table fail.
func SixBitCode(ch byte) (uint32, error) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	switch {
	case ch >= '@' && ch <= '_':
		return uint32(ch - '@'), nil
	case ch >= ' ' && ch <= '?':
		return uint32(ch), nil
	default:
		return 0, fmt.Errorf("character %q has no 6-bit code", ch)
	}
}

// EncodeText appends s as a width-bit text field, padding with '@'.
func EncodeText(w *Writer, s string, width int) error {
	if width < 0 || width%6 != 0 {
		return fmt.Errorf("text field of %d bits: %w", width, ErrInvalidWidth)
	}
	n := width / 6
	if len(s) > n {
		return fmt.Errorf("text %q longer than %d characters", s, n)
	}
	for i := 0; i < n; i++ {
		var code uint32
		if i < len(s) {
			v, err := SixBitCode(s[i])
			if err != nil {
				return err
			}
			code = v
		}
		if err := w.WriteUint(code, 6); err != nil {
			return err
		}
	}
	return nil
}
