package bitstream

import "fmt"

// Writer appends fields MSB first. The zero value is ready to use.
type Writer struct {
	data   []byte
	bitLen int
}

// WriteUint appends the low width bits of v.
func (w *Writer) WriteUint(v uint32, width int) error {
	if width < 0 || width > 32 {
		return fmt.Errorf("write %d bits: %w", width, ErrInvalidWidth)
	}
	for i := width - 1; i >= 0; i-- {
		if w.bitLen%8 == 0 {
			w.data = append(w.data, 0)
		}
		if (v>>uint(i))&1 != 0 {
			w.data[w.bitLen>>3] |= 0x80 >> uint(w.bitLen&7)
		}
		w.bitLen++
	}
	return nil
}

// WriteInt appends v as a width-bit two's complement value.
func (w *Writer) WriteInt(v int32, width int) error {
	return w.WriteUint(uint32(v), width)
}

// Truncate drops the last n bits written.
func (w *Writer) Truncate(n int) error {
	if n < 0 || n > w.bitLen {
		return fmt.Errorf("truncate %d of %d bits: %w", n, w.bitLen, ErrInsufficientBits)
	}
	w.bitLen -= n
	w.data = w.data[:(w.bitLen+7)/8]
	if rem := w.bitLen % 8; rem != 0 {
		w.data[len(w.data)-1] &= byte(0xFF << (8 - rem))
	}
	return nil
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int { return w.bitLen }

// Buffer returns an immutable snapshot of the written bits.
func (w *Writer) Buffer() Buffer {
	buf, err := NewBuffer(w.data, w.bitLen)
	if err != nil {
		// bitLen never exceeds the bytes written.
		panic(err)
	}
	return buf
}
