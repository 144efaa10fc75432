package bitstream

import "fmt"

// Reader reads fields written by Writer, in the same order and widths.
type Reader struct {
	data []byte
	pos  int // bit offset
}

// NewReader creates a reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current bit offset.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bits, including trailing padding.
func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.pos
}

// ReadBits reads a width-bit unsigned field.
func (r *Reader) ReadBits(width uint) (uint32, error) {
	if width == 0 || width > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	if int(width) > r.Remaining() {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, have %d", ErrShortRead, width, r.pos, r.Remaining())
	}

	var v uint32
	for i := uint(0); i < width; i++ {
		b := r.data[r.pos>>3]
		bit := (b >> (7 - uint(r.pos&7))) & 1
		v = v<<1 | uint32(bit)
		r.pos++
	}
	return v, nil
}

// ReadFlag reads a single bit.
func (r *Reader) ReadFlag() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// ReadFlagged reads a presence bit and, when it is set, a width-bit value.
// def is returned when the presence bit is clear.
func (r *Reader) ReadFlagged(width uint, def int) (int, error) {
	set, err := r.ReadFlag()
	if err != nil || !set {
		return def, err
	}
	v, err := r.ReadBits(width)
	return int(v), err
}

// ReadBytes reads n consecutive 8-bit fields.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		v, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}
