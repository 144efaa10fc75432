// Package bitstream packs variable-width unsigned fields into a byte
// buffer, most significant bit first, and reads them back.
package bitstream

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest single field WriteBits and ReadBits accept.
const MaxWidth = 32

var (
	ErrOverflow  = errors.New("value does not fit field width")
	ErrBadWidth  = errors.New("invalid field width")
	ErrShortRead = errors.New("read past end of bitstream")
	ErrFinished  = errors.New("write after finish")
)

// ---------------------------------------------------------------------------
// Writer
// ---------------------------------------------------------------------------

// Writer is an append-only bit sink. Fields are accumulated MSB first and
// complete bytes are flushed to the output buffer as soon as they fill.
// The position never moves backwards.
type Writer struct {
	buf      []byte
	acc      uint64 // pending bits, right aligned
	pending  uint   // number of valid bits in acc (always < 8 between calls)
	bits     int    // total bits written
	finished bool
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits appends the low width bits of value. A value that needs more
// than width bits is rejected rather than truncated.
func (w *Writer) WriteBits(value uint32, width uint) error {
	if w.finished {
		return ErrFinished
	}
	if width == 0 || width > MaxWidth {
		return fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	if width < 32 && value>>width != 0 {
		return fmt.Errorf("%w: %d needs more than %d bits", ErrOverflow, value, width)
	}

	w.acc = w.acc<<width | uint64(value)
	w.pending += width
	w.bits += int(width)
	for w.pending >= 8 {
		w.pending -= 8
		w.buf = append(w.buf, byte(w.acc>>w.pending))
	}
	w.acc &= (1 << w.pending) - 1
	return nil
}

// WriteFlag appends a single bit.
func (w *Writer) WriteFlag(set bool) error {
	if set {
		return w.WriteBits(1, 1)
	}
	return w.WriteBits(0, 1)
}

// WriteBytes appends each byte of p as an 8-bit field. No alignment is
// performed: if the writer is mid-byte the bytes straddle byte boundaries,
// which is what a field-by-field reader expects.
func (w *Writer) WriteBytes(p []byte) error {
	for _, b := range p {
		if err := w.WriteBits(uint32(b), 8); err != nil {
			return err
		}
	}
	return nil
}

// BitLen returns the number of bits written so far.
func (w *Writer) BitLen() int {
	return w.bits
}

// Finish zero-pads the trailing partial byte and returns the encoded
// bytes. The writer accepts no further writes; calling Finish again
// returns the same bytes.
func (w *Writer) Finish() []byte {
	if !w.finished {
		if w.pending > 0 {
			w.buf = append(w.buf, byte(w.acc<<(8-w.pending)))
			w.acc, w.pending = 0, 0
		}
		w.finished = true
	}
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}
