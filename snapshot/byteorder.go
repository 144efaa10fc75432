package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ByteOrder is the in-memory layout of a double on the target.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
	// MiddleEndian stores the two 32-bit halves of a double swapped, each
	// half little-endian (mixed-endian ARM FPA).
	MiddleEndian
)

var byteOrderNames = [...]string{"little", "big", "middle"}

// ByteOrders lists every byte order in the order the source file selects
// between them.
func ByteOrders() []ByteOrder {
	return []ByteOrder{LittleEndian, BigEndian, MiddleEndian}
}

// ParseByteOrder parses "little", "big" or "middle".
func ParseByteOrder(s string) (ByteOrder, error) {
	for i, name := range byteOrderNames {
		if s == name {
			return ByteOrder(i), nil
		}
	}
	return 0, newError(ErrMissing, "", "byte order", "unrecognized byte order %q", s)
}

func (o ByteOrder) String() string {
	if o.Valid() {
		return byteOrderNames[o]
	}
	return fmt.Sprintf("ByteOrder(%d)", uint8(o))
}

// Valid reports whether o is a known byte order.
func (o ByteOrder) Valid() bool {
	return int(o) < len(byteOrderNames)
}

// Define returns the feature define suffix selecting o, e.g. "DOUBLE_LE".
func (o ByteOrder) Define() string {
	switch o {
	case LittleEndian:
		return "DOUBLE_LE"
	case BigEndian:
		return "DOUBLE_BE"
	case MiddleEndian:
		return "DOUBLE_ME"
	}
	return ""
}

// PutFloat64 stores f into b[0:8] in this byte order.
func (o ByteOrder) PutFloat64(b []byte, f float64) {
	bits := math.Float64bits(f)
	switch o {
	case BigEndian:
		binary.BigEndian.PutUint64(b, bits)
	case MiddleEndian:
		binary.LittleEndian.PutUint32(b[0:4], uint32(bits>>32))
		binary.LittleEndian.PutUint32(b[4:8], uint32(bits))
	default:
		binary.LittleEndian.PutUint64(b, bits)
	}
}

// Float64 reads a double stored by PutFloat64.
func (o ByteOrder) Float64(b []byte) float64 {
	var bits uint64
	switch o {
	case BigEndian:
		bits = binary.BigEndian.Uint64(b)
	case MiddleEndian:
		bits = uint64(binary.LittleEndian.Uint32(b[0:4]))<<32 | uint64(binary.LittleEndian.Uint32(b[4:8]))
	default:
		bits = binary.LittleEndian.Uint64(b)
	}
	return math.Float64frombits(bits)
}
