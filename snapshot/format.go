// Package snapshot compiles the built-in object list into the bit-packed
// init data the runtime decodes at startup.
//
// The data is two passes over the objects in index order. The creation
// pass carries what is needed to allocate each object (class, length and
// function binding); the properties pass carries links, values and methods,
// so a property may refer to an object declared later in the list.
package snapshot

// Field widths in bits. These must match the runtime decoder.
const (
	ClassBits          = 5
	BidxBits           = 6
	StridxBits         = 9
	NatidxBits         = 8
	NumNormalPropsBits = 6
	NumFuncPropsBits   = 6
	PropFlagsBits      = 3
	StringLengthBits   = 8
	StringCharBits     = 7
	LengthPropBits     = 3
	NargsBits          = 3
	PropTypeBits       = 3
)

const (
	// NargsVarargs in a nargs field marks a variadic function.
	NargsVarargs = 0x07
	// NoBidx in an object index field means "no object".
	NoBidx = 0x3f
)

// Capacities derived from the field widths.
const (
	MaxObjects        = NoBidx // NoBidx itself is reserved
	MaxNatives        = 1 << NatidxBits
	MaxStrings        = 1 << StridxBits
	MaxNormalProps    = 1<<NumNormalPropsBits - 1
	MaxFuncProps      = 1<<NumFuncPropsBits - 1
	MaxLength         = 1<<LengthPropBits - 1
	MaxExplicitNargs  = NargsVarargs - 1
	MaxVerbatimLength = 1<<StringLengthBits - 1
	MaxVerbatimChar   = 1<<StringCharBits - 1
	doubleSize        = 8
)

// PropType tags a property value in the properties pass.
type PropType uint8

const (
	PropDouble PropType = iota
	PropString
	PropStridx
	PropBuiltin
	PropUndefined
	PropTrue
	PropFalse
	PropAccessor
)

var propTypeNames = [...]string{
	"double", "string", "stridx", "builtin", "undefined", "true", "false", "accessor",
}

func (t PropType) String() string {
	if int(t) < len(propTypeNames) {
		return propTypeNames[t]
	}
	return "invalid"
}
