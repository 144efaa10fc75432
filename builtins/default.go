package builtins

import "math"

// Double constants used by the default object list, given by bit pattern
// so the encoded values do not depend on float parsing.
var (
	DblNaN              = math.Float64frombits(0x7ff8000000000000) // normalized NaN
	DblPositiveInfinity = math.Float64frombits(0x7ff0000000000000)
	DblNegativeInfinity = math.Float64frombits(0xfff0000000000000)
	DblMaxDouble        = math.Float64frombits(0x7fefffffffffffff)
	DblMinDouble        = math.Float64frombits(0x0000000000000001) // min subnormal
	DblE                = math.Float64frombits(0x4005bf0a8b145769)
	DblLn10             = math.Float64frombits(0x40026bb1bbb55516)
	DblLn2              = math.Float64frombits(0x3fe62e42fefa39ef)
	DblLog2E            = math.Float64frombits(0x3ff71547652b82fe)
	DblLog10E           = math.Float64frombits(0x3fdbcb7b1526e50e)
	DblPi               = math.Float64frombits(0x400921fb54442d18)
	DblSqrt1_2          = math.Float64frombits(0x3fe6a09e667f3bcd)
	DblSqrt2            = math.Float64frombits(0x3ff6a09e667f3bcd)
)

// DukObjectID is the object that receives build metadata by default.
const DukObjectID = "bi_duk"

// Default returns the canonical built-in object list in index order. Each
// call builds a fresh list.
func Default() []*Object {
	return []*Object{
		globalObject(),
		globalEnv(),
		objectConstructor(),
		objectPrototype(),
		functionConstructor(),
		functionPrototype(),
		arrayConstructor(),
		arrayPrototype(),
		stringConstructor(),
		stringPrototype(),
		booleanConstructor(),
		booleanPrototype(),
		numberConstructor(),
		numberPrototype(),
		dateConstructor(),
		datePrototype(),
		regexpConstructor(),
		regexpPrototype(),
		errorConstructor(),
		errorPrototype(),
		evalErrorConstructor(),
		evalErrorPrototype(),
		rangeErrorConstructor(),
		rangeErrorPrototype(),
		referenceErrorConstructor(),
		referenceErrorPrototype(),
		syntaxErrorConstructor(),
		syntaxErrorPrototype(),
		typeErrorConstructor(),
		typeErrorPrototype(),
		uriErrorConstructor(),
		uriErrorPrototype(),
		mathObject(),
		jsonObject(),
		typeErrorThrower(),
		dukObject(),
		threadConstructor(),
		threadPrototype(),
		bufferConstructor(),
		bufferPrototype(),
		pointerConstructor(),
		pointerPrototype(),
		doubleError(),
	}
}
