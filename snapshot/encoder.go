package snapshot

import (
	"github.com/JoshEngebretson/duktape/bitstream"
	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/strtab"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("genbuiltins.snapshot")

// Options selects what one encoding run produces.
type Options struct {
	Order    ByteOrder
	Features builtins.Feature
}

// Stats counts what a run emitted.
type Stats struct {
	Objects       int `cbor:"1,keyasint"`
	NormalProps   int `cbor:"2,keyasint"`
	FunctionProps int `cbor:"3,keyasint"`
	Interned      int `cbor:"4,keyasint"` // string values written by index
	Verbatim      int `cbor:"5,keyasint"` // string values written inline
	Bytes         int `cbor:"6,keyasint"`
}

// Snapshot is the init data for one byte order plus the tables needed to
// interpret it.
type Snapshot struct {
	Order    ByteOrder
	Features builtins.Feature
	Data     []byte
	Objects  []string // object ids in index order
	Natives  []string // native function names in index order
	Stats    Stats
}

// ---------------------------------------------------------------------------
// Encoder
// ---------------------------------------------------------------------------

// Encoder holds the index tables for one object list. It can encode the
// list any number of times with different options.
type Encoder struct {
	objs    []*builtins.Object
	index   *ObjectTable
	natives *NativeTable
	strs    stringRefs
}

// NewEncoder indexes objs and their natives. The list must not be modified
// while the encoder is in use.
func NewEncoder(objs []*builtins.Object, strs strtab.Lookup) (*Encoder, error) {
	if strs == nil {
		return nil, newError(ErrMissing, "", "strings", "no string table")
	}
	index, err := NewObjectTable(objs)
	if err != nil {
		return nil, err
	}
	natives, err := CollectNatives(objs)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		objs:    objs,
		index:   index,
		natives: natives,
		strs:    stringRefs{tab: strs},
	}, nil
}

// Objects returns the object index table.
func (e *Encoder) Objects() *ObjectTable {
	return e.index
}

// Natives returns the native function table.
func (e *Encoder) Natives() *NativeTable {
	return e.natives
}

// Encode validates the object list and writes both passes.
func (e *Encoder) Encode(opts Options) (*Snapshot, error) {
	if !opts.Order.Valid() {
		return nil, newError(ErrMissing, "", "byte order", "unrecognized byte order %d", opts.Order)
	}
	if err := e.validate(opts.Features); err != nil {
		return nil, err
	}

	r := &run{Encoder: e, opts: opts, w: bitstream.NewWriter()}
	for _, o := range e.objs {
		r.creation(o)
	}
	for _, o := range e.objs {
		r.properties(o)
	}
	if r.err != nil {
		return nil, r.err
	}

	data := r.w.Finish()
	r.stats.Bytes = len(data)
	log.Infof("%s: %d bytes of built-in init data, %d built-in objects, %d normal props, %d func props",
		opts.Order, r.stats.Bytes, r.stats.Objects, r.stats.NormalProps, r.stats.FunctionProps)

	return &Snapshot{
		Order:    opts.Order,
		Features: opts.Features,
		Data:     data,
		Objects:  e.index.IDs(),
		Natives:  e.natives.Names(),
		Stats:    r.stats,
	}, nil
}

// ---------------------------------------------------------------------------
// run: one pass pair over the object list
// ---------------------------------------------------------------------------

// run carries the writer and the first error. Once err is set every write
// is a no-op.
type run struct {
	*Encoder
	opts  Options
	w     *bitstream.Writer
	stats Stats
	err   error
	obj   string // id of the object being written
}

func (r *run) bits(v int, width uint, field string) {
	if r.err != nil {
		return
	}
	if v < 0 {
		r.err = newError(ErrCapacity, r.obj, field, "negative value %d", v)
		return
	}
	if err := r.w.WriteBits(uint32(v), width); err != nil {
		r.err = newError(ErrCapacity, r.obj, field, "%v", err)
	}
}

func (r *run) flag(set bool, field string) {
	if set {
		r.bits(1, 1, field)
	} else {
		r.bits(0, 1, field)
	}
}

func (r *run) raw(p []byte, field string) {
	if r.err != nil {
		return
	}
	if err := r.w.WriteBytes(p); err != nil {
		r.err = newError(ErrCapacity, r.obj, field, "%v", err)
	}
}

func (r *run) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *run) stridx(name, field string) {
	i, err := r.strs.mustIndex(r.obj, field, name)
	if err != nil {
		r.fail(err)
		return
	}
	r.bits(i, StridxBits, field)
}

func (r *run) natidx(name, field string) {
	i, ok := r.natives.Lookup(name)
	if !ok {
		r.fail(newError(ErrMissing, r.obj, field, "native %q is not registered", name))
		return
	}
	r.bits(i, NatidxBits, field)
}

// bidx writes an object index, or NoBidx for an empty id.
func (r *run) bidx(id, field string) {
	if id == "" {
		r.bits(NoBidx, BidxBits, field)
		return
	}
	i, ok := r.index.Lookup(id)
	if !ok {
		r.fail(newError(ErrUnresolved, r.obj, field, "no object %q", id))
		return
	}
	r.bits(i, BidxBits, field)
}

// nargs writes the flagged nargs field. A clear flag tells the decoder to
// use the length.
func (r *run) nargs(mode builtins.ArgMode, n int, field string) {
	switch mode {
	case builtins.ArgsVarargs:
		r.flag(true, field)
		r.bits(NargsVarargs, NargsBits, field)
	case builtins.ArgsExplicit:
		if n >= NargsVarargs {
			r.fail(newError(ErrCapacity, r.obj, field, "nargs %d collides with the varargs marker", n))
			return
		}
		r.flag(true, field)
		r.bits(n, NargsBits, field)
	default:
		r.flag(false, field)
	}
}

// ---------------------------------------------------------------------------
// Pass 1: creation data
// ---------------------------------------------------------------------------

func (r *run) creation(o *builtins.Object) {
	r.obj = o.ID
	r.bits(int(o.Class), ClassBits, "class")

	if o.Length != nil {
		r.flag(true, "length")
		r.bits(*o.Length, LengthPropBits, "length")
	} else {
		r.flag(false, "length")
	}

	if o.Class != builtins.ClassFunction {
		return
	}
	r.natidx(o.Native, "native")
	r.stridx(o.Name, "name")
	r.nargs(o.Args, o.Nargs, "nargs")

	// Function-classed built-ins are always callable; only the
	// constructable bit is stored.
	r.flag(o.Constructable, "constructable")
}

// ---------------------------------------------------------------------------
// Pass 2: properties
// ---------------------------------------------------------------------------

func (r *run) properties(o *builtins.Object) {
	r.obj = o.ID
	r.stats.Objects++

	r.bidx(o.InternalPrototype, "internal prototype")
	r.bidx(o.ExternalPrototype, "external prototype")
	r.bidx(o.ExternalConstructor, "external constructor")

	values := filterValues(o.Values, r.opts.Features)
	methods := filterMethods(o.Functions, r.opts.Features)

	r.bits(len(values), NumNormalPropsBits, "values")
	for i := range values {
		r.property(&values[i])
	}

	r.bits(len(methods), NumFuncPropsBits, "functions")
	for i := range methods {
		r.method(&methods[i])
	}
	log.Debugf("%s: %d values, %d functions, bit offset %d", o.ID, len(values), len(methods), r.w.BitLen())
}

func (r *run) property(p *builtins.Property) {
	field := valueField(p.Name)
	r.stats.NormalProps++
	r.stridx(p.Name, field)

	attrs := p.EffectiveAttrs()
	if attrs != builtins.DefaultAttrsFor(p.Name) {
		r.flag(true, field)
		r.bits(int(attrs), PropFlagsBits, field)
	} else {
		r.flag(false, field)
	}

	switch v := p.Value.(type) {
	case builtins.Bool:
		if v {
			r.bits(int(PropTrue), PropTypeBits, field)
		} else {
			r.bits(int(PropFalse), PropTypeBits, field)
		}
	case builtins.Undefined:
		r.bits(int(PropUndefined), PropTypeBits, field)
	case builtins.Double:
		r.bits(int(PropDouble), PropTypeBits, field)
		var buf [doubleSize]byte
		r.opts.Order.PutFloat64(buf[:], float64(v))
		r.raw(buf[:], field)
	case builtins.String:
		r.str(string(v), field)
	case builtins.ObjectRef:
		r.bits(int(PropBuiltin), PropTypeBits, field)
		r.bidx(string(v), field)
	case builtins.Accessor:
		r.bits(int(PropAccessor), PropTypeBits, field)
		r.natidx(v.Getter, field+" getter")
		r.natidx(v.Setter, field+" setter")
	default:
		r.fail(newError(ErrSchema, r.obj, field, "unsupported value type %T", p.Value))
	}
}

// str writes a string value, by index when the table holds it. The
// decoder relies on interned values never being written inline.
func (r *run) str(s, field string) {
	i, ok, err := r.strs.maybeIndex(r.obj, field, s)
	if err != nil {
		r.fail(err)
		return
	}
	if ok {
		r.stats.Interned++
		r.bits(int(PropStridx), PropTypeBits, field)
		r.bits(i, StridxBits, field)
		return
	}

	if err := checkVerbatim(r.obj, field, s); err != nil {
		r.fail(err)
		return
	}
	r.stats.Verbatim++
	r.bits(int(PropString), PropTypeBits, field)
	r.bits(len(s), StringLengthBits, field)
	for i := 0; i < len(s); i++ {
		r.bits(int(s[i]), StringCharBits, field)
	}
}

func (r *run) method(m *builtins.Method) {
	field := methodField(m.Name)
	r.stats.FunctionProps++
	r.stridx(m.Name, field)
	r.natidx(m.Native, field)
	r.bits(m.Length, LengthPropBits, field)
	r.nargs(m.Args, m.Nargs, field)
}
