package snapshot

import (
	"fmt"

	"github.com/JoshEngebretson/duktape/bitstream"
	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/strtab"
)

// ---------------------------------------------------------------------------
// Decoder: reads init data back into object descriptors
// ---------------------------------------------------------------------------

// Decoder rebuilds the object list from init data, mirroring the runtime's
// bootstrap: all objects are created from the first pass before any
// property is read.
//
// The result differs from the encoder input only where the format carries
// no information: attribute sets equal to the default come back nil,
// feature flags are gone, filtered entries are absent, and non-extensible
// marks and length attribute overrides are not stored.
type Decoder struct {
	strs    strtab.Lookup
	objects []string
	natives []string
}

// NewDecoder creates a decoder for data produced with the given tables.
func NewDecoder(strs strtab.Lookup, objects, natives []string) *Decoder {
	return &Decoder{strs: strs, objects: objects, natives: natives}
}

// DecodeSnapshot decodes s with its own tables.
func DecodeSnapshot(s *Snapshot, strs strtab.Lookup) ([]*builtins.Object, error) {
	return NewDecoder(strs, s.Objects, s.Natives).Decode(s.Data, s.Order)
}

// Decode reads data laid out for order.
func (d *Decoder) Decode(data []byte, order ByteOrder) ([]*builtins.Object, error) {
	if !order.Valid() {
		return nil, newError(ErrMissing, "", "byte order", "unrecognized byte order %d", order)
	}
	dr := &decodeRun{Decoder: d, r: bitstream.NewReader(data), order: order}

	objs := make([]*builtins.Object, len(d.objects))
	for i, id := range d.objects {
		dr.obj = id
		o, err := dr.creation()
		if err != nil {
			return nil, err
		}
		o.ID = id
		objs[i] = o
	}
	for _, o := range objs {
		dr.obj = o.ID
		if err := dr.properties(o); err != nil {
			return nil, err
		}
	}

	if rem := dr.r.Remaining(); rem >= 8 {
		return nil, newError(ErrCorrupt, "", "", "%d trailing bits after the last object", rem)
	}
	return objs, nil
}

type decodeRun struct {
	*Decoder
	r     *bitstream.Reader
	order ByteOrder
	obj   string
}

func (dr *decodeRun) wrap(field string, err error) error {
	return &Error{Kind: ErrCorrupt, Object: dr.obj, Field: field, Detail: fmt.Sprintf("bit %d: %v", dr.r.Offset(), err)}
}

func (dr *decodeRun) bits(width uint, field string) (int, error) {
	v, err := dr.r.ReadBits(width)
	if err != nil {
		return 0, dr.wrap(field, err)
	}
	return int(v), nil
}

func (dr *decodeRun) flag(field string) (bool, error) {
	v, err := dr.bits(1, field)
	return v == 1, err
}

func (dr *decodeRun) str(field string) (string, error) {
	i, err := dr.bits(StridxBits, field)
	if err != nil {
		return "", err
	}
	s, ok := dr.strs.StringAt(i)
	if !ok {
		return "", newError(ErrCorrupt, dr.obj, field, "string index %d out of range", i)
	}
	return s, nil
}

func (dr *decodeRun) native(field string) (string, error) {
	i, err := dr.bits(NatidxBits, field)
	if err != nil {
		return "", err
	}
	if i >= len(dr.natives) {
		return "", newError(ErrCorrupt, dr.obj, field, "native index %d out of range", i)
	}
	return dr.natives[i], nil
}

// ref returns "" for NoBidx.
func (dr *decodeRun) ref(field string) (string, error) {
	i, err := dr.bits(BidxBits, field)
	if err != nil || i == NoBidx {
		return "", err
	}
	if i >= len(dr.objects) {
		return "", newError(ErrCorrupt, dr.obj, field, "object index %d out of range", i)
	}
	return dr.objects[i], nil
}

func (dr *decodeRun) nargs(field string) (builtins.ArgMode, int, error) {
	set, err := dr.flag(field)
	if err != nil || !set {
		return builtins.ArgsFromLength, 0, err
	}
	n, err := dr.bits(NargsBits, field)
	if err != nil {
		return 0, 0, err
	}
	if n == NargsVarargs {
		return builtins.ArgsVarargs, 0, nil
	}
	return builtins.ArgsExplicit, n, nil
}

func (dr *decodeRun) creation() (*builtins.Object, error) {
	o := &builtins.Object{}
	class, err := dr.bits(ClassBits, "class")
	if err != nil {
		return nil, err
	}
	o.Class = builtins.Class(class)
	if !o.Class.Valid() {
		return nil, newError(ErrCorrupt, dr.obj, "class", "unknown class %d", class)
	}

	hasLength, err := dr.flag("length")
	if err != nil {
		return nil, err
	}
	if hasLength {
		n, err := dr.bits(LengthPropBits, "length")
		if err != nil {
			return nil, err
		}
		o.Length = builtins.Len(n)
	}

	if o.Class != builtins.ClassFunction {
		return o, nil
	}
	if o.Native, err = dr.native("native"); err != nil {
		return nil, err
	}
	if o.Name, err = dr.str("name"); err != nil {
		return nil, err
	}
	if o.Args, o.Nargs, err = dr.nargs("nargs"); err != nil {
		return nil, err
	}
	if o.Constructable, err = dr.flag("constructable"); err != nil {
		return nil, err
	}
	return o, nil
}

func (dr *decodeRun) properties(o *builtins.Object) error {
	var err error
	if o.InternalPrototype, err = dr.ref("internal prototype"); err != nil {
		return err
	}
	if o.ExternalPrototype, err = dr.ref("external prototype"); err != nil {
		return err
	}
	if o.ExternalConstructor, err = dr.ref("external constructor"); err != nil {
		return err
	}

	n, err := dr.bits(NumNormalPropsBits, "values")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		p, err := dr.property()
		if err != nil {
			return err
		}
		o.Values = append(o.Values, p)
	}

	n, err = dr.bits(NumFuncPropsBits, "functions")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		m, err := dr.method()
		if err != nil {
			return err
		}
		o.Functions = append(o.Functions, m)
	}
	return nil
}

func (dr *decodeRun) property() (builtins.Property, error) {
	var p builtins.Property
	var err error
	if p.Name, err = dr.str("values"); err != nil {
		return p, err
	}
	field := valueField(p.Name)

	custom, err := dr.flag(field)
	if err != nil {
		return p, err
	}
	if custom {
		a, err := dr.bits(PropFlagsBits, field)
		if err != nil {
			return p, err
		}
		attrs := builtins.Attrs(a)
		p.Attrs = &attrs
	}

	t, err := dr.bits(PropTypeBits, field)
	if err != nil {
		return p, err
	}
	switch PropType(t) {
	case PropDouble:
		raw, err := dr.r.ReadBytes(doubleSize)
		if err != nil {
			return p, dr.wrap(field, err)
		}
		p.Value = builtins.Double(dr.order.Float64(raw))
	case PropString:
		n, err := dr.bits(StringLengthBits, field)
		if err != nil {
			return p, err
		}
		buf := make([]byte, n)
		for i := range buf {
			c, err := dr.bits(StringCharBits, field)
			if err != nil {
				return p, err
			}
			buf[i] = byte(c)
		}
		p.Value = builtins.String(buf)
	case PropStridx:
		s, err := dr.str(field)
		if err != nil {
			return p, err
		}
		p.Value = builtins.String(s)
	case PropBuiltin:
		id, err := dr.bits(BidxBits, field)
		if err != nil {
			return p, err
		}
		if id >= len(dr.objects) {
			return p, newError(ErrCorrupt, dr.obj, field, "object index %d out of range", id)
		}
		p.Value = builtins.ObjectRef(dr.objects[id])
	case PropUndefined:
		p.Value = builtins.Undefined{}
	case PropTrue:
		p.Value = builtins.Bool(true)
	case PropFalse:
		p.Value = builtins.Bool(false)
	case PropAccessor:
		var acc builtins.Accessor
		if acc.Getter, err = dr.native(field + " getter"); err != nil {
			return p, err
		}
		if acc.Setter, err = dr.native(field + " setter"); err != nil {
			return p, err
		}
		p.Value = acc
	}
	return p, nil
}

func (dr *decodeRun) method() (builtins.Method, error) {
	var m builtins.Method
	var err error
	if m.Name, err = dr.str("functions"); err != nil {
		return m, err
	}
	field := methodField(m.Name)
	if m.Native, err = dr.native(field); err != nil {
		return m, err
	}
	if m.Length, err = dr.bits(LengthPropBits, field); err != nil {
		return m, err
	}
	m.Args, m.Nargs, err = dr.nargs(field)
	return m, err
}
