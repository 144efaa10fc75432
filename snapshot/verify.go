package snapshot

import (
	"crypto/sha256"
	"math"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/strtab"
)

// ---------------------------------------------------------------------------
// Verification: decode every variant and compare
// ---------------------------------------------------------------------------

// VariantCheck is the outcome of decoding one variant.
type VariantCheck struct {
	Order         ByteOrder
	Objects       int
	NormalProps   int
	FunctionProps int
	// Fingerprint is the SHA-256 of the decoded objects in canonical CBOR.
	// Doubles are hashed by bit pattern, so variants that decode to the
	// same objects share a fingerprint whatever their byte order.
	Fingerprint [32]byte
}

// Verify decodes every variant of b with strs, checks the decoded counts
// against the encoder stats, and checks that all variants decode to the
// same objects. Variants tagged with their byte order are exempt from the
// last check.
func (b *Build) Verify(strs strtab.Lookup) ([]VariantCheck, error) {
	checks := make([]VariantCheck, 0, len(b.Variants))
	for _, v := range b.Variants {
		objs, err := DecodeSnapshot(v, strs)
		if err != nil {
			return nil, err
		}
		c := VariantCheck{Order: v.Order, Objects: len(objs)}
		for _, o := range objs {
			c.NormalProps += len(o.Values)
			c.FunctionProps += len(o.Functions)
		}
		if c.Objects != v.Stats.Objects || c.NormalProps != v.Stats.NormalProps || c.FunctionProps != v.Stats.FunctionProps {
			return nil, newError(ErrCorrupt, "", v.Order.String(),
				"decoded %d objects, %d normal props, %d func props; encoded %d, %d, %d",
				c.Objects, c.NormalProps, c.FunctionProps,
				v.Stats.Objects, v.Stats.NormalProps, v.Stats.FunctionProps)
		}
		c.Fingerprint, err = fingerprint(objs)
		if err != nil {
			return nil, err
		}
		log.Debugf("%s: verified %d objects", v.Order, c.Objects)
		checks = append(checks, c)
	}

	if !b.TagByteOrder {
		for _, c := range checks[min(1, len(checks)):] {
			if c.Fingerprint != checks[0].Fingerprint {
				return nil, newError(ErrCorrupt, "", "variants", "%s and %s decode to different objects", checks[0].Order, c.Order)
			}
		}
	}
	return checks, nil
}

type fpObject struct {
	ID            string
	Class         int
	Prototypes    [3]string
	HasLength     bool
	Length        int
	Native        string
	Name          string
	Args          int
	Nargs         int
	Constructable bool
	Values        []fpValue
	Functions     []fpMethod
}

type fpValue struct {
	Name   string
	Attrs  int
	Kind   int
	Bits   uint64
	Str    string
	Setter string
}

type fpMethod struct {
	Name   string
	Native string
	Length int
	Args   int
	Nargs  int
}

func fingerprint(objs []*builtins.Object) ([32]byte, error) {
	fp := make([]fpObject, len(objs))
	for i, o := range objs {
		f := fpObject{
			ID:            o.ID,
			Class:         int(o.Class),
			Prototypes:    [3]string{o.InternalPrototype, o.ExternalPrototype, o.ExternalConstructor},
			Native:        o.Native,
			Name:          o.Name,
			Args:          int(o.Args),
			Nargs:         o.Nargs,
			Constructable: o.Constructable,
		}
		if o.Length != nil {
			f.HasLength = true
			f.Length = *o.Length
		}
		for j := range o.Values {
			f.Values = append(f.Values, fpValueOf(&o.Values[j]))
		}
		for _, m := range o.Functions {
			f.Functions = append(f.Functions, fpMethod{Name: m.Name, Native: m.Native, Length: m.Length, Args: int(m.Args), Nargs: m.Nargs})
		}
		fp[i] = f
	}
	data, err := cborEncMode.Marshal(fp)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

func fpValueOf(p *builtins.Property) fpValue {
	v := fpValue{Name: p.Name, Attrs: int(p.EffectiveAttrs())}
	switch x := p.Value.(type) {
	case builtins.Double:
		v.Kind, v.Bits = int(PropDouble), math.Float64bits(float64(x))
	case builtins.String:
		v.Kind, v.Str = int(PropString), string(x)
	case builtins.ObjectRef:
		v.Kind, v.Str = int(PropBuiltin), string(x)
	case builtins.Undefined:
		v.Kind = int(PropUndefined)
	case builtins.Bool:
		v.Kind = int(PropFalse)
		if x {
			v.Kind = int(PropTrue)
		}
	case builtins.Accessor:
		v.Kind, v.Str, v.Setter = int(PropAccessor), x.Getter, x.Setter
	}
	return v
}
