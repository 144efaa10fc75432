package snapshot

import (
	"math"
	"testing"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/strtab"
	"github.com/stretchr/testify/require"
)

const allFeatures = builtins.SectionB | builtins.Browser

// tableFor interns every name objs need plus any extra values.
func tableFor(t *testing.T, objs []*builtins.Object, extra ...string) *strtab.Table {
	t.Helper()
	tab, err := strtab.New(builtins.Strings(objs))
	require.NoError(t, err)
	return tab.Extend(extra)
}

// plainObject is a minimal non-function object.
func plainObject(id string, values ...builtins.Property) *builtins.Object {
	return &builtins.Object{ID: id, Class: builtins.ClassObject, Values: values}
}

// doubleBits makes doubles comparable when they are NaN.
type doubleBits uint64

type canonProp struct {
	Name  string
	Attrs builtins.Attrs
	Value any
}

type canonObject struct {
	ID, Class                string
	Length                   int
	Native, Name             string
	Args                     builtins.ArgMode
	Nargs                    int
	Constructable            bool
	Internal, External, Ctor string
	Values                   []canonProp
	Functions                []builtins.Method
}

// canon reduces an object to what the format preserves, after filtering by
// features.
func canon(o *builtins.Object, features builtins.Feature) canonObject {
	c := canonObject{
		ID:            o.ID,
		Class:         o.Class.String(),
		Length:        -1,
		Native:        o.Native,
		Name:          o.Name,
		Args:          o.Args,
		Constructable: o.Constructable,
		Internal:      o.InternalPrototype,
		External:      o.ExternalPrototype,
		Ctor:          o.ExternalConstructor,
	}
	if o.Length != nil {
		c.Length = *o.Length
	}
	if o.Args == builtins.ArgsExplicit {
		c.Nargs = o.Nargs
	}
	for _, p := range o.Values {
		if !p.Features.Enabled(features) {
			continue
		}
		v := any(p.Value)
		if d, ok := p.Value.(builtins.Double); ok {
			v = doubleBits(math.Float64bits(float64(d)))
		}
		c.Values = append(c.Values, canonProp{Name: p.Name, Attrs: p.EffectiveAttrs(), Value: v})
	}
	for _, m := range o.Functions {
		if !m.Features.Enabled(features) {
			continue
		}
		m.Features = 0
		if m.Args != builtins.ArgsExplicit {
			m.Nargs = 0
		}
		c.Functions = append(c.Functions, m)
	}
	return c
}

func canonList(objs []*builtins.Object, features builtins.Feature) []canonObject {
	out := make([]canonObject, len(objs))
	for i, o := range objs {
		out[i] = canon(o, features)
	}
	return out
}

func encode(t *testing.T, objs []*builtins.Object, strs strtab.Lookup, opts Options) *Snapshot {
	t.Helper()
	enc, err := NewEncoder(objs, strs)
	require.NoError(t, err)
	snap, err := enc.Encode(opts)
	require.NoError(t, err)
	return snap
}

func encodeErr(objs []*builtins.Object, strs strtab.Lookup, opts Options) error {
	enc, err := NewEncoder(objs, strs)
	if err != nil {
		return err
	}
	_, err = enc.Encode(opts)
	return err
}

func newTable(strs ...string) (*strtab.Table, error) {
	return strtab.New(strs)
}
