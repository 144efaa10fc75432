package snapshot

import (
	"slices"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/strtab"
)

// Config describes a full build: one object list compiled for several
// byte orders.
type Config struct {
	Objects  []*builtins.Object
	Strings  strtab.Lookup
	Features builtins.Feature
	Orders   []ByteOrder // empty means ByteOrders()

	// BuildInfo, when set, is merged into the BuildTarget object before
	// each variant is encoded.
	BuildInfo   *builtins.BuildInfo
	BuildTarget string
	// TagByteOrder appends the byte order to the build string, which makes
	// the variants differ outside their doubles.
	TagByteOrder bool
}

// Build is the result of Compile.
type Build struct {
	Variants     []*Snapshot
	BuildInfo    *builtins.BuildInfo
	TagByteOrder bool
}

// Compile encodes cfg.Objects once per byte order. It fails on the first
// error and returns no partial build.
func Compile(cfg Config) (*Build, error) {
	orders := cfg.Orders
	if len(orders) == 0 {
		orders = ByteOrders()
	}
	for i, o := range orders {
		if !o.Valid() {
			return nil, newError(ErrMissing, "", "byte order", "unrecognized byte order %d", o)
		}
		if slices.Contains(orders[:i], o) {
			return nil, newError(ErrSchema, "", "byte order", "byte order %s requested twice", o)
		}
	}

	target := cfg.BuildTarget
	if target == "" {
		target = builtins.DukObjectID
	}

	b := &Build{BuildInfo: cfg.BuildInfo, TagByteOrder: cfg.TagByteOrder && cfg.BuildInfo != nil}
	for _, order := range orders {
		objs := cfg.Objects
		if cfg.BuildInfo != nil {
			tag := ""
			if cfg.TagByteOrder {
				tag = order.String()
			}
			merged, err := cfg.BuildInfo.Merge(objs, target, tag)
			if err != nil {
				return nil, newError(ErrUnresolved, target, "build info", "%v", err)
			}
			objs = merged
		}

		enc, err := NewEncoder(objs, cfg.Strings)
		if err != nil {
			return nil, err
		}
		snap, err := enc.Encode(Options{Order: order, Features: cfg.Features})
		if err != nil {
			return nil, err
		}
		if len(b.Variants) > 0 {
			first := b.Variants[0]
			if !slices.Equal(first.Natives, snap.Natives) || !slices.Equal(first.Objects, snap.Objects) {
				return nil, newError(ErrSchema, "", "variants", "%s and %s disagree on object or native tables", first.Order, order)
			}
		}
		b.Variants = append(b.Variants, snap)
	}
	return b, nil
}

// Variant returns the snapshot for order, or nil.
func (b *Build) Variant(order ByteOrder) *Snapshot {
	for _, v := range b.Variants {
		if v.Order == order {
			return v
		}
	}
	return nil
}

// Objects returns the object ids shared by every variant.
func (b *Build) Objects() []string {
	if len(b.Variants) == 0 {
		return nil
	}
	return b.Variants[0].Objects
}

// Natives returns the native function table shared by every variant.
func (b *Build) Natives() []string {
	if len(b.Variants) == 0 {
		return nil
	}
	return b.Variants[0].Natives
}
