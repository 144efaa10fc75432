package snapshot

import (
	"sort"

	"github.com/JoshEngebretson/duktape/builtins"
)

// ---------------------------------------------------------------------------
// NativeTable: native function name -> index
// ---------------------------------------------------------------------------

// NativeTable maps native function names to dense indices. Indices follow
// the sorted order of the name set, so they depend only on which natives
// exist and never on where in the object list they were found.
type NativeTable struct {
	names []string
	index map[string]int
}

// CollectNatives gathers every native referenced by objs: each object's own
// native, accessor getters and setters, and method natives. Feature flags
// are not applied; disabled entries keep their slots so the function table
// is the same for every configuration.
func CollectNatives(objs []*builtins.Object) (*NativeTable, error) {
	set := make(map[string]struct{})
	register := func(name string) {
		if name != "" {
			set[name] = struct{}{}
		}
	}

	for _, o := range objs {
		register(o.Native)
		for i := range o.Values {
			if acc, ok := o.Values[i].Value.(builtins.Accessor); ok {
				register(acc.Getter)
				register(acc.Setter)
			}
		}
		for i := range o.Functions {
			register(o.Functions[i].Native)
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > MaxNatives {
		return nil, newError(ErrCapacity, "", "natives", "%d distinct native functions, at most %d fit", len(names), MaxNatives)
	}

	t := &NativeTable{names: names, index: make(map[string]int, len(names))}
	for i, name := range names {
		t.index[name] = i
	}
	return t, nil
}

// Lookup returns the index of a native function.
func (t *NativeTable) Lookup(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Names returns the natives in index order.
func (t *NativeTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of natives.
func (t *NativeTable) Len() int {
	return len(t.names)
}
