package snapshot

import "github.com/JoshEngebretson/duktape/builtins"

// ObjectTable maps object ids to their position in the object list.
type ObjectTable struct {
	ids   []string
	index map[string]int
}

// NewObjectTable indexes objs in declaration order.
func NewObjectTable(objs []*builtins.Object) (*ObjectTable, error) {
	if len(objs) > MaxObjects {
		return nil, newError(ErrCapacity, "", "objects", "%d built-in objects, at most %d fit", len(objs), MaxObjects)
	}

	t := &ObjectTable{
		ids:   make([]string, len(objs)),
		index: make(map[string]int, len(objs)),
	}
	for i, o := range objs {
		if o.ID == "" {
			return nil, newError(ErrSchema, "", "objects", "object at index %d has no id", i)
		}
		if prev, ok := t.index[o.ID]; ok {
			return nil, newError(ErrSchema, o.ID, "", "duplicate object id (indices %d and %d)", prev, i)
		}
		t.index[o.ID] = i
		t.ids[i] = o.ID
	}
	return t, nil
}

// Lookup returns the index of the object with the given id.
func (t *ObjectTable) Lookup(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// IDs returns the object ids in index order.
func (t *ObjectTable) IDs() []string {
	return append([]string(nil), t.ids...)
}

// Len returns the number of objects.
func (t *ObjectTable) Len() int {
	return len(t.ids)
}
