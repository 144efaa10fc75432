package snapshot

import "github.com/JoshEngebretson/duktape/strtab"

// stringRefs resolves strings against the interning table. Names must be
// interned; values use the table only when it holds them.
type stringRefs struct {
	tab strtab.Lookup
}

// mustIndex returns the index of a name, which must be interned and fit a
// string index field.
func (s stringRefs) mustIndex(object, field, name string) (int, error) {
	i, ok := s.tab.IndexOf(name)
	if !ok {
		return 0, newError(ErrMissing, object, field, "string %q is not in the string table", name)
	}
	if i >= MaxStrings {
		return 0, newError(ErrCapacity, object, field, "string %q has index %d, at most %d fit", name, i, MaxStrings-1)
	}
	return i, nil
}

// maybeIndex returns the index of an interned value. ok is false when the
// value is not interned and must be written verbatim.
func (s stringRefs) maybeIndex(object, field, value string) (i int, ok bool, err error) {
	i, ok = s.tab.IndexOf(value)
	if !ok {
		return 0, false, nil
	}
	if i >= MaxStrings {
		return 0, false, newError(ErrCapacity, object, field, "string %q has index %d, at most %d fit", value, i, MaxStrings-1)
	}
	return i, true, nil
}

// checkVerbatim reports whether value can be written as a verbatim string.
func checkVerbatim(object, field, value string) error {
	if len(value) > MaxVerbatimLength {
		return newError(ErrCapacity, object, field, "verbatim string of %d bytes, at most %d fit", len(value), MaxVerbatimLength)
	}
	for i := 0; i < len(value); i++ {
		if value[i] > MaxVerbatimChar {
			return newError(ErrSchema, object, field, "byte 0x%02x at offset %d does not fit a %d-bit verbatim char; intern the string instead", value[i], i, StringCharBits)
		}
	}
	return nil
}
