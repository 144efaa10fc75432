// Package builtins describes the built-in object graph that the snapshot
// compiler encodes: object descriptors, their properties and methods, and
// the canonical Ecmascript E5 object list.
package builtins

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Classes
// ---------------------------------------------------------------------------

// Class is the internal object class shared with the runtime decoder.
type Class uint8

const (
	ClassUnused Class = iota
	ClassArguments
	ClassArray
	ClassBoolean
	ClassDate
	ClassError
	ClassFunction
	ClassJSON
	ClassMath
	ClassNumber
	ClassObject
	ClassRegExp
	ClassString
	ClassGlobal
	ClassObjEnv
	ClassDecEnv
	ClassBuffer
	ClassPointer
	ClassThread
)

var classNames = [...]string{
	"Unused", "Arguments", "Array", "Boolean", "Date", "Error", "Function",
	"JSON", "Math", "Number", "Object", "RegExp", "String", "global",
	"ObjEnv", "DecEnv", "Buffer", "Pointer", "Thread",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Valid reports whether c is part of the class vocabulary.
func (c Class) Valid() bool {
	return int(c) < len(classNames)
}

// ---------------------------------------------------------------------------
// Property attributes
// ---------------------------------------------------------------------------

// Attrs is a property attribute set.
type Attrs uint8

const (
	Writable     Attrs = 1 << 0
	Enumerable   Attrs = 1 << 1
	Configurable Attrs = 1 << 2
)

const (
	// DefaultAttrs applies to every property without an explicit set.
	DefaultAttrs = Writable | Configurable
	// LengthAttrs is the default for properties named "length".
	LengthAttrs Attrs = 0
)

// ParseAttrs parses the "wec" shorthand. Letters may appear in any order.
func ParseAttrs(s string) (Attrs, error) {
	var a Attrs
	for _, ch := range s {
		switch ch {
		case 'w':
			a |= Writable
		case 'e':
			a |= Enumerable
		case 'c':
			a |= Configurable
		default:
			return 0, fmt.Errorf("unknown attribute %q in %q", ch, s)
		}
	}
	return a, nil
}

// MustAttrs is ParseAttrs for static tables.
func MustAttrs(s string) *Attrs {
	a, err := ParseAttrs(s)
	if err != nil {
		panic(err)
	}
	return &a
}

func (a Attrs) String() string {
	var sb strings.Builder
	if a&Writable != 0 {
		sb.WriteByte('w')
	}
	if a&Enumerable != 0 {
		sb.WriteByte('e')
	}
	if a&Configurable != 0 {
		sb.WriteByte('c')
	}
	return sb.String()
}

// DefaultAttrsFor returns the attribute set assumed for a property name.
func DefaultAttrsFor(name string) Attrs {
	if name == "length" {
		return LengthAttrs
	}
	return DefaultAttrs
}

// ---------------------------------------------------------------------------
// Feature flags
// ---------------------------------------------------------------------------

// Feature marks an entry as part of an optional extension set.
type Feature uint8

const (
	// SectionB is the E5 Annex B compatibility set.
	SectionB Feature = 1 << iota
	// Browser covers host extensions common to browser environments.
	Browser
)

// Enabled reports whether an entry requiring f is included when the
// features in set are active.
func (f Feature) Enabled(set Feature) bool {
	return f&^set == 0
}

// ---------------------------------------------------------------------------
// Arity
// ---------------------------------------------------------------------------

// ArgMode selects how a function's nargs is derived.
type ArgMode uint8

const (
	// ArgsFromLength uses the function's length as nargs.
	ArgsFromLength ArgMode = iota
	// ArgsVarargs marks a variadic function.
	ArgsVarargs
	// ArgsExplicit uses Nargs, which differs from length.
	ArgsExplicit
)

// ---------------------------------------------------------------------------
// Values
// ---------------------------------------------------------------------------

// Value is a property value. The concrete types form a closed set.
type Value interface {
	isValue()
}

type (
	// Double is a number value.
	Double float64
	// String is a string value; it is encoded by string table index when
	// interned and verbatim otherwise.
	String string
	// Bool is a boolean value.
	Bool bool
	// Undefined is the undefined value.
	Undefined struct{}
	// ObjectRef refers to another built-in object by id.
	ObjectRef string
	// Accessor is a native getter/setter pair.
	Accessor struct {
		Getter string
		Setter string
	}
)

func (Double) isValue()    {}
func (String) isValue()    {}
func (Bool) isValue()      {}
func (Undefined) isValue() {}
func (ObjectRef) isValue() {}
func (Accessor) isValue()  {}

// ---------------------------------------------------------------------------
// Descriptors
// ---------------------------------------------------------------------------

// Property is a named value on a built-in object.
type Property struct {
	Name     string
	Value    Value
	Attrs    *Attrs // nil means DefaultAttrsFor(Name)
	Features Feature
}

// EffectiveAttrs returns the explicit attributes or the name's default.
func (p *Property) EffectiveAttrs() Attrs {
	if p.Attrs != nil {
		return *p.Attrs
	}
	return DefaultAttrsFor(p.Name)
}

// Method is a native function installed as a property.
type Method struct {
	Name     string
	Native   string
	Length   int
	Args     ArgMode
	Nargs    int // used when Args == ArgsExplicit
	Features Feature
}

// Object describes one built-in object. Its position in the object list is
// its index; links to other objects use ids and are resolved to indices at
// encode time.
type Object struct {
	ID    string
	Class Class

	InternalPrototype   string // "" for none
	ExternalPrototype   string
	ExternalConstructor string

	Length      *int   // nil when the object has no length property
	LengthAttrs *Attrs // non-default length attributes (Array only)

	// Function-classed objects only.
	Native        string
	Name          string
	Args          ArgMode
	Nargs         int
	Constructable bool

	NonExtensible bool

	Values    []Property
	Functions []Method
}

// Len returns a pointer to n, for Object.Length in static tables.
func Len(n int) *int {
	return &n
}

// Internal returns the internal-property form of name. Internal names are
// prefixed with a zero byte so they cannot collide with script-visible
// names.
func Internal(name string) string {
	return "\x00" + name
}

// Clone returns a copy of o whose slices can be modified independently.
func (o *Object) Clone() *Object {
	c := *o
	c.Values = append([]Property(nil), o.Values...)
	c.Functions = append([]Method(nil), o.Functions...)
	return &c
}

// Find returns the object with the given id, or nil.
func Find(objs []*Object, id string) *Object {
	for _, o := range objs {
		if o.ID == id {
			return o
		}
	}
	return nil
}
