package snapshot

import "github.com/JoshEngebretson/duktape/builtins"

// validate checks the whole object list against the format. It runs before
// any bits are written so a bad list never yields partial data.
func (e *Encoder) validate(features builtins.Feature) error {
	nonExtensible := ""
	for _, o := range e.objs {
		if err := e.validateObject(o); err != nil {
			return err
		}
		if o.NonExtensible {
			if nonExtensible != "" {
				return newError(ErrSchema, o.ID, "", "more than one non-extensible object (also %s)", nonExtensible)
			}
			nonExtensible = o.ID
		}

		// References are checked on every entry so a disabled feature
		// cannot hide a broken link.
		for i := range o.Values {
			if ref, ok := o.Values[i].Value.(builtins.ObjectRef); ok {
				if _, ok := e.index.Lookup(string(ref)); !ok {
					return newError(ErrUnresolved, o.ID, valueField(o.Values[i].Name), "no object %q", string(ref))
				}
			}
		}

		values := filterValues(o.Values, features)
		if len(values) > MaxNormalProps {
			return newError(ErrCapacity, o.ID, "values", "%d properties, at most %d fit", len(values), MaxNormalProps)
		}
		for i := range values {
			if err := e.validateProperty(o.ID, &values[i]); err != nil {
				return err
			}
		}

		methods := filterMethods(o.Functions, features)
		if len(methods) > MaxFuncProps {
			return newError(ErrCapacity, o.ID, "functions", "%d methods, at most %d fit", len(methods), MaxFuncProps)
		}
		for i := range methods {
			if err := e.validateMethod(o.ID, &methods[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Encoder) validateObject(o *builtins.Object) error {
	if !o.Class.Valid() {
		return newError(ErrSchema, o.ID, "class", "unknown class %d", uint8(o.Class))
	}
	if o.Length != nil && (*o.Length < 0 || *o.Length > MaxLength) {
		return newError(ErrCapacity, o.ID, "length", "length %d does not fit %d bits", *o.Length, LengthPropBits)
	}
	if o.LengthAttrs != nil && *o.LengthAttrs != builtins.LengthAttrs {
		if o.Class != builtins.ClassArray {
			return newError(ErrSchema, o.ID, "length attributes", "non-default length attributes %q on a %s object", o.LengthAttrs.String(), o.Class)
		}
		if o.Length == nil {
			return newError(ErrSchema, o.ID, "length attributes", "length attributes without a length")
		}
	}

	for _, link := range []struct {
		field string
		id    string
	}{
		{"internal prototype", o.InternalPrototype},
		{"external prototype", o.ExternalPrototype},
		{"external constructor", o.ExternalConstructor},
	} {
		if link.id == "" {
			continue
		}
		if _, ok := e.index.Lookup(link.id); !ok {
			return newError(ErrUnresolved, o.ID, link.field, "no object %q", link.id)
		}
	}

	if o.Class != builtins.ClassFunction {
		if o.Native != "" || o.Constructable || o.Args != builtins.ArgsFromLength {
			return newError(ErrSchema, o.ID, "", "function binding on a %s object", o.Class)
		}
		return nil
	}

	if o.Length == nil {
		return newError(ErrSchema, o.ID, "length", "function object without a length")
	}
	if o.Native == "" {
		return newError(ErrSchema, o.ID, "native", "function object without a native")
	}
	if _, err := e.strs.mustIndex(o.ID, "name", o.Name); err != nil {
		return err
	}
	return checkArgs(o.ID, "nargs", o.Args, o.Nargs)
}

func (e *Encoder) validateProperty(object string, p *builtins.Property) error {
	field := valueField(p.Name)
	if _, err := e.strs.mustIndex(object, field, p.Name); err != nil {
		return err
	}
	if p.Attrs != nil && *p.Attrs > builtins.Writable|builtins.Enumerable|builtins.Configurable {
		return newError(ErrSchema, object, field, "attribute bits 0x%x do not fit %d bits", uint8(*p.Attrs), PropFlagsBits)
	}

	switch v := p.Value.(type) {
	case builtins.Double, builtins.Bool, builtins.Undefined, builtins.ObjectRef:
		return nil
	case builtins.String:
		_, ok, err := e.strs.maybeIndex(object, field, string(v))
		if err != nil || ok {
			return err
		}
		return checkVerbatim(object, field, string(v))
	case builtins.Accessor:
		if v.Getter == "" || v.Setter == "" {
			return newError(ErrSchema, object, field, "accessor needs both a native getter and a native setter")
		}
		return nil
	case nil:
		return newError(ErrSchema, object, field, "property has no value")
	default:
		return newError(ErrSchema, object, field, "unsupported value type %T", p.Value)
	}
}

func (e *Encoder) validateMethod(object string, m *builtins.Method) error {
	field := methodField(m.Name)
	if _, err := e.strs.mustIndex(object, field, m.Name); err != nil {
		return err
	}
	if m.Native == "" {
		return newError(ErrSchema, object, field, "method without a native")
	}
	if m.Length < 0 || m.Length > MaxLength {
		return newError(ErrCapacity, object, field, "length %d does not fit %d bits", m.Length, LengthPropBits)
	}
	return checkArgs(object, field, m.Args, m.Nargs)
}

func checkArgs(object, field string, mode builtins.ArgMode, nargs int) error {
	switch mode {
	case builtins.ArgsFromLength, builtins.ArgsVarargs:
		return nil
	case builtins.ArgsExplicit:
		if nargs < 0 || nargs > MaxExplicitNargs {
			return newError(ErrCapacity, object, field, "nargs %d out of range 0..%d", nargs, MaxExplicitNargs)
		}
		return nil
	default:
		return newError(ErrSchema, object, field, "unknown nargs mode %d", mode)
	}
}

func filterValues(values []builtins.Property, features builtins.Feature) []builtins.Property {
	out := make([]builtins.Property, 0, len(values))
	for _, v := range values {
		if v.Features.Enabled(features) {
			out = append(out, v)
		}
	}
	return out
}

func filterMethods(methods []builtins.Method, features builtins.Feature) []builtins.Method {
	out := make([]builtins.Method, 0, len(methods))
	for _, m := range methods {
		if m.Features.Enabled(features) {
			out = append(out, m)
		}
	}
	return out
}
