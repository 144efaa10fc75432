package builtins

// Error family. Each native error has a constructor/prototype pair that
// shares the base Error natives.
func errorConstructor() *Object {
	return &Object{
		ID:    "bi_error_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_error_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_error_constructor",
		Name:              "Error",
		Constructable:     true,
	}
}

func errorPrototype() *Object {
	return &Object{
		ID:    "bi_error_prototype",
		Class: ClassError,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_error_constructor",

		Values: []Property{
			{Name: "name", Value: String("Error")},
			{Name: "message", Value: String("")},
			{Name: "stack", Value: Accessor{Getter: "duk_builtin_error_prototype_stack_getter", Setter: "duk_builtin_error_prototype_nop_setter"}},
			{Name: "fileName", Value: Accessor{Getter: "duk_builtin_error_prototype_filename_getter", Setter: "duk_builtin_error_prototype_nop_setter"}},
			{Name: "lineNumber", Value: Accessor{Getter: "duk_builtin_error_prototype_linenumber_getter", Setter: "duk_builtin_error_prototype_nop_setter"}},
		},
		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_error_prototype_to_string", Length: 0},
		},
	}
}

func evalErrorConstructor() *Object {
	return &Object{
		ID:    "bi_eval_error_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_eval_error_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_eval_error_constructor",
		Name:              "EvalError",
		Constructable:     true,
	}
}

func evalErrorPrototype() *Object {
	return &Object{
		ID:    "bi_eval_error_prototype",
		Class: ClassError,

		InternalPrototype:   "bi_error_prototype",
		ExternalConstructor: "bi_eval_error_constructor",

		Values: []Property{
			{Name: "name", Value: String("EvalError")},
			{Name: "message", Value: String("")},
		},
	}
}

func rangeErrorConstructor() *Object {
	return &Object{
		ID:    "bi_range_error_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_range_error_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_range_error_constructor",
		Name:              "RangeError",
		Constructable:     true,
	}
}

func rangeErrorPrototype() *Object {
	return &Object{
		ID:    "bi_range_error_prototype",
		Class: ClassError,

		InternalPrototype:   "bi_error_prototype",
		ExternalConstructor: "bi_range_error_constructor",

		Values: []Property{
			{Name: "name", Value: String("RangeError")},
			{Name: "message", Value: String("")},
		},
	}
}

func referenceErrorConstructor() *Object {
	return &Object{
		ID:    "bi_reference_error_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_reference_error_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_reference_error_constructor",
		Name:              "ReferenceError",
		Constructable:     true,
	}
}

func referenceErrorPrototype() *Object {
	return &Object{
		ID:    "bi_reference_error_prototype",
		Class: ClassError,

		InternalPrototype:   "bi_error_prototype",
		ExternalConstructor: "bi_reference_error_constructor",

		Values: []Property{
			{Name: "name", Value: String("ReferenceError")},
			{Name: "message", Value: String("")},
		},
	}
}

func syntaxErrorConstructor() *Object {
	return &Object{
		ID:    "bi_syntax_error_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_syntax_error_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_syntax_error_constructor",
		Name:              "SyntaxError",
		Constructable:     true,
	}
}

func syntaxErrorPrototype() *Object {
	return &Object{
		ID:    "bi_syntax_error_prototype",
		Class: ClassError,

		InternalPrototype:   "bi_error_prototype",
		ExternalConstructor: "bi_syntax_error_constructor",

		Values: []Property{
			{Name: "name", Value: String("SyntaxError")},
			{Name: "message", Value: String("")},
		},
	}
}

func typeErrorConstructor() *Object {
	return &Object{
		ID:    "bi_type_error_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_type_error_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_type_error_constructor",
		Name:              "TypeError",
		Constructable:     true,
	}
}

func typeErrorPrototype() *Object {
	return &Object{
		ID:    "bi_type_error_prototype",
		Class: ClassError,

		InternalPrototype:   "bi_error_prototype",
		ExternalConstructor: "bi_type_error_constructor",

		Values: []Property{
			{Name: "name", Value: String("TypeError")},
			{Name: "message", Value: String("")},
		},
	}
}

func uriErrorConstructor() *Object {
	return &Object{
		ID:    "bi_uri_error_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_uri_error_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_uri_error_constructor",
		Name:              "URIError",
		Constructable:     true,
	}
}

func uriErrorPrototype() *Object {
	return &Object{
		ID:    "bi_uri_error_prototype",
		Class: ClassError,

		InternalPrototype:   "bi_error_prototype",
		ExternalConstructor: "bi_uri_error_constructor",

		Values: []Property{
			{Name: "name", Value: String("URIError")},
			{Name: "message", Value: String("")},
		},
	}
}
