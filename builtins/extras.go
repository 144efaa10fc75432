package builtins

func mathObject() *Object {
	return &Object{
		ID:    "bi_math",
		Class: ClassMath,

		InternalPrototype: "bi_object_prototype",

		Values: []Property{
			{Name: "E", Value: Double(DblE), Attrs: MustAttrs("")},
			{Name: "LN10", Value: Double(DblLn10), Attrs: MustAttrs("")},
			{Name: "LN2", Value: Double(DblLn2), Attrs: MustAttrs("")},
			{Name: "LOG2E", Value: Double(DblLog2E), Attrs: MustAttrs("")},
			{Name: "LOG10E", Value: Double(DblLog10E), Attrs: MustAttrs("")},
			{Name: "PI", Value: Double(DblPi), Attrs: MustAttrs("")},
			{Name: "SQRT1_2", Value: Double(DblSqrt1_2), Attrs: MustAttrs("")},
			{Name: "SQRT2", Value: Double(DblSqrt2), Attrs: MustAttrs("")},
		},
		Functions: []Method{
			{Name: "abs", Native: "duk_builtin_math_object_abs", Length: 1},
			{Name: "acos", Native: "duk_builtin_math_object_acos", Length: 1},
			{Name: "asin", Native: "duk_builtin_math_object_asin", Length: 1},
			{Name: "atan", Native: "duk_builtin_math_object_atan", Length: 1},
			{Name: "atan2", Native: "duk_builtin_math_object_atan2", Length: 2},
			{Name: "ceil", Native: "duk_builtin_math_object_ceil", Length: 1},
			{Name: "cos", Native: "duk_builtin_math_object_cos", Length: 1},
			{Name: "exp", Native: "duk_builtin_math_object_exp", Length: 1},
			{Name: "floor", Native: "duk_builtin_math_object_floor", Length: 1},
			{Name: "log", Native: "duk_builtin_math_object_log", Length: 1},
			{Name: "max", Native: "duk_builtin_math_object_max", Length: 2, Args: ArgsVarargs},
			{Name: "min", Native: "duk_builtin_math_object_min", Length: 2, Args: ArgsVarargs},
			{Name: "pow", Native: "duk_builtin_math_object_pow", Length: 2},
			{Name: "random", Native: "duk_builtin_math_object_random", Length: 0},
			{Name: "round", Native: "duk_builtin_math_object_round", Length: 1},
			{Name: "sin", Native: "duk_builtin_math_object_sin", Length: 1},
			{Name: "sqrt", Native: "duk_builtin_math_object_sqrt", Length: 1},
			{Name: "tan", Native: "duk_builtin_math_object_tan", Length: 1},
		},
	}
}

func jsonObject() *Object {
	return &Object{
		ID:    "bi_json",
		Class: ClassJSON,

		InternalPrototype: "bi_object_prototype",

		Functions: []Method{
			{Name: "parse", Native: "duk_builtin_json_object_parse", Length: 2},
			{Name: "stringify", Native: "duk_builtin_json_object_stringify", Length: 3},
		},
	}
}

// typeErrorThrower is the [[ThrowTypeError]] function object (E5 13.2.3).
func typeErrorThrower() *Object {
	return &Object{
		ID:    "bi_type_error_thrower",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		Length:            Len(0),
		Native:            "duk_builtin_type_error_thrower",
		Name:              "ThrowTypeError",
	}
}

// dukObject is the engine-specific namespace object. Build metadata
// (version, build) is merged into it at compile time.
func dukObject() *Object {
	return &Object{
		ID:    "bi_duk",
		Class: ClassObject,

		InternalPrototype: "bi_object_prototype",

		Values: []Property{
			{Name: "Buffer", Value: ObjectRef("bi_buffer_constructor")},
			{Name: "Pointer", Value: ObjectRef("bi_pointer_constructor")},
			{Name: "Thread", Value: ObjectRef("bi_thread_constructor")},
		},
		Functions: []Method{
			{Name: "addr", Native: "duk_builtin_duk_object_addr", Length: 1},
			{Name: "refc", Native: "duk_builtin_duk_object_refc", Length: 1},
			{Name: "gc", Native: "duk_builtin_duk_object_gc", Length: 1},
			{Name: "getFinalizer", Native: "duk_builtin_duk_object_get_finalizer", Length: 1},
			{Name: "setFinalizer", Native: "duk_builtin_duk_object_set_finalizer", Length: 2},
			{Name: "enc", Native: "duk_builtin_duk_object_enc", Length: 2},
			{Name: "dec", Native: "duk_builtin_duk_object_dec", Length: 2},
		},
	}
}

func threadConstructor() *Object {
	return &Object{
		ID:    "bi_thread_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_thread_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_thread_constructor",
		Name:              "Thread",
		Args:              ArgsVarargs,
		Constructable:     true,

		Functions: []Method{
			{Name: "yield", Native: "duk_builtin_thread_yield", Length: 2},
			{Name: "resume", Native: "duk_builtin_thread_resume", Length: 3},
			{Name: "current", Native: "duk_builtin_thread_current", Length: 0},
		},
	}
}

func threadPrototype() *Object {
	return &Object{
		ID:    "bi_thread_prototype",
		Class: ClassThread,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_thread_constructor",
	}
}

func bufferConstructor() *Object {
	return &Object{
		ID:    "bi_buffer_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_buffer_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_buffer_constructor",
		Name:              "Buffer",
		Args:              ArgsVarargs,
		Constructable:     true,
	}
}

func bufferPrototype() *Object {
	return &Object{
		ID:    "bi_buffer_prototype",
		Class: ClassBuffer,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_buffer_constructor",

		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_buffer_prototype_to_string", Length: 0},
			{Name: "valueOf", Native: "duk_builtin_buffer_prototype_value_of", Length: 0},
		},
	}
}

func pointerConstructor() *Object {
	return &Object{
		ID:    "bi_pointer_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_pointer_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_pointer_constructor",
		Name:              "Pointer",
		Args:              ArgsVarargs,
		Constructable:     true,
	}
}

func pointerPrototype() *Object {
	return &Object{
		ID:    "bi_pointer_prototype",
		Class: ClassPointer,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_pointer_constructor",

		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_pointer_prototype_to_string", Length: 0},
			{Name: "valueOf", Native: "duk_builtin_pointer_prototype_value_of", Length: 0},
		},
	}
}

// doubleError is thrown when an error occurs while handling an error. It
// is the only non-extensible built-in.
func doubleError() *Object {
	return &Object{
		ID:    "bi_double_error",
		Class: ClassError,

		InternalPrototype: "bi_error_prototype",
		NonExtensible:     true,

		Values: []Property{
			{Name: "name", Value: String("DoubleError"), Attrs: MustAttrs("")},
			{Name: "message", Value: String("error in error handling"), Attrs: MustAttrs("")},
		},
	}
}
