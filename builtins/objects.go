package builtins

// globalObject is the global object. Annex B and browser-like functions are
// tagged with their feature flags.
func globalObject() *Object {
	return &Object{
		ID:    "bi_global",
		Class: ClassGlobal,

		InternalPrototype: "bi_object_prototype",

		Values: []Property{
			{Name: "NaN", Value: Double(DblNaN), Attrs: MustAttrs("")},
			{Name: "Infinity", Value: Double(DblPositiveInfinity), Attrs: MustAttrs("")},
			{Name: "undefined", Value: Undefined{}, Attrs: MustAttrs("")},
			{Name: "Object", Value: ObjectRef("bi_object_constructor")},
			{Name: "Function", Value: ObjectRef("bi_function_constructor")},
			{Name: "Array", Value: ObjectRef("bi_array_constructor")},
			{Name: "String", Value: ObjectRef("bi_string_constructor")},
			{Name: "Boolean", Value: ObjectRef("bi_boolean_constructor")},
			{Name: "Number", Value: ObjectRef("bi_number_constructor")},
			{Name: "Date", Value: ObjectRef("bi_date_constructor")},
			{Name: "RegExp", Value: ObjectRef("bi_regexp_constructor")},
			{Name: "Error", Value: ObjectRef("bi_error_constructor")},
			{Name: "EvalError", Value: ObjectRef("bi_eval_error_constructor")},
			{Name: "RangeError", Value: ObjectRef("bi_range_error_constructor")},
			{Name: "ReferenceError", Value: ObjectRef("bi_reference_error_constructor")},
			{Name: "SyntaxError", Value: ObjectRef("bi_syntax_error_constructor")},
			{Name: "TypeError", Value: ObjectRef("bi_type_error_constructor")},
			{Name: "URIError", Value: ObjectRef("bi_uri_error_constructor")},
			{Name: "Math", Value: ObjectRef("bi_math")},
			{Name: "JSON", Value: ObjectRef("bi_json")},
			{Name: "__duk__", Value: ObjectRef("bi_duk")},
		},
		Functions: []Method{
			{Name: "eval", Native: "duk_builtin_global_object_eval", Length: 1},
			{Name: "parseInt", Native: "duk_builtin_global_object_parse_int", Length: 2},
			{Name: "parseFloat", Native: "duk_builtin_global_object_parse_float", Length: 1},
			{Name: "isNaN", Native: "duk_builtin_global_object_is_nan", Length: 1},
			{Name: "isFinite", Native: "duk_builtin_global_object_is_finite", Length: 1},
			{Name: "decodeURI", Native: "duk_builtin_global_object_decode_uri", Length: 1},
			{Name: "decodeURIComponent", Native: "duk_builtin_global_object_decode_uri_component", Length: 1},
			{Name: "encodeURI", Native: "duk_builtin_global_object_encode_uri", Length: 1},
			{Name: "encodeURIComponent", Native: "duk_builtin_global_object_encode_uri_component", Length: 1},
			{Name: "escape", Native: "duk_builtin_global_object_escape", Length: 1, Features: SectionB},
			{Name: "unescape", Native: "duk_builtin_global_object_unescape", Length: 1, Features: SectionB},
			{Name: "print", Native: "duk_builtin_global_object_print", Length: 0, Args: ArgsVarargs, Features: Browser},
			{Name: "alert", Native: "duk_builtin_global_object_alert", Length: 0, Args: ArgsVarargs, Features: Browser},
		},
	}
}

func globalEnv() *Object {
	return &Object{
		ID:    "bi_global_env",
		Class: ClassObjEnv,

		Values: []Property{
			{Name: Internal("target"), Value: ObjectRef("bi_global"), Attrs: MustAttrs("")},
		},
	}
}

func objectConstructor() *Object {
	return &Object{
		ID:    "bi_object_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_object_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_object_constructor",
		Name:              "Object",
		Constructable:     true,

		Functions: []Method{
			{Name: "getPrototypeOf", Native: "duk_builtin_object_constructor_get_prototype_of", Length: 1},
			{Name: "getOwnPropertyDescriptor", Native: "duk_builtin_object_constructor_get_own_property_descriptor", Length: 2},
			{Name: "getOwnPropertyNames", Native: "duk_builtin_object_constructor_get_own_property_names", Length: 1},
			{Name: "create", Native: "duk_builtin_object_constructor_create", Length: 2},
			{Name: "defineProperty", Native: "duk_builtin_object_constructor_define_property", Length: 3},
			{Name: "defineProperties", Native: "duk_builtin_object_constructor_define_properties", Length: 2},
			{Name: "seal", Native: "duk_builtin_object_constructor_seal", Length: 1},
			{Name: "freeze", Native: "duk_builtin_object_constructor_freeze", Length: 1},
			{Name: "preventExtensions", Native: "duk_builtin_object_constructor_prevent_extensions", Length: 1},
			{Name: "isSealed", Native: "duk_builtin_object_constructor_is_sealed", Length: 1},
			{Name: "isFrozen", Native: "duk_builtin_object_constructor_is_frozen", Length: 1},
			{Name: "isExtensible", Native: "duk_builtin_object_constructor_is_extensible", Length: 1},
			{Name: "keys", Native: "duk_builtin_object_constructor_keys", Length: 1},
		},
	}
}

func objectPrototype() *Object {
	return &Object{
		ID:    "bi_object_prototype",
		Class: ClassObject,

		ExternalConstructor: "bi_object_constructor",

		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_object_prototype_to_string", Length: 0},
			{Name: "toLocaleString", Native: "duk_builtin_object_prototype_to_locale_string", Length: 0},
			{Name: "valueOf", Native: "duk_builtin_object_prototype_value_of", Length: 0},
			{Name: "hasOwnProperty", Native: "duk_builtin_object_prototype_has_own_property", Length: 1},
			{Name: "isPrototypeOf", Native: "duk_builtin_object_prototype_is_prototype_of", Length: 1},
			{Name: "propertyIsEnumerable", Native: "duk_builtin_object_prototype_property_is_enumerable", Length: 1},
		},
	}
}

func functionConstructor() *Object {
	return &Object{
		ID:    "bi_function_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_function_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_function_constructor",
		Name:              "Function",
		Args:              ArgsVarargs,
		Constructable:     true,
	}
}

// functionPrototype is itself callable but not constructable.
func functionPrototype() *Object {
	return &Object{
		ID:    "bi_function_prototype",
		Class: ClassFunction,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_function_constructor",
		Length:              Len(0),
		Native:              "duk_builtin_function_prototype",
		Name:                "",

		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_function_prototype_to_string", Length: 1},
			{Name: "apply", Native: "duk_builtin_function_prototype_apply", Length: 2},
			{Name: "call", Native: "duk_builtin_function_prototype_call", Length: 1, Args: ArgsVarargs},
			{Name: "bind", Native: "duk_builtin_function_prototype_bind", Length: 1, Args: ArgsVarargs},
		},
	}
}

func arrayConstructor() *Object {
	return &Object{
		ID:    "bi_array_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_array_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_array_constructor",
		Name:              "Array",
		Args:              ArgsVarargs,
		Constructable:     true,

		Functions: []Method{
			{Name: "isArray", Native: "duk_builtin_array_constructor_is_array", Length: 1},
		},
	}
}

// arrayPrototype is the only object with non-default length attributes.
func arrayPrototype() *Object {
	return &Object{
		ID:    "bi_array_prototype",
		Class: ClassArray,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_array_constructor",
		Length:              Len(0),
		LengthAttrs:         MustAttrs("w"),

		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_array_prototype_to_string", Length: 0},
			{Name: "toLocaleString", Native: "duk_builtin_array_prototype_to_locale_string", Length: 0},
			{Name: "concat", Native: "duk_builtin_array_prototype_concat", Length: 1, Args: ArgsVarargs},
			{Name: "join", Native: "duk_builtin_array_prototype_join", Length: 1},
			{Name: "pop", Native: "duk_builtin_array_prototype_pop", Length: 0},
			{Name: "push", Native: "duk_builtin_array_prototype_push", Length: 1, Args: ArgsVarargs},
			{Name: "reverse", Native: "duk_builtin_array_prototype_reverse", Length: 0},
			{Name: "shift", Native: "duk_builtin_array_prototype_shift", Length: 0},
			{Name: "slice", Native: "duk_builtin_array_prototype_slice", Length: 2},
			{Name: "sort", Native: "duk_builtin_array_prototype_sort", Length: 1},
			{Name: "splice", Native: "duk_builtin_array_prototype_splice", Length: 2, Args: ArgsVarargs},
			{Name: "unshift", Native: "duk_builtin_array_prototype_unshift", Length: 1, Args: ArgsVarargs},
			{Name: "indexOf", Native: "duk_builtin_array_prototype_index_of", Length: 1, Args: ArgsVarargs},
			{Name: "lastIndexOf", Native: "duk_builtin_array_prototype_last_index_of", Length: 1, Args: ArgsVarargs},
			{Name: "every", Native: "duk_builtin_array_prototype_every", Length: 1, Args: ArgsExplicit, Nargs: 2},
			{Name: "some", Native: "duk_builtin_array_prototype_some", Length: 1, Args: ArgsExplicit, Nargs: 2},
			{Name: "forEach", Native: "duk_builtin_array_prototype_for_each", Length: 1, Args: ArgsExplicit, Nargs: 2},
			{Name: "map", Native: "duk_builtin_array_prototype_map", Length: 1, Args: ArgsExplicit, Nargs: 2},
			{Name: "filter", Native: "duk_builtin_array_prototype_filter", Length: 1, Args: ArgsExplicit, Nargs: 2},
			{Name: "reduce", Native: "duk_builtin_array_prototype_reduce", Length: 1, Args: ArgsVarargs},
			{Name: "reduceRight", Native: "duk_builtin_array_prototype_reduce_right", Length: 1, Args: ArgsVarargs},
		},
	}
}

func stringConstructor() *Object {
	return &Object{
		ID:    "bi_string_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_string_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_string_constructor",
		Name:              "String",
		Args:              ArgsVarargs,
		Constructable:     true,

		Functions: []Method{
			{Name: "fromCharCode", Native: "duk_builtin_string_constructor_from_char_code", Length: 1, Args: ArgsVarargs},
		},
	}
}

func stringPrototype() *Object {
	return &Object{
		ID:    "bi_string_prototype",
		Class: ClassString,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_string_constructor",

		Values: []Property{
			{Name: Internal("value"), Value: String(""), Attrs: MustAttrs("")},
		},
		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_string_prototype_to_string", Length: 0},
			{Name: "valueOf", Native: "duk_builtin_string_prototype_value_of", Length: 0},
			{Name: "charAt", Native: "duk_builtin_string_prototype_char_at", Length: 1},
			{Name: "charCodeAt", Native: "duk_builtin_string_prototype_char_code_at", Length: 1},
			{Name: "concat", Native: "duk_builtin_string_prototype_concat", Length: 1, Args: ArgsVarargs},
			{Name: "indexOf", Native: "duk_builtin_string_prototype_index_of", Length: 1, Args: ArgsExplicit, Nargs: 2},
			{Name: "lastIndexOf", Native: "duk_builtin_string_prototype_last_index_of", Length: 1, Args: ArgsExplicit, Nargs: 2},
			{Name: "localeCompare", Native: "duk_builtin_string_prototype_locale_compare", Length: 1},
			{Name: "match", Native: "duk_builtin_string_prototype_match", Length: 1},
			{Name: "replace", Native: "duk_builtin_string_prototype_replace", Length: 2},
			{Name: "search", Native: "duk_builtin_string_prototype_search", Length: 1},
			{Name: "slice", Native: "duk_builtin_string_prototype_slice", Length: 2},
			{Name: "split", Native: "duk_builtin_string_prototype_split", Length: 2},
			{Name: "substring", Native: "duk_builtin_string_prototype_substring", Length: 2},
			{Name: "toLowerCase", Native: "duk_builtin_string_prototype_to_lower_case", Length: 0},
			{Name: "toLocaleLowerCase", Native: "duk_builtin_string_prototype_to_locale_lower_case", Length: 0},
			{Name: "toUpperCase", Native: "duk_builtin_string_prototype_to_upper_case", Length: 0},
			{Name: "toLocaleUpperCase", Native: "duk_builtin_string_prototype_to_locale_upper_case", Length: 0},
			{Name: "trim", Native: "duk_builtin_string_prototype_trim", Length: 0},
			{Name: "substr", Native: "duk_builtin_string_prototype_substr", Length: 2, Features: SectionB},
		},
	}
}

func booleanConstructor() *Object {
	return &Object{
		ID:    "bi_boolean_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_boolean_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_boolean_constructor",
		Name:              "Boolean",
		Constructable:     true,
	}
}

func booleanPrototype() *Object {
	return &Object{
		ID:    "bi_boolean_prototype",
		Class: ClassBoolean,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_boolean_constructor",

		Values: []Property{
			{Name: Internal("value"), Value: Bool(false), Attrs: MustAttrs("")},
		},
		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_boolean_prototype_to_string", Length: 0},
			{Name: "valueOf", Native: "duk_builtin_boolean_prototype_value_of", Length: 0},
		},
	}
}

func numberConstructor() *Object {
	return &Object{
		ID:    "bi_number_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_number_prototype",
		Length:            Len(1),
		Native:            "duk_builtin_number_constructor",
		Name:              "Number",
		Args:              ArgsVarargs,
		Constructable:     true,

		Values: []Property{
			{Name: "MAX_VALUE", Value: Double(DblMaxDouble), Attrs: MustAttrs("")},
			{Name: "MIN_VALUE", Value: Double(DblMinDouble), Attrs: MustAttrs("")},
			{Name: "NaN", Value: Double(DblNaN), Attrs: MustAttrs("")},
			{Name: "POSITIVE_INFINITY", Value: Double(DblPositiveInfinity), Attrs: MustAttrs("")},
			{Name: "NEGATIVE_INFINITY", Value: Double(DblNegativeInfinity), Attrs: MustAttrs("")},
		},
	}
}

func numberPrototype() *Object {
	return &Object{
		ID:    "bi_number_prototype",
		Class: ClassNumber,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_number_constructor",

		Values: []Property{
			{Name: Internal("value"), Value: Double(0), Attrs: MustAttrs("")},
		},
		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_number_prototype_to_string", Length: 1},
			{Name: "toLocaleString", Native: "duk_builtin_number_prototype_to_locale_string", Length: 1},
			{Name: "valueOf", Native: "duk_builtin_number_prototype_value_of", Length: 0},
			{Name: "toFixed", Native: "duk_builtin_number_prototype_to_fixed", Length: 1},
			{Name: "toExponential", Native: "duk_builtin_number_prototype_to_exponential", Length: 1},
			{Name: "toPrecision", Native: "duk_builtin_number_prototype_to_precision", Length: 1},
		},
	}
}

func dateConstructor() *Object {
	return &Object{
		ID:    "bi_date_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_date_prototype",
		Length:            Len(7),
		Native:            "duk_builtin_date_constructor",
		Name:              "Date",
		Args:              ArgsVarargs,
		Constructable:     true,

		Functions: []Method{
			{Name: "parse", Native: "duk_builtin_date_constructor_parse", Length: 1},
			{Name: "UTC", Native: "duk_builtin_date_constructor_utc", Length: 7, Args: ArgsVarargs},
			{Name: "now", Native: "duk_builtin_date_constructor_now", Length: 0},
		},
	}
}

func datePrototype() *Object {
	return &Object{
		ID:    "bi_date_prototype",
		Class: ClassDate,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_date_constructor",

		Values: []Property{
			{Name: Internal("value"), Value: Double(DblNaN), Attrs: MustAttrs("w")},
		},
		Functions: []Method{
			{Name: "toString", Native: "duk_builtin_date_prototype_to_string", Length: 0},
			{Name: "toDateString", Native: "duk_builtin_date_prototype_to_date_string", Length: 0},
			{Name: "toTimeString", Native: "duk_builtin_date_prototype_to_time_string", Length: 0},
			{Name: "toLocaleString", Native: "duk_builtin_date_prototype_to_locale_string", Length: 0},
			{Name: "toLocaleDateString", Native: "duk_builtin_date_prototype_to_locale_date_string", Length: 0},
			{Name: "toLocaleTimeString", Native: "duk_builtin_date_prototype_to_locale_time_string", Length: 0},
			{Name: "valueOf", Native: "duk_builtin_date_prototype_value_of", Length: 0},
			{Name: "getTime", Native: "duk_builtin_date_prototype_value_of", Length: 0},
			{Name: "getFullYear", Native: "duk_builtin_date_prototype_get_full_year", Length: 0},
			{Name: "getUTCFullYear", Native: "duk_builtin_date_prototype_get_utc_full_year", Length: 0},
			{Name: "getMonth", Native: "duk_builtin_date_prototype_get_month", Length: 0},
			{Name: "getUTCMonth", Native: "duk_builtin_date_prototype_get_utc_month", Length: 0},
			{Name: "getDate", Native: "duk_builtin_date_prototype_get_date", Length: 0},
			{Name: "getUTCDate", Native: "duk_builtin_date_prototype_get_utc_date", Length: 0},
			{Name: "getDay", Native: "duk_builtin_date_prototype_get_day", Length: 0},
			{Name: "getUTCDay", Native: "duk_builtin_date_prototype_get_utc_day", Length: 0},
			{Name: "getHours", Native: "duk_builtin_date_prototype_get_hours", Length: 0},
			{Name: "getUTCHours", Native: "duk_builtin_date_prototype_get_utc_hours", Length: 0},
			{Name: "getMinutes", Native: "duk_builtin_date_prototype_get_minutes", Length: 0},
			{Name: "getUTCMinutes", Native: "duk_builtin_date_prototype_get_utc_minutes", Length: 0},
			{Name: "getSeconds", Native: "duk_builtin_date_prototype_get_seconds", Length: 0},
			{Name: "getUTCSeconds", Native: "duk_builtin_date_prototype_get_utc_seconds", Length: 0},
			{Name: "getMilliseconds", Native: "duk_builtin_date_prototype_get_milliseconds", Length: 0},
			{Name: "getUTCMilliseconds", Native: "duk_builtin_date_prototype_get_utc_milliseconds", Length: 0},
			{Name: "getTimezoneOffset", Native: "duk_builtin_date_prototype_get_timezone_offset", Length: 0},
			{Name: "setTime", Native: "duk_builtin_date_prototype_set_time", Length: 1},
			{Name: "setMilliseconds", Native: "duk_builtin_date_prototype_set_milliseconds", Length: 1},
			{Name: "setUTCMilliseconds", Native: "duk_builtin_date_prototype_set_utc_milliseconds", Length: 1},
			{Name: "setSeconds", Native: "duk_builtin_date_prototype_set_seconds", Length: 2, Args: ArgsVarargs},
			{Name: "setUTCSeconds", Native: "duk_builtin_date_prototype_set_utc_seconds", Length: 2, Args: ArgsVarargs},
			{Name: "setMinutes", Native: "duk_builtin_date_prototype_set_minutes", Length: 3, Args: ArgsVarargs},
			{Name: "setUTCMinutes", Native: "duk_builtin_date_prototype_set_utc_minutes", Length: 3, Args: ArgsVarargs},
			{Name: "setHours", Native: "duk_builtin_date_prototype_set_hours", Length: 4, Args: ArgsVarargs},
			{Name: "setUTCHours", Native: "duk_builtin_date_prototype_set_utc_hours", Length: 4, Args: ArgsVarargs},
			{Name: "setDate", Native: "duk_builtin_date_prototype_set_date", Length: 1},
			{Name: "setUTCDate", Native: "duk_builtin_date_prototype_set_utc_date", Length: 1},
			{Name: "setMonth", Native: "duk_builtin_date_prototype_set_month", Length: 2, Args: ArgsVarargs},
			{Name: "setUTCMonth", Native: "duk_builtin_date_prototype_set_utc_month", Length: 2, Args: ArgsVarargs},
			{Name: "setFullYear", Native: "duk_builtin_date_prototype_set_full_year", Length: 3, Args: ArgsVarargs},
			{Name: "setUTCFullYear", Native: "duk_builtin_date_prototype_set_utc_full_year", Length: 3, Args: ArgsVarargs},
			{Name: "toUTCString", Native: "duk_builtin_date_prototype_to_utc_string", Length: 0},
			{Name: "toISOString", Native: "duk_builtin_date_prototype_to_iso_string", Length: 0},
			{Name: "toJSON", Native: "duk_builtin_date_prototype_to_json", Length: 1},
			{Name: "getYear", Native: "duk_builtin_date_prototype_get_year", Length: 0, Features: SectionB},
			{Name: "setYear", Native: "duk_builtin_date_prototype_set_year", Length: 1, Features: SectionB},
		},
	}
}

func regexpConstructor() *Object {
	return &Object{
		ID:    "bi_regexp_constructor",
		Class: ClassFunction,

		InternalPrototype: "bi_function_prototype",
		ExternalPrototype: "bi_regexp_prototype",
		Length:            Len(2),
		Native:            "duk_builtin_regexp_constructor",
		Name:              "RegExp",
		Constructable:     true,
	}
}

// regexpPrototype carries the compiled bytecode of an empty-matching
// expression; the byte values must match the regexp opcode defines.
func regexpPrototype() *Object {
	return &Object{
		ID:    "bi_regexp_prototype",
		Class: ClassRegExp,

		InternalPrototype:   "bi_object_prototype",
		ExternalConstructor: "bi_regexp_constructor",

		Values: []Property{
			{Name: Internal("bytecode"), Value: String("\x00\x02\x01"), Attrs: MustAttrs("")},
			{Name: "source", Value: String("(?:)"), Attrs: MustAttrs("")},
			{Name: "global", Value: Bool(false), Attrs: MustAttrs("")},
			{Name: "ignoreCase", Value: Bool(false), Attrs: MustAttrs("")},
			{Name: "multiline", Value: Bool(false), Attrs: MustAttrs("")},
			{Name: "lastIndex", Value: Double(0), Attrs: MustAttrs("w")},
		},
		Functions: []Method{
			{Name: "exec", Native: "duk_builtin_regexp_prototype_exec", Length: 1},
			{Name: "test", Native: "duk_builtin_regexp_prototype_test", Length: 1},
			{Name: "toString", Native: "duk_builtin_regexp_prototype_to_string", Length: 0},
		},
	}
}
