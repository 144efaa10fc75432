package emit

import (
	"strings"
	"unicode"
)

// IndexDefine returns the index macro for an object id:
// "bi_array_prototype" -> "DUK_BIDX_ARRAY_PROTOTYPE". The first
// underscore-separated component of the id is dropped.
func IndexDefine(prefix, id string) string {
	parts := strings.Split(strings.ToUpper(id), "_")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return macroPrefix(prefix) + "_BIDX_" + strings.Join(parts, "_")
}

// macroPrefix is the upper-case form of a C identifier prefix.
func macroPrefix(prefix string) string {
	return strings.ToUpper(prefix)
}

// identPrefix is the lower-case form of a C identifier prefix.
func identPrefix(prefix string) string {
	return strings.ToLower(prefix)
}

// validPrefix reports whether prefix can start a C identifier.
func validPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	for i, r := range prefix {
		switch {
		case r == '_', r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
