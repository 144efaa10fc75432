package builtins

// Strings returns every string that must be interned for objs to encode:
// property and method names and function display names, in first-use
// order. String values are not included; they are interned only when a
// table already holds them.
func Strings(objs []*Object) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, o := range objs {
		if o.Class == ClassFunction {
			add(o.Name)
		}
		for i := range o.Values {
			add(o.Values[i].Name)
		}
		for i := range o.Functions {
			add(o.Functions[i].Name)
		}
	}
	return out
}
