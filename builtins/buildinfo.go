package builtins

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// BuildInfo is the build-parameter record merged into the engine object.
type BuildInfo struct {
	Version int    `json:"version"`
	Build   string `json:"build"`
}

// UnmarshalJSON accepts the version either as a number or as a numeric
// string, which is how the build parameter generator writes it.
func (b *BuildInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Version json.RawMessage `json:"version"`
		Build   string          `json:"build"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Version) == 0 {
		return fmt.Errorf("build info: missing version")
	}

	var s string
	if err := json.Unmarshal(raw.Version, &s); err == nil {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("build info: version %q: %w", s, err)
		}
		b.Version = v
	} else if err := json.Unmarshal(raw.Version, &b.Version); err != nil {
		return fmt.Errorf("build info: version: %w", err)
	}
	b.Build = raw.Build
	return nil
}

// LoadBuildInfo reads a build-info JSON file.
func LoadBuildInfo(path string) (*BuildInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	var bi BuildInfo
	if err := json.Unmarshal(data, &bi); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return &bi, nil
}

// BuildString returns the build value stored on the target object. When
// tag is non-empty it is appended after a "; " separator.
func (b *BuildInfo) BuildString(tag string) string {
	if tag == "" {
		return b.Build
	}
	return b.Build + "; " + tag
}

// Merge replaces the version and build values on the object with the given
// id. The object is cloned first so the caller's list is left intact; the
// returned list shares every other object with objs.
func (b *BuildInfo) Merge(objs []*Object, target, tag string) ([]*Object, error) {
	out := make([]*Object, len(objs))
	copy(out, objs)

	for i, o := range out {
		if o.ID != target {
			continue
		}
		c := o.Clone()
		c.Values = removeValue(c.Values, "version")
		c.Values = removeValue(c.Values, "build")

		none := Attrs(0)
		head := []Property{
			{Name: "version", Value: Double(b.Version), Attrs: &none},
			{Name: "build", Value: String(b.BuildString(tag)), Attrs: &none},
		}
		c.Values = append(head, c.Values...)
		out[i] = c
		return out, nil
	}
	return nil, fmt.Errorf("build info target %q not found", target)
}

func removeValue(props []Property, name string) []Property {
	for i := range props {
		if props[i].Name == name {
			return append(props[:i:i], props[i+1:]...)
		}
	}
	return props
}
