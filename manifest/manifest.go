// Package manifest handles genbuiltins.toml build configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/snapshot"
)

// FileName is the manifest file searched for by Load and FindAndLoad.
const FileName = "genbuiltins.toml"

// Manifest represents a genbuiltins.toml build configuration.
type Manifest struct {
	Build      Build      `toml:"build"`
	Strings    Strings    `toml:"strings"`
	Extensions Extensions `toml:"extensions"`
	Output     Output     `toml:"output"`

	// Dir is the directory containing the manifest (set at load time).
	// Relative paths in the manifest are resolved against it.
	Dir string `toml:"-"`
}

// Build configures the build info merge.
type Build struct {
	Info         string `toml:"info"`
	Target       string `toml:"target"`
	TagByteOrder bool   `toml:"tag-byte-order"`
}

// Strings locates the interned string table.
type Strings struct {
	Table string `toml:"table"`
}

// Extensions selects the optional property sets.
type Extensions struct {
	SectionB    bool `toml:"section-b"`
	BrowserLike bool `toml:"browser-like"`
}

// Output configures the generated files.
type Output struct {
	Header     string   `toml:"header"`
	Source     string   `toml:"source"`
	Summary    string   `toml:"summary"`
	Prefix     string   `toml:"prefix"`
	ByteOrders []string `toml:"byte-orders"`
}

// Default returns the configuration used when no manifest exists.
func Default(dir string) *Manifest {
	m := &Manifest{Dir: dir}
	m.applyDefaults(nil)
	return m
}

// Load parses the genbuiltins.toml file in the given directory.
func Load(dir string) (*Manifest, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses a manifest at an explicit path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	m.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	m.applyDefaults(&md)

	if _, err := m.ByteOrders(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// FindAndLoad walks up from startDir to find a genbuiltins.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// applyDefaults fills unset fields. md is nil for a manifest that was not
// read from a file, in which case every boolean takes its default.
func (m *Manifest) applyDefaults(md *toml.MetaData) {
	if m.Build.Info == "" {
		m.Build.Info = "buildparams.json"
	}
	if m.Build.Target == "" {
		m.Build.Target = builtins.DukObjectID
	}
	if m.Strings.Table == "" {
		m.Strings.Table = "strings.toml"
	}
	if md == nil || !md.IsDefined("extensions", "section-b") {
		m.Extensions.SectionB = true
	}
	if md == nil || !md.IsDefined("extensions", "browser-like") {
		m.Extensions.BrowserLike = true
	}
	if m.Output.Header == "" {
		m.Output.Header = "duk_builtins.h"
	}
	if m.Output.Source == "" {
		m.Output.Source = "duk_builtins.c"
	}
	if m.Output.Prefix == "" {
		m.Output.Prefix = "duk"
	}
	if len(m.Output.ByteOrders) == 0 {
		for _, o := range snapshot.ByteOrders() {
			m.Output.ByteOrders = append(m.Output.ByteOrders, o.String())
		}
	}
}

// Features returns the extension set selected by the manifest.
func (m *Manifest) Features() builtins.Feature {
	var f builtins.Feature
	if m.Extensions.SectionB {
		f |= builtins.SectionB
	}
	if m.Extensions.BrowserLike {
		f |= builtins.Browser
	}
	return f
}

// ByteOrders parses the configured byte order names.
func (m *Manifest) ByteOrders() ([]snapshot.ByteOrder, error) {
	orders := make([]snapshot.ByteOrder, 0, len(m.Output.ByteOrders))
	for _, name := range m.Output.ByteOrders {
		o, err := snapshot.ParseByteOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Path resolves a manifest-relative path. Empty stays empty.
func (m *Manifest) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Dir, p)
}

// BuildInfoPath returns the absolute path of the build parameters file.
func (m *Manifest) BuildInfoPath() string { return m.Path(m.Build.Info) }

// StringTablePath returns the absolute path of the string table.
func (m *Manifest) StringTablePath() string { return m.Path(m.Strings.Table) }

// HeaderPath returns the absolute path of the generated header.
func (m *Manifest) HeaderPath() string { return m.Path(m.Output.Header) }

// SourcePath returns the absolute path of the generated source.
func (m *Manifest) SourcePath() string { return m.Path(m.Output.Source) }

// SummaryPath returns the absolute path of the CBOR summary, or "" when
// no summary is configured.
func (m *Manifest) SummaryPath() string { return m.Path(m.Output.Summary) }
