// Package strtab holds the string interning table shared between the
// snapshot compiler and the runtime's built-in string data. Indices are
// positions in the table and are never assigned by the compiler itself.
package strtab

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

var ErrDuplicate = errors.New("duplicate string")

// Lookup is the read side of an interning table.
type Lookup interface {
	// IndexOf returns the index of s if s is interned.
	IndexOf(s string) (int, bool)
	// StringAt returns the string with index i.
	StringAt(i int) (string, bool)
	// Len returns the number of interned strings.
	Len() int
}

// Table is an ordered, duplicate-free list of strings.
type Table struct {
	strs  []string
	index map[string]int
}

// file is the on-disk TOML layout.
type file struct {
	Strings []string `toml:"strings"`
}

// New builds a table from strs; index i holds strs[i].
func New(strs []string) (*Table, error) {
	t := &Table{
		strs:  make([]string, 0, len(strs)),
		index: make(map[string]int, len(strs)),
	}
	for _, s := range strs {
		if _, ok := t.index[s]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, s)
		}
		t.index[s] = len(t.strs)
		t.strs = append(t.strs, s)
	}
	return t, nil
}

// Load reads a table from a TOML file with a single `strings` array.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	t, err := New(f.Strings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Save writes the table in the format Load reads.
func (t *Table) Save(w io.Writer) error {
	return toml.NewEncoder(w).Encode(file{Strings: t.strs})
}

func (t *Table) IndexOf(s string) (int, bool) {
	i, ok := t.index[s]
	return i, ok
}

func (t *Table) StringAt(i int) (string, bool) {
	if i < 0 || i >= len(t.strs) {
		return "", false
	}
	return t.strs[i], true
}

func (t *Table) Len() int {
	return len(t.strs)
}

// Strings returns a copy of the table contents in index order.
func (t *Table) Strings() []string {
	return append([]string(nil), t.strs...)
}

// Extend returns a new table with the strings of more that t lacks
// appended in order. Existing indices are unchanged.
func (t *Table) Extend(more []string) *Table {
	out := &Table{
		strs:  append([]string(nil), t.strs...),
		index: make(map[string]int, len(t.strs)+len(more)),
	}
	for s, i := range t.index {
		out.index[s] = i
	}
	for _, s := range more {
		if _, ok := out.index[s]; ok {
			continue
		}
		out.index[s] = len(out.strs)
		out.strs = append(out.strs, s)
	}
	return out
}
