// Package emit renders compiled snapshots as C source and header files.
// Each byte order variant is placed behind its own feature define so a
// single pair of files serves every target.
package emit

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/JoshEngebretson/duktape/snapshot"
)

// DefaultPrefix is the C identifier prefix used when Options.Prefix is
// empty.
const DefaultPrefix = "duk"

// Options controls naming and layout of the generated files.
type Options struct {
	Prefix    string // C identifier prefix; macros use its upper-case form
	Generator string // tool name written into the file banner
	PerLine   int    // data bytes per line
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Generator == "" {
		o.Generator = "genbuiltins"
	}
	if o.PerLine <= 0 {
		o.PerLine = 24
	}
	return o
}

type defineData struct {
	Name  string
	Index int
}

type variantData struct {
	Cond    string // "#if" or "#elif"
	Define  string
	Natives []string
	Rows    []string
	Length  int
	Objects []defineData
}

type fileData struct {
	Generator  string
	Ident      string
	Macro      string
	NumObjects int
	Variants   []variantData
}

func newFileData(b *snapshot.Build, opts Options) (*fileData, error) {
	opts = opts.withDefaults()
	if !validPrefix(opts.Prefix) {
		return nil, fmt.Errorf("emit: invalid C prefix %q", opts.Prefix)
	}
	if len(b.Variants) == 0 {
		return nil, fmt.Errorf("emit: build has no variants")
	}

	d := &fileData{
		Generator:  opts.Generator,
		Ident:      identPrefix(opts.Prefix),
		Macro:      macroPrefix(opts.Prefix),
		NumObjects: len(b.Objects()),
	}
	for i, v := range b.Variants {
		vd := variantData{
			Cond:    "#elif",
			Define:  d.Macro + "_USE_" + v.Order.Define(),
			Natives: v.Natives,
			Rows:    byteRows(v.Data, opts.PerLine),
			Length:  len(v.Data),
		}
		if i == 0 {
			vd.Cond = "#if"
		}
		for idx, id := range v.Objects {
			vd.Objects = append(vd.Objects, defineData{Name: IndexDefine(opts.Prefix, id), Index: idx})
		}
		d.Variants = append(d.Variants, vd)
	}
	return d, nil
}

// byteRows formats data as comma-terminated rows of decimal values.
func byteRows(data []byte, perLine int) []string {
	var rows []string
	for start := 0; start < len(data); start += perLine {
		end := min(start+perLine, len(data))
		var sb strings.Builder
		for _, b := range data[start:end] {
			sb.WriteString(strconv.Itoa(int(b)))
			sb.WriteByte(',')
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// Source writes the C source file: native function tables and init data.
func Source(w io.Writer, b *snapshot.Build, opts Options) error {
	return render(w, sourceTemplate, b, opts)
}

// Header writes the C header: data length, object index defines and the
// object count.
func Header(w io.Writer, b *snapshot.Build, opts Options) error {
	return render(w, headerTemplate, b, opts)
}

func render(w io.Writer, tmpl *template.Template, b *snapshot.Build, opts Options) error {
	d, err := newFileData(b, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return fmt.Errorf("emit: %s: %w", tmpl.Name(), err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
