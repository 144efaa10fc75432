package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/emit"
	"github.com/JoshEngebretson/duktape/manifest"
	"github.com/JoshEngebretson/duktape/snapshot"
	"github.com/JoshEngebretson/duktape/strtab"
	"github.com/urfave/cli/v2"
)

var (
	buildCommand = &cli.Command{
		Name:   "build",
		Usage:  "Compile the built-ins and write the C header and source",
		Action: runBuild,
		Flags: []cli.Flag{
			infoFlag,
			stringsFlag,
			headerFlag,
			sourceFlag,
			summaryFlag,
			byteOrderFlag,
			tagByteOrderFlag,
		},
	}
)

var (
	infoFlag = &cli.StringFlag{
		Name:  "info",
		Usage: "Build parameters JSON file",
	}
	stringsFlag = &cli.StringFlag{
		Name:  "strings",
		Usage: "String table TOML file",
	}
	headerFlag = &cli.StringFlag{
		Name:  "header",
		Usage: "Output header path",
	}
	sourceFlag = &cli.StringFlag{
		Name:  "source",
		Usage: "Output source path",
	}
	summaryFlag = &cli.StringFlag{
		Name:  "summary",
		Usage: "Output CBOR summary path",
	}
	byteOrderFlag = &cli.StringSliceFlag{
		Name:  "byte-order",
		Usage: "Byte order variant to emit (little, big, middle); repeatable",
	}
	tagByteOrderFlag = &cli.BoolFlag{
		Name:  "tag-byte-order",
		Usage: "Append the byte order to the build string of each variant",
	}
)

// applyFlags overrides manifest settings with any flags given on the
// command line. Paths from flags are relative to the working directory.
func applyFlags(ctx *cli.Context, m *manifest.Manifest) error {
	paths := []struct {
		flag *cli.StringFlag
		dst  *string
	}{
		{infoFlag, &m.Build.Info},
		{stringsFlag, &m.Strings.Table},
		{headerFlag, &m.Output.Header},
		{sourceFlag, &m.Output.Source},
		{summaryFlag, &m.Output.Summary},
	}
	for _, p := range paths {
		if !ctx.IsSet(p.flag.Name) {
			continue
		}
		abs, err := filepath.Abs(ctx.String(p.flag.Name))
		if err != nil {
			return err
		}
		*p.dst = abs
	}
	if ctx.IsSet(byteOrderFlag.Name) {
		m.Output.ByteOrders = ctx.StringSlice(byteOrderFlag.Name)
	}
	if ctx.IsSet(tagByteOrderFlag.Name) {
		m.Build.TagByteOrder = ctx.Bool(tagByteOrderFlag.Name)
	}
	return nil
}

// compile loads the inputs named by m and compiles every variant.
func compile(m *manifest.Manifest) (*snapshot.Build, *strtab.Table, error) {
	tab, err := strtab.Load(m.StringTablePath())
	if err != nil {
		return nil, nil, err
	}
	bi, err := builtins.LoadBuildInfo(m.BuildInfoPath())
	if err != nil {
		return nil, nil, err
	}
	orders, err := m.ByteOrders()
	if err != nil {
		return nil, nil, err
	}

	b, err := snapshot.Compile(snapshot.Config{
		Objects:      builtins.Default(),
		Strings:      tab,
		Features:     m.Features(),
		Orders:       orders,
		BuildInfo:    bi,
		BuildTarget:  m.Build.Target,
		TagByteOrder: m.Build.TagByteOrder,
	})
	if err != nil {
		return nil, nil, err
	}
	return b, tab, nil
}

func runBuild(ctx *cli.Context) error {
	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}
	if err := applyFlags(ctx, m); err != nil {
		return err
	}
	b, _, err := compile(m)
	if err != nil {
		return err
	}

	// Render everything before writing so a failure leaves no partial
	// output behind.
	opts := emit.Options{Prefix: m.Output.Prefix, Generator: ctx.App.Name}
	var header, source bytes.Buffer
	if err := emit.Header(&header, b, opts); err != nil {
		return err
	}
	if err := emit.Source(&source, b, opts); err != nil {
		return err
	}
	var summary []byte
	if m.SummaryPath() != "" {
		if summary, err = snapshot.MarshalSummary(b.Summary()); err != nil {
			return err
		}
	}

	if err := writeFile(m.SourcePath(), source.Bytes()); err != nil {
		return fmt.Errorf("writing source: %w", err)
	}
	if err := writeFile(m.HeaderPath(), header.Bytes()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if summary != nil {
		if err := writeFile(m.SummaryPath(), summary); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}
