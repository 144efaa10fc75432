package main

import (
	"bytes"

	"github.com/JoshEngebretson/duktape/builtins"
	"github.com/JoshEngebretson/duktape/snapshot"
	"github.com/JoshEngebretson/duktape/strtab"
	"github.com/urfave/cli/v2"
)

var (
	seedStringsCommand = &cli.Command{
		Name:   "seed-strings",
		Usage:  "Write a string table holding every name the built-ins use",
		Action: runSeedStrings,
		Flags:  []cli.Flag{stringsFlag, extendFlag, stdoutFlag},
	}
	extendFlag = &cli.BoolFlag{
		Name:  "extend",
		Usage: "Keep the existing table and append missing names, preserving indices",
	}
	stdoutFlag = &cli.BoolFlag{
		Name:  "stdout",
		Usage: "Print the table instead of writing it",
	}
)

func runSeedStrings(ctx *cli.Context) error {
	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}
	if err := applyFlags(ctx, m); err != nil {
		return err
	}

	// Version and build are added by the build info merge; their values
	// do not affect which names are needed.
	merged, err := (&builtins.BuildInfo{}).Merge(builtins.Default(), m.Build.Target, "")
	if err != nil {
		return err
	}
	names := builtins.Strings(merged)

	var tab *strtab.Table
	if ctx.Bool(extendFlag.Name) {
		existing, err := strtab.Load(m.StringTablePath())
		if err != nil {
			return err
		}
		tab = existing.Extend(names)
		log.Infof("extended %d strings to %d", existing.Len(), tab.Len())
	} else if tab, err = strtab.New(names); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tab.Save(&buf); err != nil {
		return err
	}
	if ctx.Bool(stdoutFlag.Name) {
		_, err := ctx.App.Writer.Write(buf.Bytes())
		return err
	}
	if err := writeFile(m.StringTablePath(), buf.Bytes()); err != nil {
		return err
	}
	if tab.Len() > snapshot.MaxStrings {
		log.Warningf("table holds %d strings; only the first %d can be referenced by index", tab.Len(), snapshot.MaxStrings)
	}
	return nil
}
