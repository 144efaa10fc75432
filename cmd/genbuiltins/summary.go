package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/JoshEngebretson/duktape/snapshot"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var summaryCommand = &cli.Command{
	Name:      "summary",
	Usage:     "Print a CBOR build summary",
	ArgsUsage: "[summary.cbor]",
	Action:    runSummary,
}

func runSummary(ctx *cli.Context) error {
	var path string
	switch ctx.NArg() {
	case 0:
		m, err := loadManifest(ctx)
		if err != nil {
			return err
		}
		if path = m.SummaryPath(); path == "" {
			return errors.New("no summary file given and none configured in [output]")
		}
	case 1:
		path = ctx.Args().First()
	default:
		return errors.New("too many arguments")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s, err := snapshot.UnmarshalSummary(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "version %d, build %q\n", s.Version, s.Build)
	fmt.Fprintf(w, "%d objects, %d native functions\n", len(s.Objects), len(s.Natives))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Order", "Bytes", "Normal props", "Func props", "Interned", "Verbatim", "SHA-256"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, v := range s.Variants {
		table.Append([]string{
			v.Order,
			strconv.Itoa(v.Length),
			strconv.Itoa(v.Stats.NormalProps),
			strconv.Itoa(v.Stats.FunctionProps),
			strconv.Itoa(v.Stats.Interned),
			strconv.Itoa(v.Stats.Verbatim),
			hex.EncodeToString(v.Digest[:]),
		})
	}
	table.Render()
	return nil
}
