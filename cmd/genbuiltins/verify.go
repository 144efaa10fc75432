package main

import (
	"encoding/hex"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var verifyCommand = &cli.Command{
	Name:   "verify",
	Usage:  "Compile the built-ins, decode every variant and check they agree",
	Action: runVerify,
	Flags: []cli.Flag{
		infoFlag,
		stringsFlag,
		byteOrderFlag,
		tagByteOrderFlag,
	},
}

func runVerify(ctx *cli.Context) error {
	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}
	if err := applyFlags(ctx, m); err != nil {
		return err
	}
	b, tab, err := compile(m)
	if err != nil {
		return err
	}
	checks, err := b.Verify(tab)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Order", "Bytes", "Objects", "Normal props", "Func props", "Fingerprint"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, c := range checks {
		table.Append([]string{
			c.Order.String(),
			strconv.Itoa(len(b.Variants[i].Data)),
			strconv.Itoa(c.Objects),
			strconv.Itoa(c.NormalProps),
			strconv.Itoa(c.FunctionProps),
			hex.EncodeToString(c.Fingerprint[:8]),
		})
	}
	table.Render()
	log.Noticef("%d variants verified", len(checks))
	return nil
}
