// genbuiltins compiles the built-in object descriptors into bit-packed init
// data and emits it as a C source and header pair.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JoshEngebretson/duktape/manifest"
	"github.com/tliron/commonlog"
	"github.com/urfave/cli/v2"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("genbuiltins")

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to " + manifest.FileName + " (default: search upward from the working directory)",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Log verbosity: 0 notices, 1 info, 2 debug; negative values are quieter",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "genbuiltins",
		Usage: "Compile built-in object descriptors into init data",
		Flags: []cli.Flag{configFlag, verbosityFlag},
		Before: func(ctx *cli.Context) error {
			commonlog.Configure(ctx.Int(verbosityFlag.Name), nil)
			return nil
		},
		Action: runBuild,
		Commands: []*cli.Command{
			buildCommand,
			verifyCommand,
			seedStringsCommand,
			summaryCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadManifest reads the manifest named by --config, or the nearest one
// above the working directory, or falls back to the defaults rooted at the
// working directory.
func loadManifest(ctx *cli.Context) (*manifest.Manifest, error) {
	if path := ctx.String(configFlag.Name); path != "" {
		return manifest.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	m, err := manifest.FindAndLoad(wd)
	if err != nil {
		return nil, err
	}
	if m == nil {
		log.Infof("no %s found, using defaults", manifest.FileName)
		m = manifest.Default(wd)
	}
	return m, nil
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Noticef("wrote %s (%d bytes)", path, len(data))
	return nil
}
