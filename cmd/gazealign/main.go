package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Build information. Populated at build time via ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	app := &cli.App{
		Name:  "gazealign",
		Usage: "align AOI token streams to parsed corpora and compute dependency features",
		Commands: []*cli.Command{
			alignCmd(),
			featuresCmd(),
			statCmd(),
			inspectCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gazealign: %v\n", err)
		os.Exit(1)
	}
}

func corpusFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "corpus",
		Value: "./corpus/token",
		Usage: "directory with parsed doc JSON files",
	}
}

func docFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "doc",
		Usage: "doc id inside the corpus directory",
	}
}

func aoiFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "aoi",
		Usage: "AOI token file (.csv with a word column, or one token per line)",
	}
}

func columnFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "column",
		Value: "word",
		Usage: "CSV header column holding the AOI surface form",
	}
}

func windowFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "window",
		Value: 4,
		Usage: "max number of parser tokens concatenated per AOI token",
	}
}
