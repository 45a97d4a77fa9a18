package main

import (
	"fmt"

	"github.com/revelaction/gazealign/align"
	"github.com/revelaction/gazealign/storage/filesystem"
	"github.com/urfave/cli/v2"
)

func alignCmd() *cli.Command {
	return &cli.Command{
		Name:  "align",
		Usage: "align an AOI token file against a parsed doc",
		Flags: []cli.Flag{
			corpusFlag(),
			docFlag(),
			aoiFlag(),
			columnFlag(),
			windowFlag(),
		},
		Action: runAlign,
	}
}

func runAlign(c *cli.Context) error {
	store, err := filesystem.NewDocStore(c.String("corpus"))
	if err != nil {
		return err
	}

	doc, err := store.Read(c.Int("doc"))
	if err != nil {
		return err
	}

	aoiTokens, err := filesystem.ReadAOI(c.String("aoi"), c.String("column"))
	if err != nil {
		return err
	}

	surfaces := doc.Surfaces()
	mapping := align.Align(aoiTokens, surfaces, c.Int("window"))

	for i, idx := range mapping {
		if idx == align.NoMatch {
			fmt.Fprintf(c.App.Writer, "%4d %20q -> no match\n", i, aoiTokens[i])
			continue
		}
		fmt.Fprintf(c.App.Writer, "%4d %20q -> %d %q\n", i, aoiTokens[i], idx, surfaces[idx])
	}

	fmt.Fprintf(c.App.Writer, "coverage %.1f%% (%d AOI tokens)\n", align.Coverage(mapping)*100, len(mapping))

	return nil
}
