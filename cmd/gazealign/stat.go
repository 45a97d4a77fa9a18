package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/gazealign/feature"
	"github.com/revelaction/gazealign/stat"
	"github.com/revelaction/gazealign/storage/filesystem"
	"github.com/urfave/cli/v2"
)

func statCmd() *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "aggregate alignment coverage and dependency metric statistics",
		Flags: []cli.Flag{
			corpusFlag(),
			docFlag(),
			aoiFlag(),
			columnFlag(),
			windowFlag(),
			&cli.StringFlag{
				Name:  "aoi-dir",
				Usage: "directory with one AOI file per doc (same base name); runs over the whole corpus",
			},
		},
		Action: runStat,
	}
}

func runStat(c *cli.Context) error {
	store, err := filesystem.NewDocStore(c.String("corpus"))
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()

	if aoiDir := c.String("aoi-dir"); aoiDir != "" {
		docs, err := store.List()
		if err != nil {
			return err
		}

		for _, meta := range docs {
			aoiPath, ok := findAOIFile(aoiDir, meta.Title)
			if !ok {
				continue
			}

			doc, err := store.Read(meta.Id)
			if err != nil {
				return err
			}

			aoiTokens, err := filesystem.ReadAOI(aoiPath, c.String("column"))
			if err != nil {
				return err
			}

			hdl.Aggregate(feature.Extract(doc, aoiTokens, c.Int("window")))
		}
	} else {
		if c.String("aoi") == "" {
			return fmt.Errorf("either --aoi or --aoi-dir is required")
		}

		doc, err := store.Read(c.Int("doc"))
		if err != nil {
			return err
		}

		aoiTokens, err := filesystem.ReadAOI(c.String("aoi"), c.String("column"))
		if err != nil {
			return err
		}

		hdl.Aggregate(feature.Extract(doc, aoiTokens, c.Int("window")))
	}

	stats := hdl.Get()

	fmt.Fprintf(c.App.Writer, "AOI tokens      %d\n", stats.NumAOI)
	fmt.Fprintf(c.App.Writer, "matched         %d (%.1f%%)\n", stats.NumMatched, stats.Coverage*100)
	fmt.Fprintf(c.App.Writer, "punctuation     %d\n", stats.NumPunct)
	fmt.Fprintf(c.App.Writer, "dep distance    mean %.2f\n", stats.DistanceMean)
	fmt.Fprintf(c.App.Writer, "dep depth       mean %.2f\n", stats.DepthMean)

	printDis(c, "distance", stats.DistanceDis)
	printDis(c, "depth", stats.DepthDis)

	return nil
}

func printDis(c *cli.Context, name string, dis map[int]int) {
	values := make([]int, 0, len(dis))
	for v := range dis {
		values = append(values, v)
	}
	sort.Ints(values)

	for _, v := range values {
		fmt.Fprintf(c.App.Writer, "%s %3d: %d\n", name, v, dis[v])
	}
}
