package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/gazealign/feature"
	"github.com/revelaction/gazealign/render"
	"github.com/revelaction/gazealign/storage"
	"github.com/revelaction/gazealign/storage/filesystem"
	"github.com/revelaction/gazealign/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
)

func featuresCmd() *cli.Command {
	return &cli.Command{
		Name:  "features",
		Usage: "extract per-AOI-token feature rows (alignment + dependency metrics)",
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
			&cli.StringFlag{
				Name:  "format",
				Value: render.DefaultFormat,
				Usage: "output format: " + strings.Join(render.SupportedFormats(), ", "),
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "sqlite file to persist the extracted rows",
			},
		},
		Action: runFeatures,
	}
}

func runFeatures(c *cli.Context) error {
	store, err := filesystem.NewDocStore(c.String("corpus"))
	if err != nil {
		return err
	}

	writer, closePool, err := featureWriter(c.String("db"))
	if err != nil {
		return err
	}
	defer closePool()

	if c.String("aoi-dir") != "" {
		return runFeaturesBatch(c, store, writer)
	}

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

	rows := feature.Extract(doc, aoiTokens, c.Int("window"))

	if writer != nil {
		if err := writer.Write(doc, rows); err != nil {
			return err
		}
	}

	r := render.New(c.String("format"), c.App.Writer)
	return r.Render(rows)
}

func runFeaturesBatch(c *cli.Context, store *filesystem.DocStore, writer storage.FeatureWriter) error {
	docs, err := store.List()
	if err != nil {
		return err
	}

	aoiDir := c.String("aoi-dir")

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	var all []feature.Row
	skipped := 0

	for _, meta := range docs {
		bar.Incr()

		aoiPath, ok := findAOIFile(aoiDir, meta.Title)
		if !ok {
			skipped++
			continue
		}

		doc, err := store.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		aoiTokens, err := filesystem.ReadAOI(aoiPath, c.String("column"))
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read AOI file %s: %w", aoiPath, err)
		}

		rows := feature.Extract(doc, aoiTokens, c.Int("window"))

		if writer != nil {
			if err := writer.Write(doc, rows); err != nil {
				uiprogress.Stop()
				return fmt.Errorf("failed to write features for %s: %w", meta.Title, err)
			}
		}

		all = append(all, rows...)
	}

	uiprogress.Stop()

	if skipped > 0 {
		fmt.Fprintf(c.App.Writer, "skipped %d docs without AOI file\n", skipped)
	}

	r := render.New(c.String("format"), c.App.Writer)
	return r.Render(all)
}

// findAOIFile resolves the AOI file for a doc title: same base name with a
// .csv or .txt extension inside aoiDir.
func findAOIFile(aoiDir, title string) (string, bool) {
	base := strings.TrimSuffix(title, filepath.Ext(title))

	for _, ext := range []string{".csv", ".txt"} {
		path := filepath.Join(aoiDir, base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// featureWriter opens the sqlite feature store when a db path is given.
// The returned close func is a no-op otherwise.
func featureWriter(dbPath string) (storage.FeatureWriter, func(), error) {
	if dbPath == "" {
		return nil, func() {}, nil
	}

	pool, err := zombiezen.NewPool(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := zombiezen.CreateFeatureTables(pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to create features table: %w", err)
	}

	return zombiezen.NewFeatureStore(pool), func() { pool.Close() }, nil
}
