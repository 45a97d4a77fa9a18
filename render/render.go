package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/revelaction/gazealign/feature"
)

const DefaultFormat = "table"

func SupportedFormats() []string {
	return []string{"table", "json", "csv"}
}

// Renderer writes feature rows to an output stream.
type Renderer interface {
	Render(rows []feature.Row) error
}

// New returns the renderer for a format name, defaulting to the table
// renderer for unknown formats.
func New(format string, w io.Writer) Renderer {
	switch format {
	case "json":
		return NewJSONRenderer(w)
	case "csv":
		return NewCSVRenderer(w)
	default:
		return NewTableRenderer(w)
	}
}

// TableRenderer prints one aligned line per feature row.
type TableRenderer struct {
	W io.Writer
}

func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w}
}

func (r *TableRenderer) Render(rows []feature.Row) error {
	if _, err := fmt.Fprintf(r.W, "%4s %20s %6s %6s %6s %6s %6s\n",
		"aoi#", "aoi", "tok#", "sent", "dist", "depth", "punct"); err != nil {
		return err
	}

	for _, row := range rows {
		idx := "-"
		if row.Matched {
			idx = strconv.Itoa(row.TokenIndex)
		}

		_, err := fmt.Fprintf(r.W, "%4d %20q %6s %6d %6d %6d %6t\n",
			row.AOIIndex, row.AOI, idx, row.SentenceId, row.Distance, row.Depth, row.IsPunct)
		if err != nil {
			return err
		}
	}

	return nil
}

// compile-time interface check
var _ Renderer = (*TableRenderer)(nil)
