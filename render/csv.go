package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/revelaction/gazealign/feature"
)

// CSVRenderer writes feature rows as CSV, the format the reading-time
// pipeline consumes downstream.
type CSVRenderer struct {
	W io.Writer
}

// NewCSVRenderer creates a CSVRenderer writing to w.
func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{W: w}
}

func (r *CSVRenderer) Render(rows []feature.Row) error {
	w := csv.NewWriter(r.W)

	header := []string{"doc_id", "aoi_index", "aoi", "token_index", "sent_id", "text", "dep_distance", "dep_depth", "is_punct", "matched"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.DocId),
			strconv.Itoa(row.AOIIndex),
			row.AOI,
			strconv.Itoa(row.TokenIndex),
			strconv.Itoa(row.SentenceId),
			row.Text,
			strconv.Itoa(row.Distance),
			strconv.Itoa(row.Depth),
			strconv.FormatBool(row.IsPunct),
			strconv.FormatBool(row.Matched),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// compile-time interface check
var _ Renderer = (*CSVRenderer)(nil)
