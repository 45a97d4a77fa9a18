package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/gazealign/feature"
)

// JSONRenderer writes feature rows as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes feature rows as a JSON array.
func (r *JSONRenderer) Render(rows []feature.Row) error {
	if rows == nil {
		rows = []feature.Row{}
	}
	return json.NewEncoder(r.W).Encode(rows)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
