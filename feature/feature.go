// Package feature ties alignment and dependency metrics into per-AOI-token
// feature rows, the unit the reading-time pipeline consumes.
package feature

import (
	"github.com/revelaction/gazealign/align"
	"github.com/revelaction/gazealign/dep"
	sent "github.com/revelaction/gazealign/sentence"
)

// Row is the feature record for one AOI token.
type Row struct {
	DocId    int    `json:"doc"`
	AOIIndex int    `json:"aoi_index"`
	AOI      string `json:"aoi"`

	// TokenIndex is the index into the flattened doc tokens of the first
	// parser token consumed for this AOI, or align.NoMatch.
	TokenIndex int    `json:"token_index"`
	Text       string `json:"text,omitempty"`
	SentenceId int    `json:"sent"`

	Distance int  `json:"dep_distance"`
	Depth    int  `json:"dep_depth"`
	IsPunct  bool `json:"is_punct"`
	Matched  bool `json:"matched"`
}

// Extract aligns aoiTokens against doc and fills one Row per AOI token.
// Punctuation tokens get their metrics zeroed here; the dep package itself
// never mutates.
func Extract(doc sent.Doc, aoiTokens []string, maxWindow int) []Row {
	tokens := doc.Flatten()
	surfaces := make([]string, len(tokens))
	for i, tok := range tokens {
		surfaces[i] = tok.Text
	}

	mapping := align.Align(aoiTokens, surfaces, maxWindow)
	tree := dep.NewTree(doc)

	rows := make([]Row, len(aoiTokens))
	for i, aoi := range aoiTokens {
		row := Row{
			DocId:      doc.Id,
			AOIIndex:   i,
			AOI:        aoi,
			TokenIndex: mapping[i],
		}

		if mapping[i] != align.NoMatch {
			tok := tokens[mapping[i]]
			row.Text = tok.Text
			row.SentenceId = tok.SentenceId
			row.Matched = true
			row.IsPunct = tok.IsPunct()
			if !row.IsPunct {
				row.Distance = tree.Distance(tok)
				row.Depth = tree.Depth(tok)
			}
		}

		rows[i] = row
	}

	return rows
}

// Coverage returns the fraction of rows with a matched parser token,
// 0 for no rows.
func Coverage(rows []Row) float64 {
	if len(rows) == 0 {
		return 0
	}

	matched := 0
	for _, row := range rows {
		if row.Matched {
			matched++
		}
	}

	return float64(matched) / float64(len(rows))
}
