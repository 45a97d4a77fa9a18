// Package align maps a human-curated Area-of-Interest token stream onto
// the finer-grained tokenization of a syntactic parser.
//
// AOI tokens keep punctuation and compounds attached ("won't", "room.",
// "well-known") while parsers split them ("wo"+"n't", "room"+".",
// "well"+"-"+"known"). The aligner reconciles the two by concatenating
// short windows of parser tokens and comparing under the two norm passes.
package align

import (
	"strings"

	"github.com/revelaction/gazealign/norm"
)

// NoMatch marks an AOI token that could not be reconstructed from parser
// tokens. It is a result value, not an error: callers decide how to treat
// unmatched tokens.
const NoMatch = -1

// DefaultMaxWindow covers a three-part hyphenation plus attached trailing
// punctuation.
const DefaultMaxWindow = 4

// Align maps every AOI token to the index of the first parser token
// consumed in its reconstruction, or NoMatch.
//
// The cursor into docTokens only moves forward, so matched indices are
// strictly increasing across the AOI sequence. For each AOI token the
// windows of width 1..maxWindow starting at the cursor are concatenated
// and compared first under norm.Loose, then under norm.Strict; the
// smallest matching window wins and the cursor jumps past it. An unmatched
// AOI token records NoMatch and advances the cursor by one, so the scan
// always makes progress.
func Align(aoiTokens, docTokens []string, maxWindow int) []int {
	if maxWindow < 1 {
		maxWindow = 1
	}

	mapping := make([]int, len(aoiTokens))
	n := len(docTokens)
	j := 0

	for i, aoi := range aoiTokens {
		mapping[i] = NoMatch

		loose := norm.Loose(aoi)

		// Pure punctuation AOIs carry nothing through normalization;
		// match them literally against the token at the cursor.
		if loose == "" {
			raw := strings.TrimSpace(aoi)
			if raw == "" || j >= n {
				continue
			}
			if strings.TrimSpace(docTokens[j]) == raw {
				mapping[i] = j
			}
			j++
			continue
		}

		end := j + maxWindow
		if end > n {
			end = n
		}

		w := matchWindow(docTokens[j:end], loose, norm.Strict(aoi))
		if w == 0 {
			if j < n {
				j++
			}
			continue
		}

		mapping[i] = j
		j += w
	}

	return mapping
}

// matchWindow returns the width of the smallest window whose concatenation
// equals the target, scanning all widths under the loose pass before
// retrying under the strict pass. It returns 0 when no window matches.
func matchWindow(tokens []string, loose, strict string) int {
	if w := scan(tokens, loose, norm.Loose); w > 0 {
		return w
	}

	return scan(tokens, strict, norm.Strict)
}

func scan(tokens []string, target string, pass func(string) string) int {
	var cat strings.Builder
	for i, tok := range tokens {
		cat.WriteString(tok)
		if pass(cat.String()) == target {
			return i + 1
		}
	}

	return 0
}

// Coverage returns the fraction of AOI tokens with a match, 0 for an
// empty mapping.
func Coverage(mapping []int) float64 {
	if len(mapping) == 0 {
		return 0
	}

	matched := 0
	for _, idx := range mapping {
		if idx != NoMatch {
			matched++
		}
	}

	return float64(matched) / float64(len(mapping))
}
