// Package norm provides the two-pass token normalization used by the
// aligner. The AOI token and every candidate window of parser tokens are
// normalized identically before comparison.
package norm

import (
	"regexp"
	"strings"
)

var (
	// Loose pass: keep word characters, apostrophes and hyphens.
	looseRe = regexp.MustCompile(`[^\p{L}\p{N}_'\-]+`)

	// Strict pass: additionally drop apostrophes and hyphens.
	strictRe = regexp.MustCompile(`['\-]`)
)

// Loose lowercases s and strips punctuation except apostrophes and hyphens.
// Contractions ("won't") and hyphenated compounds ("well-known") survive
// this pass intact.
func Loose(s string) string {
	return looseRe.ReplaceAllString(strings.ToLower(s), "")
}

// Strict is Loose with apostrophes and hyphens removed as well, for
// tolerant matching when the parser splits them inconsistently.
func Strict(s string) string {
	return strictRe.ReplaceAllString(Loose(s), "")
}
