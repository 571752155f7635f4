// Package parser implements the layout-discovery heuristics: string
// normalization, fuzzy matching against the canonical catalog, header
// row location, multi-table detection, and data-row extraction.
package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents folds accented letters to their base form (á→a, ñ→n) by
// decomposing and removing combining marks.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	abbrevDots = regexp.MustCompile(`(\p{L})\.+`)
	spaceRuns  = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw cell or label value for comparison. It
// lower-cases, trims, folds accents, drops periods that directly follow
// a letter ("n. canto" → "n canto"), and collapses whitespace runs to a
// single space. Normalize is total and idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	s = abbrevDots.ReplaceAllString(s, "$1")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
