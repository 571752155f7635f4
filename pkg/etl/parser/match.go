package parser

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

// score rates how well a normalized query resembles a normalized
// pattern on a 0-100 scale. The whole-string ratio handles misspelled
// or re-accented names; the partial ratio handles queries truncated or
// prefixed with extra tokens ("Etiqueta Areté" vs "areté"). The better
// of the two wins.
func score(query, pattern string) int {
	r := fuzzy.Ratio(query, pattern)
	if p := fuzzy.PartialRatio(query, pattern); p > r {
		r = p
	}
	return r
}

// MatchKey returns the canonical key of the globally best-scoring
// pattern in sets whose score meets threshold (0-100), or "" when none
// qualifies. Sets are enumerated in slice order and only a strictly
// higher score replaces the current best, so when several keys tie at
// the maximal score the first one enumerated wins.
func MatchKey(raw string, sets []models.PatternSet, threshold int) string {
	query := Normalize(raw)
	if query == "" {
		return ""
	}
	best := ""
	bestScore := 0
	for _, set := range sets {
		for _, pattern := range set.Patterns {
			s := score(query, Normalize(pattern))
			if s >= threshold && s > bestScore {
				bestScore = s
				best = set.Key
			}
		}
	}
	return best
}
