package matching

import (
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
)

// indel counts insertions and deletions only; a substitution costs one of each.
var indel = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   2,
}

// QRatio scores the similarity of a and b in [0, 100] from their
// insert/delete edit distance. Comparison is exact on runes and order
// sensitive; callers normalize case. An empty string on either side scores 0.
func QRatio(a, b string) float64 {
	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	if lenA == 0 || lenB == 0 {
		return 0
	}

	total := float64(lenA + lenB)
	distance := float64(indel.Distance(a, b))
	return 100 * (1 - distance/total)
}
