// pkg/detect/similarity.go
package detect

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/dataprep-go/standardize/pkg/model"
)

// SimilarFormatFamily labels candidates produced by the edit-distance pass
// rather than a regex family
const SimilarFormatFamily = "Similar Format"

// similarityCandidates catches near-duplicates that no regex family
// canonicalizes, such as casing or spacing drift. It compares every unordered
// pair of distinct values not already flagged by the grouping pass and
// proposes the higher-frequency spelling as the target.
//
// The pass is O(U² · L) in the number of distinct values U and average value
// length L; the caller skips it entirely above a configurable ceiling.
func (d *Detector) similarityCandidates(
	ctx context.Context,
	column string,
	freq FrequencyTable,
	flagged map[string]bool,
) ([]model.InconsistencyCandidate, error) {
	pool := make([]string, 0, len(freq))
	for _, value := range freq.SortedValues() {
		if !flagged[value] {
			pool = append(pool, value)
		}
	}

	// Visit values most frequent first so that when one value is similar to
	// several others, losers are paired against the strongest target
	sort.SliceStable(pool, func(i, j int) bool {
		return freq[pool[i]] > freq[pool[j]]
	})

	// Pre-compute the comparison keys once per value
	keys := make([]string, len(pool))
	for i, value := range pool {
		keys[i] = similarityKey(value)
	}

	candidates := make([]model.InconsistencyCandidate, 0)
	proposed := make(map[string]bool)

	for i := 0; i < len(pool); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for j := i + 1; j < len(pool); j++ {
			similarity := normalizedSimilarity(keys[i], keys[j])
			if similarity <= d.cfg.SimilarityThreshold {
				continue
			}

			winner, loser := pickWinner(pool[i], pool[j], freq)
			if proposed[loser] {
				continue
			}

			candidates = append(candidates, model.InconsistencyCandidate{
				Column:            column,
				OriginalValue:     loser,
				OccurrenceCount:   freq[loser],
				StandardizedValue: winner,
				PatternFamily:     SimilarFormatFamily,
			})
			proposed[loser] = true
		}
	}

	return candidates, nil
}

// pickWinner chooses the replacement target for a similar pair: the value
// with the higher occurrence count, with count ties broken by lexicographic
// order for determinism.
func pickWinner(a, b string, freq FrequencyTable) (winner, loser string) {
	switch {
	case freq[a] > freq[b]:
		return a, b
	case freq[b] > freq[a]:
		return b, a
	case a < b:
		return a, b
	default:
		return b, a
	}
}

// similarityKey lowercases a value and strips all whitespace, so the
// comparison ignores casing and spacing drift
func similarityKey(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizedSimilarity maps a pair of strings onto [0, 1], where identical
// strings score 1 and entirely different strings score 0
func normalizedSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}

	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1
	}

	distance := levenshtein(a, b)
	return float64(longer-distance) / float64(longer)
}

// levenshtein computes the edit distance between two strings by classic
// dynamic programming over an (m+1) x (n+1) matrix
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	m := len(ra)
	n := len(rb)

	matrix := make([][]int, m+1)
	for i := range matrix {
		matrix[i] = make([]int, n+1)
		matrix[i][0] = i
	}
	for j := 0; j <= n; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost

			minimum := deletion
			if insertion < minimum {
				minimum = insertion
			}
			if substitution < minimum {
				minimum = substitution
			}
			matrix[i][j] = minimum
		}
	}

	return matrix[m][n]
}
