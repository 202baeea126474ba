// pkg/detect/grouping.go
package detect

import (
	"github.com/dataprep-go/standardize/pkg/model"
	"github.com/dataprep-go/standardize/pkg/pattern"
)

// groupingCandidates classifies and canonicalizes every distinct value and
// emits a candidate for each value whose canonical form differs from the
// original. Values already in canonical form are never candidates themselves,
// but they stay in the frequency table as potential similarity targets.
//
// The returned set holds every original value that was emitted, so the
// similarity pass can exclude it.
func (d *Detector) groupingCandidates(
	column string,
	freq FrequencyTable,
) ([]model.InconsistencyCandidate, map[string]bool) {
	candidates := make([]model.InconsistencyCandidate, 0)
	flagged := make(map[string]bool)

	for _, value := range freq.SortedValues() {
		match := pattern.Classify(value)

		canonical := value
		if match.Family == pattern.FamilyText {
			// The fallback family is never canonicalized beyond a whitespace
			// collapse, which applies regardless of its low confidence
			canonical = pattern.Canonicalize(value, pattern.FamilyText)
		} else if match.Confidence > d.cfg.ConfidenceCutoff {
			canonical = pattern.Canonicalize(value, match.Family)
		}

		if canonical == value {
			continue
		}

		candidates = append(candidates, model.InconsistencyCandidate{
			Column:            column,
			OriginalValue:     value,
			OccurrenceCount:   freq[value],
			StandardizedValue: canonical,
			PatternFamily:     match.Family.String(),
		})
		flagged[value] = true
	}

	return candidates, flagged
}
