package usecase

import (
	"github.com/autobake/backend/internal/domain"
)

// Classifier resolves free text against a candidate vocabulary using an
// injected similarity scorer.
type Classifier struct {
	scorer domain.SimilarityScorer
}

// NewClassifier creates a classifier backed by the given scorer
func NewClassifier(scorer domain.SimilarityScorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify returns the candidate with the highest similarity to text. The
// comparison is strictly greater-than, so score ties resolve to the earliest
// candidate in the slice. Candidates are always passed as ordered slices,
// never map iterations. ok is false when no candidate reaches the threshold
// or the candidate list is empty.
func (c *Classifier) Classify(text string, candidates []string, threshold int) (best string, bestScore int, ok bool) {
	bestScore = -1
	for _, candidate := range candidates {
		score := c.scorer.Score(text, candidate)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < 0 || bestScore < threshold {
		return "", bestScore, false
	}
	return best, bestScore, true
}

// StageForCategory maps a raw catalog category label to its canonical stage
// by classifying it against the ordered category vocabulary. ok is false when
// no phrasing scores at or above the threshold.
func (c *Classifier) StageForCategory(category string, threshold int) (string, bool) {
	match, _, ok := c.Classify(category, stageCategoryNames, threshold)
	if !ok {
		return "", false
	}
	return stageByCategory[match], true
}
