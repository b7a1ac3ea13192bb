// Package similarity provides string similarity scorers for fuzzy
// classification.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// nonAlphanumericRegex strips punctuation before tokenization
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)

// TokenSortScorer computes a token-order-insensitive similarity score in
// [0,100]. Both strings are lowercased, stripped of punctuation, tokenized,
// sorted alphabetically and rejoined, then compared with a normalized
// Levenshtein similarity. "fruit bun" and "bun fruit" score 100.
type TokenSortScorer struct{}

// NewTokenSortScorer creates a token-sort similarity scorer
func NewTokenSortScorer() *TokenSortScorer {
	return &TokenSortScorer{}
}

// Score returns the token-sort similarity between a and b in [0,100]
func (s *TokenSortScorer) Score(a, b string) int {
	na := sortTokens(a)
	nb := sortTokens(b)

	if na == nb {
		return 100
	}
	if na == "" || nb == "" {
		return 0
	}

	sim, err := edlib.StringsSimilarity(na, nb, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return int(math.Round(float64(sim) * 100))
}

// sortTokens normalizes a string to its sorted-token form
func sortTokens(s string) string {
	cleaned := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(s), " ")
	tokens := strings.Fields(cleaned)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
