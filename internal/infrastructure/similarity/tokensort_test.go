package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSortScorer_Score(t *testing.T) {
	scorer := NewTokenSortScorer()

	t.Run("identical strings score 100", func(t *testing.T) {
		assert.Equal(t, 100, scorer.Score("spiral mixer", "spiral mixer"))
	})

	t.Run("token order does not matter", func(t *testing.T) {
		assert.Equal(t, 100, scorer.Score("fruit bun", "bun fruit"))
	})

	t.Run("case and punctuation do not matter", func(t *testing.T) {
		assert.Equal(t, 100, scorer.Score("Rotary-Rack Oven", "rotary rack oven"))
	})

	t.Run("empty against non-empty scores 0", func(t *testing.T) {
		assert.Equal(t, 0, scorer.Score("", "croissant"))
		assert.Equal(t, 0, scorer.Score("croissant", ""))
	})

	t.Run("both empty score 100", func(t *testing.T) {
		assert.Equal(t, 100, scorer.Score("", ""))
	})

	t.Run("close misspelling scores high", func(t *testing.T) {
		score := scorer.Score("crossant", "croissant")
		assert.GreaterOrEqual(t, score, 80)
		assert.Less(t, score, 100)
	})

	t.Run("unrelated strings score low", func(t *testing.T) {
		assert.Less(t, scorer.Score("forklift", "croissant"), 50)
	})

	t.Run("score stays within range", func(t *testing.T) {
		pairs := [][2]string{
			{"spiral mixer", "planetary mixer"},
			{"bread loaf", "loaf of bread"},
			{"a", "zzzzzzzzzz"},
			{"pão de queijo", "cheese bread"},
		}
		for _, p := range pairs {
			score := scorer.Score(p[0], p[1])
			assert.GreaterOrEqual(t, score, 0, "pair %v", p)
			assert.LessOrEqual(t, score, 100, "pair %v", p)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, scorer.Score("dough divider", "divider"), scorer.Score("divider", "dough divider"))
	})
}

func TestSortTokens(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Bun Fruit", "bun fruit"},
		{"fruit bun", "bun fruit"},
		{"  spiral   mixer ", "mixer spiral"},
		{"rack-oven (rotary)", "oven rack rotary"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, sortTokens(tc.in), "sortTokens(%q)", tc.in)
	}
}
