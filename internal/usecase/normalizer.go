package usecase

import "strings"

// NormalizeProduct canonicalizes a raw product phrase: lowercase and trim,
// exact synonym lookup, then a naive singularization fallback that strips a
// trailing "s" unless the word ends in "ss". Rule-based only, no fuzzy
// matching, and idempotent for any string already in canonical form.
func NormalizeProduct(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := productSynonyms[p]; ok {
		return canonical
	}
	if strings.HasSuffix(p, "s") && !strings.HasSuffix(p, "ss") {
		return strings.TrimSuffix(p, "s")
	}
	return p
}
