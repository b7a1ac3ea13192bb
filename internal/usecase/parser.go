package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	// Matches a throughput target: first 2-6 digit integer, optionally
	// followed by a unit hint. The hint is not required or validated.
	throughputRegex = regexp.MustCompile(`(\d{2,6})\s*(pcs|pieces|per hour|/hr|units)?`)

	// Matches a dough weight: 1-4 digit integer or decimal immediately
	// followed by a gram token, optionally preceded by "dough weight of".
	doughWeightRegex = regexp.MustCompile(`(?:dough\s*weight\s*(?:of)?\s*)?(\d{1,4}(?:\.\d+)?)\s*(?:grams|gram|g)\b`)
)

// nonProductTerms are structural words that disqualify a candidate phrase
// from product classification. Matched as substrings, like the requirement
// text they come from.
var nonProductTerms = []string{
	"line", "per hour", "capacity", "dough", "weight",
	"needed", "make", "produce", "for", "machine",
}

// ParsedRequirement holds the structured fields extracted from a free-text
// requirement. Product is empty and nil fields stay nil when the text does
// not yield them.
type ParsedRequirement struct {
	Product      string
	ProductScore int
	DoughWeight  *float64
	Throughput   *int
}

// RequirementParser extracts product, dough weight and throughput from an
// unstructured natural-language requirement string.
type RequirementParser struct {
	classifier         *Classifier
	productThreshold   int
	enableDebugLogging bool
}

// NewRequirementParser creates a requirement parser. A non-positive threshold
// falls back to ProductMatchThreshold.
func NewRequirementParser(classifier *Classifier, productThreshold int, enableDebugLogging bool) *RequirementParser {
	if productThreshold <= 0 {
		productThreshold = ProductMatchThreshold
	}
	return &RequirementParser{
		classifier:         classifier,
		productThreshold:   productThreshold,
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse extracts the structured fields from text against the given canonical
// product vocabulary. Numeric extraction and product extraction are
// independent: both regexes run over the full input text, never over the
// filtered candidate phrases.
func (p *RequirementParser) Parse(text string, products []string) ParsedRequirement {
	lower := strings.ToLower(text)
	var parsed ParsedRequirement

	if m := throughputRegex.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			parsed.Throughput = &n
		}
	}

	if m := doughWeightRegex.FindStringSubmatch(lower); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil {
			parsed.DoughWeight = &w
		}
	}

	candidates := productCandidates(lower)
	bestProduct, bestScore := "", 0
	for _, phrase := range candidates {
		match, score, ok := p.classifier.Classify(NormalizeProduct(phrase), products, 0)
		if ok && score > bestScore {
			bestProduct = match
			bestScore = score
		}
	}
	if bestScore >= p.productThreshold {
		parsed.Product = bestProduct
		parsed.ProductScore = bestScore
	}

	if p.enableDebugLogging {
		log.Printf("[PARSE] %q -> product=%q (score %d) dough=%v throughput=%v",
			text, parsed.Product, bestScore, parsed.DoughWeight, parsed.Throughput)
	}

	return parsed
}

// productCandidates generates the candidate phrase pool: all contiguous word
// n-grams (n = 1..3) plus the whole input, minus phrases containing a
// structural term. If that filter removes every candidate, the full pool
// is kept instead.
func productCandidates(text string) []string {
	words := strings.Fields(text)
	candidates := make([]string, 0, len(words)*3+1)
	for i := range words {
		for n := 1; n <= 3 && i+n <= len(words); n++ {
			candidates = append(candidates, strings.Join(words[i:i+n], " "))
		}
	}
	candidates = append(candidates, text)

	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !containsStopTerm(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}

func containsStopTerm(phrase string) bool {
	for _, term := range nonProductTerms {
		if strings.Contains(phrase, term) {
			return true
		}
	}
	return false
}
