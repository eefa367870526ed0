package service

import "strings"

// JaccardSimilarity computes word-level Jaccard similarity between two texts.
// Both texts are lower-cased and whitespace-tokenized into word sets; the
// similarity is |intersection| / |union|, defined as 0 when both sets are
// empty.
func JaccardSimilarity(a, b string) float64 {
	aSet := wordSet(a)
	bSet := wordSet(b)

	union := len(aSet)
	intersection := 0
	for word := range bSet {
		if _, ok := aSet[word]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
