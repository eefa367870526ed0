package service

import (
	"math/rand"
	"sync"
)

// DiversitySelector filters an over-sampled candidate list down to a set of
// mutually dissimilar documents. Candidates are shuffled first so that
// repeated calls surface different subsets of near-duplicates instead of
// always favoring retrieval rank.
type DiversitySelector struct {
	threshold float64

	mu  sync.Mutex // guards rng; Select may be called from concurrent requests
	rng *rand.Rand
}

// NewDiversitySelector creates a selector that rejects any candidate whose
// similarity to an already accepted document exceeds threshold. The seed
// makes the shuffle deterministic for tests.
func NewDiversitySelector(threshold float64, seed int64) *DiversitySelector {
	return &DiversitySelector{
		threshold: threshold,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Select returns up to k documents from candidates such that no two returned
// documents have pairwise Jaccard similarity above the threshold. An empty
// result is a valid outcome, not an error: it means every candidate collided
// with another above the threshold.
func (s *DiversitySelector) Select(candidates []string, k int) []string {
	shuffled := make([]string, len(candidates))
	copy(shuffled, candidates)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	selected := make([]string, 0, k)
	for _, doc := range shuffled {
		if len(selected) >= k {
			break
		}
		tooSimilar := false
		for _, prev := range selected {
			if JaccardSimilarity(doc, prev) > s.threshold {
				tooSimilar = true
				break
			}
		}
		if !tooSimilar {
			selected = append(selected, doc)
		}
	}
	return selected
}
