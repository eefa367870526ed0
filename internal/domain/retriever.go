package domain

import (
	"context"
)

// DocumentRetriever defines the interface (port) to the vector similarity
// store. Given a query embedding it returns the topN most similar corpus
// chunks as raw text, ranked by similarity.
type DocumentRetriever interface {
	Query(ctx context.Context, vector []float32, topN int) ([]string, error)
}
