package retriever

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/osglvelarde/LicenPrepAI/internal/config"
	"github.com/osglvelarde/LicenPrepAI/internal/domain"
	"github.com/osglvelarde/LicenPrepAI/internal/logger"

	"go.uber.org/zap"
)

const maxErrorBodyBytes = 1024

// ChromaStore implements the domain.DocumentRetriever interface against a
// Chroma server's HTTP API. The collection handle is resolved once at
// construction and treated as immutable for the lifetime of the process.
type ChromaStore struct {
	baseURL      string
	collection   string
	collectionID string
	http         *http.Client
}

type chromaCollection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type chromaQueryResult struct {
	Documents [][]string `json:"documents"`
}

// NewChromaStore connects to the Chroma server, verifies it is reachable,
// and resolves (creating if needed) the configured collection.
func NewChromaStore(cfg config.ChromaConfig) (*ChromaStore, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("chroma URL cannot be empty")
	}
	if cfg.Collection == "" {
		return nil, fmt.Errorf("chroma collection name cannot be empty")
	}

	s := &ChromaStore{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		collection: cfg.Collection,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	ctx := context.Background()
	if err := s.verifyReady(ctx); err != nil {
		return nil, err
	}
	if err := s.resolveCollection(ctx); err != nil {
		return nil, err
	}

	logger.Get().Info("Chroma document store ready",
		zap.String("url", s.baseURL),
		zap.String("collection", s.collection),
		zap.String("collection_id", s.collectionID),
	)
	return s, nil
}

// Query returns the topN most similar corpus chunks for the given embedding.
func (s *ChromaStore) Query(ctx context.Context, vector []float32, topN int) ([]string, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("query vector required")
	}
	if topN <= 0 {
		topN = 10
	}

	req := map[string]any{
		"query_embeddings": [][]float32{vector},
		"n_results":        topN,
		"include":          []string{"documents"},
	}
	var result chromaQueryResult
	path := fmt.Sprintf("/api/v1/collections/%s/query", s.collectionID)
	if err := s.doJSON(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}

	if len(result.Documents) == 0 {
		return []string{}, nil
	}
	return result.Documents[0], nil
}

func (s *ChromaStore) verifyReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/v1/heartbeat", nil)
	if err != nil {
		return fmt.Errorf("failed to build chroma heartbeat request: %w", err)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return classifyCallError("chroma heartbeat failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chroma heartbeat returned status=%d", resp.StatusCode)
	}
	return nil
}

func (s *ChromaStore) resolveCollection(ctx context.Context) error {
	req := map[string]any{
		"name":          s.collection,
		"get_or_create": true,
	}
	var coll chromaCollection
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/collections", req, &coll); err != nil {
		return fmt.Errorf("failed to resolve chroma collection %q: %w", s.collection, err)
	}
	if coll.ID == "" {
		return fmt.Errorf("chroma returned no id for collection %q", s.collection)
	}
	s.collectionID = coll.ID
	return nil
}

func (s *ChromaStore) doJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(in); err != nil {
			return fmt.Errorf("failed to encode chroma request: %w", err)
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build chroma request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return classifyCallError("chroma request failed", err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 10*maxErrorBodyBytes))
	if readErr != nil {
		return fmt.Errorf("failed to read chroma response: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chroma http status=%d body=%q", resp.StatusCode, truncateBody(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode chroma response: %w", err)
	}
	return nil
}

func classifyCallError(message string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: timeout: %w", message, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: timeout: %w", message, err)
	}
	return fmt.Errorf("%s: %w", message, err)
}

func truncateBody(raw []byte) string {
	if len(raw) <= maxErrorBodyBytes {
		return string(raw)
	}
	return string(raw[:maxErrorBodyBytes]) + "..."
}

var _ domain.DocumentRetriever = (*ChromaStore)(nil)
