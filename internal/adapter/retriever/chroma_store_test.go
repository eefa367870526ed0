package retriever

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/osglvelarde/LicenPrepAI/internal/config"
	"github.com/osglvelarde/LicenPrepAI/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// fakeChroma serves the minimal surface the store touches: heartbeat,
// collection resolution, and query.
func fakeChroma(t *testing.T, queryHandler http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/heartbeat", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int64{"nanosecond heartbeat": 1})
	})
	mux.HandleFunc("/api/v1/collections", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "medibot_chunks", body["name"])
		assert.Equal(t, true, body["get_or_create"])
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "coll-123", "name": "medibot_chunks"})
	})
	if queryHandler != nil {
		mux.HandleFunc("/api/v1/collections/coll-123/query", queryHandler)
	}
	return httptest.NewServer(mux)
}

func TestNewChromaStore_ResolvesCollection(t *testing.T) {
	server := fakeChroma(t, nil)
	defer server.Close()

	store, err := NewChromaStore(config.ChromaConfig{URL: server.URL, Collection: "medibot_chunks"})
	require.NoError(t, err)
	assert.Equal(t, "coll-123", store.collectionID)
}

func TestNewChromaStore_ConfigValidation(t *testing.T) {
	_, err := NewChromaStore(config.ChromaConfig{Collection: "medibot_chunks"})
	assert.Error(t, err)

	_, err = NewChromaStore(config.ChromaConfig{URL: "http://localhost:8001"})
	assert.Error(t, err)
}

func TestNewChromaStore_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewChromaStore(config.ChromaConfig{URL: url, Collection: "medibot_chunks"})
	assert.Error(t, err)
}

func TestChromaStoreQuery(t *testing.T) {
	server := fakeChroma(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 50, body["n_results"])
		assert.Contains(t, body, "query_embeddings")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"documents": [][]string{{"doc one", "doc two", "doc three"}},
		})
	})
	defer server.Close()

	store, err := NewChromaStore(config.ChromaConfig{URL: server.URL, Collection: "medibot_chunks"})
	require.NoError(t, err)

	docs, err := store.Query(context.Background(), []float32{0.1, 0.2}, 50)
	assert.NoError(t, err)
	assert.Equal(t, []string{"doc one", "doc two", "doc three"}, docs)
}

func TestChromaStoreQuery_EmptyResult(t *testing.T) {
	server := fakeChroma(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"documents": [][]string{}})
	})
	defer server.Close()

	store, err := NewChromaStore(config.ChromaConfig{URL: server.URL, Collection: "medibot_chunks"})
	require.NoError(t, err)

	docs, err := store.Query(context.Background(), []float32{0.1}, 5)
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

func TestChromaStoreQuery_ServerError(t *testing.T) {
	server := fakeChroma(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})
	defer server.Close()

	store, err := NewChromaStore(config.ChromaConfig{URL: server.URL, Collection: "medibot_chunks"})
	require.NoError(t, err)

	_, err = store.Query(context.Background(), []float32{0.1}, 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status=500")
}

func TestChromaStoreQuery_EmptyVector(t *testing.T) {
	server := fakeChroma(t, nil)
	defer server.Close()

	store, err := NewChromaStore(config.ChromaConfig{URL: server.URL, Collection: "medibot_chunks"})
	require.NoError(t, err)

	_, err = store.Query(context.Background(), nil, 5)
	assert.Error(t, err)
}
