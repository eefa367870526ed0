package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/osglvelarde/LicenPrepAI/internal/cache"
	"github.com/osglvelarde/LicenPrepAI/internal/domain"
	"github.com/osglvelarde/LicenPrepAI/internal/logger"

	"github.com/tmc/langchaingo/embeddings"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultEmbeddingTTL = 168 * time.Hour // 7 days

// OpenAIEmbeddingService implements the domain.EmbeddingService interface
// using OpenAI. Generated embeddings are gob-encoded into the cache and
// concurrent requests for the same text are collapsed with singleflight.
type OpenAIEmbeddingService struct {
	embedder embeddings.Embedder
	cache    domain.Cache
	cacheTTL time.Duration
	sfGroup  singleflight.Group
}

// NewOpenAIEmbeddingService creates a new OpenAIEmbeddingService.
func NewOpenAIEmbeddingService(apiKey, modelName string, embCache domain.Cache, cacheTTL time.Duration) (*OpenAIEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "text-embedding-ada-002"
	}
	if embCache == nil {
		return nil, fmt.Errorf("cache instance cannot be nil for OpenAIEmbeddingService")
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultEmbeddingTTL
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI LLM client for embedder: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create generic embedder from OpenAI LLM: %w", err)
	}

	return &OpenAIEmbeddingService{
		embedder: embedder,
		cache:    embCache,
		cacheTTL: cacheTTL,
	}, nil
}

// Generate creates an embedding for the given text using the OpenAI embedder.
func (s *OpenAIEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}

	cacheKey := cache.GenerateCacheKey("embedding", "openai", hashString(text))

	cachedData, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var embedding []float32
		decoder := gob.NewDecoder(bytes.NewReader([]byte(cachedData)))
		if decodeErr := decoder.Decode(&embedding); decodeErr == nil {
			return embedding, nil
		}
		logger.Get().Warn("Failed to decode cached embedding, regenerating", zap.String("cacheKey", cacheKey))
	} else if err != domain.ErrCacheMiss {
		logger.Get().Warn("Embedding cache read failed", zap.Error(err), zap.String("cacheKey", cacheKey))
	}

	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		embedding, fetchErr := s.embedder.EmbedQuery(ctx, text)
		if fetchErr != nil {
			return nil, fmt.Errorf("failed to generate embedding using OpenAI: %w", fetchErr)
		}
		if len(embedding) == 0 {
			return nil, fmt.Errorf("received empty embedding from OpenAI without error")
		}

		var buffer bytes.Buffer
		if encodeErr := gob.NewEncoder(&buffer).Encode(embedding); encodeErr != nil {
			// Serving the embedding matters more than caching it.
			return embedding, nil
		}
		if cacheErr := s.cache.Set(ctx, cacheKey, buffer.String(), s.cacheTTL); cacheErr != nil {
			logger.Get().Warn("Failed to cache embedding", zap.Error(cacheErr), zap.String("cacheKey", cacheKey))
		}
		return embedding, nil
	})
	if err != nil {
		return nil, err
	}

	if embedding, ok := res.([]float32); ok {
		return embedding, nil
	}
	return nil, fmt.Errorf("unexpected type from singleflight.Do for openai embedding: %T", res)
}

var _ domain.EmbeddingService = (*OpenAIEmbeddingService)(nil)
