package completion

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osglvelarde/LicenPrepAI/internal/config"
	"github.com/osglvelarde/LicenPrepAI/internal/domain"

	"github.com/tmc/langchaingo/llms"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
)

// OllamaClient implements the domain.CompletionClient interface against a
// local Ollama server, mainly for development without a DeepSeek key.
type OllamaClient struct {
	llm *ollamaLLM.LLM
}

// NewOllamaClient creates a new OllamaClient.
func NewOllamaClient(cfg config.OllamaConfig, timeout time.Duration) (*OllamaClient, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	llm, err := ollamaLLM.New(
		ollamaLLM.WithServerURL(cfg.ServerURL),
		ollamaLLM.WithModel(cfg.Model),
		ollamaLLM.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}

	return &OllamaClient{llm: llm}, nil
}

// Complete sends the prompt as a single user message and returns the raw
// reply text.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("ollama completion failed: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("ollama returned an empty completion")
	}
	return reply, nil
}

var _ domain.CompletionClient = (*OllamaClient)(nil)
