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
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
)

// DeepSeekClient implements the domain.CompletionClient interface against the
// DeepSeek chat completion API, which is OpenAI-compatible. The HTTP client
// timeout bounds every call; there is no retry.
type DeepSeekClient struct {
	llm *openaiLLM.LLM
}

// NewDeepSeekClient creates a new DeepSeekClient. It fails fast when the API
// key is absent so a misconfigured process does not start.
func NewDeepSeekClient(cfg config.DeepSeekConfig, timeout time.Duration) (*DeepSeekClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepseek API key cannot be empty")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.deepseek.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(cfg.APIKey),
		openaiLLM.WithModel(cfg.Model),
		openaiLLM.WithBaseURL(cfg.BaseURL),
		openaiLLM.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo client for DeepSeek: %w", err)
	}

	return &DeepSeekClient{llm: llm}, nil
}

// Complete sends the prompt as a single user message and returns the raw
// reply text. A reply envelope without content is a failure, not an empty
// success.
func (c *DeepSeekClient) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("deepseek completion failed: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("deepseek returned an empty completion")
	}
	return reply, nil
}

var _ domain.CompletionClient = (*DeepSeekClient)(nil)
