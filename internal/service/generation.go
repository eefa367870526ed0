package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osglvelarde/LicenPrepAI/internal/config"
	"github.com/osglvelarde/LicenPrepAI/internal/domain"
	"github.com/osglvelarde/LicenPrepAI/internal/dto"
	"github.com/osglvelarde/LicenPrepAI/internal/logger"

	"go.uber.org/zap"
)

// GenerationService defines the interface for the question generation pipeline
type GenerationService interface {
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
}

// generationService implements GenerationService. It sequences retrieval,
// diversity selection, prompt construction, completion, and parsing once per
// request; no state survives between requests.
type generationService struct {
	embedder   domain.EmbeddingService
	retriever  domain.DocumentRetriever
	completion domain.CompletionClient
	selector   *DiversitySelector
	sampler    *ScenarioSampler
	cfg        *config.Config
	now        func() time.Time
}

// NewGenerationService creates a new instance of generationService
func NewGenerationService(
	embedder domain.EmbeddingService,
	retriever domain.DocumentRetriever,
	completion domain.CompletionClient,
	selector *DiversitySelector,
	sampler *ScenarioSampler,
	cfg *config.Config,
) GenerationService {
	return &generationService{
		embedder:   embedder,
		retriever:  retriever,
		completion: completion,
		selector:   selector,
		sampler:    sampler,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Generate implements GenerationService
func (s *generationService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	k := req.K
	if k <= 0 {
		k = s.cfg.Generation.DefaultK
	}
	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = s.cfg.Generation.DefaultNumQuestions
	}

	// The embedding collaborators reject empty input, so a request with no
	// query falls back to embedding the category itself.
	queryText := req.Query
	if strings.TrimSpace(queryText) == "" {
		queryText = req.Category
	}

	queryVector, err := s.embedder.Generate(ctx, queryText)
	if err != nil {
		return nil, domain.NewRetrievalUnavailableError(err)
	}

	overqueryN := k * s.cfg.Generation.OverqueryFactor
	candidates, err := s.retriever.Query(ctx, queryVector, overqueryN)
	if err != nil {
		return nil, domain.NewRetrievalUnavailableError(err)
	}

	selected := s.selector.Select(candidates, k)
	if len(selected) == 0 {
		return nil, domain.NewNoDiverseContentError()
	}
	logger.Get().Info("Selected diverse context documents",
		zap.String("category", req.Category),
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", len(selected)),
	)

	// Truncation to numQuestions happens before generation, not after
	// filtering for successes: a failed slot is not backfilled from the
	// remaining diverse documents.
	if numQuestions > len(selected) {
		numQuestions = len(selected)
	}
	selected = selected[:numQuestions]

	timestamp := s.now().Unix()
	questions := make([]dto.QuizQuestionResponse, 0, numQuestions)
	for idx, contextDoc := range selected {
		question, err := s.generateQuestion(ctx, contextDoc, timestamp, idx, req.Category)
		if err != nil {
			logger.Get().Warn("Skipping question slot after generation failure",
				zap.Int("slot", idx),
				zap.String("category", req.Category),
				zap.Error(err),
			)
			continue
		}
		questions = append(questions, toQuestionResponse(question))
	}

	return &dto.GenerateResponse{Questions: questions}, nil
}

// generateQuestion runs one slot of the pipeline: sample scenario parameters,
// build the prompt, call the completion service under its timeout, and parse
// the reply. Any failure here is recoverable by skipping the slot.
func (s *generationService) generateQuestion(ctx context.Context, contextDoc string, timestamp int64, slot int, category string) (*domain.QuizQuestion, error) {
	params := s.sampler.Sample()
	prompt := BuildQuestionPrompt(contextDoc, params)

	timeout := s.cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := s.completion.Complete(callCtx, prompt)
	if err != nil {
		return nil, domain.NewCompletionFailureError(err)
	}

	parsed := ParseQuestionReply(raw)
	answers := make([]domain.AnswerChoice, len(domain.ChoiceIDs))
	for i, id := range domain.ChoiceIDs {
		answers[i] = domain.AnswerChoice{ID: id, Text: parsed.Choices[i]}
	}

	question := &domain.QuizQuestion{
		ID:            fmt.Sprintf("generated-%d-%d", timestamp, slot),
		Stem:          parsed.Stem,
		Answers:       answers,
		CorrectAnswer: parsed.CorrectAnswer,
		Explanation:   parsed.Explanation,
		Difficulty:    domain.Difficulty(parsed.Difficulty),
		Category:      category,
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	return question, nil
}

func toQuestionResponse(q *domain.QuizQuestion) dto.QuizQuestionResponse {
	answers := make([]dto.AnswerChoiceResponse, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, dto.AnswerChoiceResponse{ID: a.ID, Text: a.Text})
	}
	return dto.QuizQuestionResponse{
		ID:            q.ID,
		Stem:          q.Stem,
		Answers:       answers,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Difficulty:    string(q.Difficulty),
		Category:      q.Category,
		LastPracticed: q.LastPracticed,
	}
}
