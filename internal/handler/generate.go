package handler

import (
	"errors"

	"github.com/osglvelarde/LicenPrepAI/internal/domain"
	"github.com/osglvelarde/LicenPrepAI/internal/dto"
	"github.com/osglvelarde/LicenPrepAI/internal/logger"
	"github.com/osglvelarde/LicenPrepAI/internal/service"
	"github.com/osglvelarde/LicenPrepAI/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerateHandler handles question generation HTTP requests
type GenerateHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(service service.GenerationService, validator *validation.Validator) *GenerateHandler {
	return &GenerateHandler{
		service:   service,
		validator: validator,
	}
}

// GenerateQuestions handles POST /api/generate
func (h *GenerateHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse generate request body", zap.Error(err))
		return domain.NewInvalidInputError("request body must be valid JSON")
	}

	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		// An all-duplicates retrieval is an explicit outcome for the
		// frontend, not a transport failure.
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeNoDiverseContent {
			return c.JSON(dto.ErrorResponse{Error: domainErr.Message})
		}
		return err
	}

	return c.JSON(resp)
}
