package handler

import (
	"github.com/osglvelarde/LicenPrepAI/internal/dto"
	"github.com/osglvelarde/LicenPrepAI/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler serves the static quiz endpoints
type QuizHandler struct {
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(validator *validation.Validator) *QuizHandler {
	return &QuizHandler{validator: validator}
}

// GetQuiz handles GET /api/quiz. It returns a fixed sample quiz in the shape
// the frontend expects, independent of topic and difficulty.
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	topic := c.Query("topic")
	difficulty := c.Query("difficulty")

	if errs := h.validator.ValidateQuizParams(topic, difficulty); len(errs) > 0 {
		return errs
	}

	return c.JSON(dto.StaticQuizResponse{
		Questions: []dto.StaticQuizQuestion{
			{
				Stem:          "What is the capital of France?",
				Choices:       map[string]string{"A": "Paris", "B": "London", "C": "Berlin", "D": "Madrid"},
				CorrectAnswer: "A",
			},
			{
				Stem:          "What is 2 + 2?",
				Choices:       map[string]string{"A": "3", "B": "4", "C": "5", "D": "6"},
				CorrectAnswer: "B",
			},
		},
	})
}

// HealthCheck handles GET /. Load balancers probe this route.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
