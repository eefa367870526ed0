package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/osglvelarde/LicenPrepAI/internal/dto"
	"github.com/osglvelarde/LicenPrepAI/internal/handler"
	"github.com/osglvelarde/LicenPrepAI/internal/middleware"
	"github.com/osglvelarde/LicenPrepAI/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupQuizApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewQuizHandler(validation.NewValidator())
	app.Get("/api/quiz", h.GetQuiz)
	app.Get("/", handler.HealthCheck)
	return app
}

func TestGetQuiz_ReturnsSampleQuestions(t *testing.T) {
	app := setupQuizApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/quiz?topic=cardiology&difficulty=medium", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dto.StaticQuizResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Questions, 2)
	assert.Equal(t, "What is the capital of France?", payload.Questions[0].Stem)
	assert.Equal(t, "A", payload.Questions[0].CorrectAnswer)
	assert.Len(t, payload.Questions[0].Choices, 4)
}

func TestGetQuiz_MissingParams(t *testing.T) {
	app := setupQuizApp()

	tests := []struct {
		name string
		url  string
	}{
		{"no params", "/api/quiz"},
		{"missing difficulty", "/api/quiz?topic=cardiology"},
		{"missing topic", "/api/quiz?difficulty=easy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	app := setupQuizApp()

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "ok", payload["status"])
}
