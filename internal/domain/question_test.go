package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() *QuizQuestion {
	return &QuizQuestion{
		ID:   "generated-1700000000-0",
		Stem: "A 50-year-old man presents with chest pain.",
		Answers: []AnswerChoice{
			{ID: "a", Text: "Myocardial infarction"},
			{ID: "b", Text: "Pulmonary embolism"},
			{ID: "c", Text: "Pneumothorax"},
			{ID: "d", Text: "Costochondritis"},
		},
		CorrectAnswer: "a",
		Explanation:   "Classic presentation.",
		Difficulty:    DifficultyMedium,
		Category:      "cardiology",
	}
}

func TestQuizQuestionValidate(t *testing.T) {
	t.Run("valid question passes", func(t *testing.T) {
		assert.NoError(t, validQuestion().Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		q := validQuestion()
		q.ID = ""
		assert.Error(t, q.Validate())
	})

	t.Run("missing stem", func(t *testing.T) {
		q := validQuestion()
		q.Stem = ""
		assert.Error(t, q.Validate())
	})

	t.Run("wrong choice count", func(t *testing.T) {
		q := validQuestion()
		q.Answers = q.Answers[:3]
		assert.Error(t, q.Validate())
	})

	t.Run("choices out of order", func(t *testing.T) {
		q := validQuestion()
		q.Answers[0], q.Answers[1] = q.Answers[1], q.Answers[0]
		assert.Error(t, q.Validate())
	})

	t.Run("correct answer outside choice ids", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = "e"
		assert.Error(t, q.Validate())
	})

	t.Run("uppercase correct answer rejected", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = "A"
		assert.Error(t, q.Validate())
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		q := validQuestion()
		q.Difficulty = "brutal"
		assert.Error(t, q.Validate())
	})
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
		ok       bool
	}{
		{"easy", DifficultyEasy, true},
		{"medium", DifficultyMedium, true},
		{"hard", DifficultyHard, true},
		{"HARD", DifficultyHard, true},
		{"  medium  ", DifficultyMedium, true},
		{"impossible", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		d, ok := ParseDifficulty(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, d, "input %q", tt.input)
	}
}
