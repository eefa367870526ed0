package validation

import (
	"strings"
	"testing"

	"github.com/osglvelarde/LicenPrepAI/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateGenerateRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid request", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{
			Category:     "cardiology",
			Query:        "heart failure",
			K:            5,
			NumQuestions: 3,
		})
		assert.Empty(t, errs)
	})

	t.Run("zero k and num_questions are allowed", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{Category: "cardiology"})
		assert.Empty(t, errs)
	})

	t.Run("empty query is allowed", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{Category: "cardiology", K: 5})
		assert.Empty(t, errs)
	})

	t.Run("missing category", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{Query: "heart failure"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "category", errs[0].Field)
	})

	t.Run("whitespace category", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{Category: "   "})
		assert.Len(t, errs, 1)
	})

	t.Run("k out of range", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{Category: "cardiology", K: 101})
		assert.Len(t, errs, 1)
		assert.Equal(t, "k", errs[0].Field)
	})

	t.Run("negative values rejected", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{Category: "cardiology", K: -1, NumQuestions: -1})
		assert.Len(t, errs, 2)
	})

	t.Run("oversized query", func(t *testing.T) {
		errs := v.ValidateGenerateRequest(&dto.GenerateRequest{
			Category: "cardiology",
			Query:    strings.Repeat("x", 2001),
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "query", errs[0].Field)
	})
}

func TestValidateQuizParams(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateQuizParams("cardiology", "medium"))
	assert.Len(t, v.ValidateQuizParams("", "medium"), 1)
	assert.Len(t, v.ValidateQuizParams("cardiology", ""), 1)
	assert.Len(t, v.ValidateQuizParams("", ""), 2)
}
