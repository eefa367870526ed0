package validation

import (
	"strings"

	"github.com/osglvelarde/LicenPrepAI/internal/domain"
	"github.com/osglvelarde/LicenPrepAI/internal/dto"
)

const (
	maxK            = 100
	maxNumQuestions = 20
	maxQueryLength  = 2000
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates the question generation request. K and
// num_questions of zero are allowed; the service substitutes defaults.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}

	if len(req.Query) > maxQueryLength {
		errors = append(errors, domain.NewOutOfRangeError("query", len(req.Query), 0, maxQueryLength))
	}

	if req.K < 0 || req.K > maxK {
		errors = append(errors, domain.NewOutOfRangeError("k", req.K, 0, maxK))
	}

	if req.NumQuestions < 0 || req.NumQuestions > maxNumQuestions {
		errors = append(errors, domain.NewOutOfRangeError("num_questions", req.NumQuestions, 0, maxNumQuestions))
	}

	return errors
}

// ValidateQuizParams validates the query parameters of the static quiz
// endpoint.
func (v *Validator) ValidateQuizParams(topic, difficulty string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}

	if strings.TrimSpace(difficulty) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	}

	return errors
}
