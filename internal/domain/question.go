package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty labels a generated question by clinical subtlety.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a raw difficulty label. The second return value
// reports whether the input was one of the three known labels.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(DifficultyEasy):
		return DifficultyEasy, true
	case string(DifficultyMedium):
		return DifficultyMedium, true
	case string(DifficultyHard):
		return DifficultyHard, true
	default:
		return "", false
	}
}

// ChoiceIDs are the fixed answer-choice identifiers, in presentation order.
var ChoiceIDs = []string{"a", "b", "c", "d"}

// AnswerChoice is one of the four options presented with a question.
type AnswerChoice struct {
	ID   string
	Text string
}

// QuizQuestion is a fully assembled multiple-choice question. Instances are
// created fresh per request and owned by the response payload; nothing
// retains them across requests.
type QuizQuestion struct {
	ID            string
	Stem          string
	Answers       []AnswerChoice
	CorrectAnswer string
	Explanation   string
	Difficulty    Difficulty
	Category      string
	LastPracticed *time.Time
}

// Validate checks the fixed question schema: four choices with ids a-d in
// order, a correct answer among them, and a known difficulty.
func (q *QuizQuestion) Validate() error {
	if q.ID == "" {
		return NewValidationError("question ID is required")
	}
	if q.Stem == "" {
		return NewValidationError("stem is required")
	}
	if len(q.Answers) != len(ChoiceIDs) {
		return NewValidationError(fmt.Sprintf("expected %d answer choices, got %d", len(ChoiceIDs), len(q.Answers)))
	}
	for i, choice := range q.Answers {
		if choice.ID != ChoiceIDs[i] {
			return NewValidationError(fmt.Sprintf("answer choice %d must have id %q", i, ChoiceIDs[i]))
		}
	}
	if !isChoiceID(q.CorrectAnswer) {
		return NewValidationError(fmt.Sprintf("correct answer %q is not a valid choice id", q.CorrectAnswer))
	}
	if _, ok := ParseDifficulty(string(q.Difficulty)); !ok {
		return NewValidationError(fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	}
	return nil
}

func isChoiceID(id string) bool {
	for _, c := range ChoiceIDs {
		if id == c {
			return true
		}
	}
	return false
}

// ScenarioParams are the randomized patient parameters injected into each
// generation prompt. They are sampled fresh per question and never persisted.
type ScenarioParams struct {
	Age     int
	Gender  string
	Setting string
}
