package dto

import "time"

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Category     string `json:"category"`
	Query        string `json:"query"`
	K            int    `json:"k"`
	NumQuestions int    `json:"num_questions"`
}

// AnswerChoiceResponse is one answer option in a generated question.
type AnswerChoiceResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestionResponse is a generated question in the API response. Field
// names follow the frontend contract (camelCase for the composite fields).
type QuizQuestionResponse struct {
	ID            string                 `json:"id"`
	Stem          string                 `json:"stem"`
	Answers       []AnswerChoiceResponse `json:"answers"`
	CorrectAnswer string                 `json:"correctAnswer"`
	Explanation   string                 `json:"explanation"`
	Difficulty    string                 `json:"difficulty"`
	Category      string                 `json:"category"`
	LastPracticed *time.Time             `json:"lastPracticed"`
}

// GenerateResponse is the success payload of POST /api/generate. Questions
// may be shorter than requested when individual slots failed; empty is valid.
type GenerateResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
