package dto

// StaticQuizQuestion is a placeholder question served by the static quiz
// endpoint used by the frontend before generation is wired up.
type StaticQuizQuestion struct {
	Stem          string            `json:"stem"`
	Choices       map[string]string `json:"choices"`
	CorrectAnswer string            `json:"correct_answer"`
}

// StaticQuizResponse wraps the static quiz payload.
type StaticQuizResponse struct {
	Questions []StaticQuizQuestion `json:"questions"`
}
