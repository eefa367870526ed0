package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestionReply_WellFormed(t *testing.T) {
	raw := `---
Stem: A 62-year-old woman presents to the clinic with progressive dyspnea on exertion.
A: Congestive heart failure
B: Chronic obstructive pulmonary disease
C: Interstitial lung disease
D: Pulmonary hypertension
Correct Answer: C
Explanation:
- Correct: Progressive dyspnea with fine crackles suggests ILD.
- Incorrect A: CHF would show volume overload signs.
Difficulty: hard
---`

	parsed := ParseQuestionReply(raw)

	assert.Equal(t, "A 62-year-old woman presents to the clinic with progressive dyspnea on exertion.", parsed.Stem)
	assert.Equal(t, []string{
		"Congestive heart failure",
		"Chronic obstructive pulmonary disease",
		"Interstitial lung disease",
		"Pulmonary hypertension",
	}, parsed.Choices)
	assert.Equal(t, "c", parsed.CorrectAnswer)
	assert.Equal(t, "- Correct: Progressive dyspnea with fine crackles suggests ILD.", parsed.Explanation)
	assert.Equal(t, "hard", parsed.Difficulty)
}

func TestParseQuestionReply_StripsEmphasisMarkers(t *testing.T) {
	raw := `**Stem:** A patient presents with fever.
**A:** Influenza
**B:** Malaria
**C:** Dengue
**D:** Typhoid
**Correct Answer:** B
**Explanation:** Travel history points to malaria.
**Difficulty:** easy`

	parsed := ParseQuestionReply(raw)

	assert.Equal(t, "A patient presents with fever.", parsed.Stem)
	assert.Equal(t, "Influenza", parsed.Choices[0])
	assert.Equal(t, "b", parsed.CorrectAnswer)
	assert.Equal(t, "Travel history points to malaria.", parsed.Explanation)
	assert.Equal(t, "easy", parsed.Difficulty)
}

func TestParseQuestionReply_BlankLineBeforeChoices(t *testing.T) {
	raw := `Stem: A newborn fails to pass meconium in the first 48 hours.

A: Hirschsprung disease
B: Pyloric stenosis
C: Duodenal atresia
D: Intussusception
Correct Answer: A
Explanation: Delayed meconium passage is classic for Hirschsprung.
Difficulty: medium`

	parsed := ParseQuestionReply(raw)
	assert.Equal(t, "A newborn fails to pass meconium in the first 48 hours.", parsed.Stem)
	assert.Equal(t, "Hirschsprung disease", parsed.Choices[0])
}

func TestParseQuestionReply_CaseInsensitiveLabels(t *testing.T) {
	raw := `Stem: Short stem.
A: One
B: Two
C: Three
D: Four
correct answer: d
explanation: Because.
difficulty: HARD`

	parsed := ParseQuestionReply(raw)
	assert.Equal(t, "d", parsed.CorrectAnswer)
	assert.Equal(t, "hard", parsed.Difficulty)
}

func TestParseQuestionReply_AllFallbacks(t *testing.T) {
	parsed := ParseQuestionReply("the model ignored the format entirely")

	assert.Equal(t, "Stem not found", parsed.Stem)
	assert.Equal(t, []string{"A not found", "B not found", "C not found", "D not found"}, parsed.Choices)
	assert.Equal(t, "a", parsed.CorrectAnswer)
	assert.Equal(t, "Explanation not found.", parsed.Explanation)
	assert.Equal(t, "medium", parsed.Difficulty)
}

func TestParseQuestionReply_PartialReply(t *testing.T) {
	raw := `Stem: Only a stem and two choices made it through.
A: Alpha
B: Beta
Correct Answer: A`

	parsed := ParseQuestionReply(raw)

	assert.Equal(t, "Only a stem and two choices made it through.", parsed.Stem)
	assert.Equal(t, "Alpha", parsed.Choices[0])
	assert.Equal(t, "Beta", parsed.Choices[1])
	assert.Equal(t, "C not found", parsed.Choices[2])
	assert.Equal(t, "D not found", parsed.Choices[3])
	assert.Equal(t, "a", parsed.CorrectAnswer)
	assert.Equal(t, "medium", parsed.Difficulty)
}

func TestParseQuestionReply_InvalidDifficultyFallsBack(t *testing.T) {
	raw := `Stem: Stem text here.
A: One
B: Two
C: Three
D: Four
Correct Answer: B
Explanation: Short.
Difficulty: impossible`

	parsed := ParseQuestionReply(raw)
	assert.Equal(t, "medium", parsed.Difficulty)
}
