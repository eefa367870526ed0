package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/osglvelarde/LicenPrepAI/internal/domain"
)

const (
	scenarioMinAge = 18
	scenarioMaxAge = 90
)

var (
	scenarioGenders  = []string{"Male", "Female"}
	scenarioSettings = []string{"clinic", "ER", "ICU", "hospital ward"}
)

// ScenarioSampler draws randomized patient parameters for a question prompt.
// The seed makes sampling deterministic for tests.
type ScenarioSampler struct {
	mu  sync.Mutex // guards rng; Sample may be called from concurrent requests
	rng *rand.Rand
}

func NewScenarioSampler(seed int64) *ScenarioSampler {
	return &ScenarioSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns fresh scenario parameters: age 18-90 inclusive, gender and
// clinical setting drawn uniformly from the fixed sets.
func (s *ScenarioSampler) Sample() domain.ScenarioParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ScenarioParams{
		Age:     scenarioMinAge + s.rng.Intn(scenarioMaxAge-scenarioMinAge+1),
		Gender:  scenarioGenders[s.rng.Intn(len(scenarioGenders))],
		Setting: scenarioSettings[s.rng.Intn(len(scenarioSettings))],
	}
}

const questionPromptTemplate = `
You are an expert USMLE Step 1 question writer.

TASK:
- Write **one multiple-choice clinical vignette** based on the provided CONTEXT.
- Create a **high-quality USMLE-style question** following these rules:

1. **Patient Profile (MANDATORY)**
   - Age: %d years
   - Gender: %s
   - Setting: %s
2. **Question Stem:**
   - Focus on clinical reasoning (e.g., diagnosis, next best step, pathophysiology, pharmacology).
   - Include realistic vital signs or physical exam findings if appropriate.
   - Keep stem under 5 sentences.
3. **Answer Choices:**
   - Provide 4 plausible options (A-D).
   - Ensure distractors are realistic DIFFERENTIAL diagnoses, common mistakes, or close but wrong management options.
   - Only ONE definitively correct answer.
4. **Explanation:**
   - **Explain why the correct answer is right.**
   - **Briefly explain why EACH wrong answer is wrong.**
   - Use clear, concise USMLE-level language (avoid excessive fluff).
5. **Difficulty:**
   - Label question as easy / medium / hard based on clinical subtlety.

OUTPUT STRICTLY IN THIS FORMAT:
---
Stem: {Write the full question stem here}
A: {Option A}
B: {Option B}
C: {Option C}
D: {Option D}
Correct Answer: {A/B/C/D}
Explanation:
- Correct: {Explanation why the correct option is right.}
- Incorrect A: {Explanation why A is wrong.}
- Incorrect B: {Explanation why B is wrong.}
- Incorrect C: {Explanation why C is wrong.}
- Incorrect D: {Explanation why D is wrong.}
Difficulty: {easy/medium/hard}
---

CONTEXT:
%s
`

// BuildQuestionPrompt assembles the full generation instruction for one
// context document. Pure text assembly; performs no I/O.
func BuildQuestionPrompt(contextDoc string, params domain.ScenarioParams) string {
	return fmt.Sprintf(questionPromptTemplate, params.Age, params.Gender, params.Setting, contextDoc)
}
