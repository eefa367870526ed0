package service

import (
	"regexp"
	"strings"
)

// ParsedQuestion holds the fields extracted from a raw completion reply.
// Choices are in A-D order. Every field is populated: extraction failures
// degrade to documented fallback values rather than errors.
type ParsedQuestion struct {
	Stem          string
	Choices       []string
	CorrectAnswer string
	Explanation   string
	Difficulty    string
}

// fieldRule anchors one labeled field in the reply layout. Rules are applied
// independently so that one missing field can never fail the whole record.
type fieldRule struct {
	pattern   *regexp.Regexp
	fallback  string
	lowercase bool
}

func (r fieldRule) extract(text string) string {
	m := r.pattern.FindStringSubmatch(text)
	if m == nil {
		return r.fallback
	}
	value := strings.TrimSpace(m[1])
	if r.lowercase {
		value = strings.ToLower(value)
	}
	return value
}

// The stem matcher tolerates the stem ending either immediately before the
// "A:" line or with a blank line before it. Choices are delimited by a
// trailing line break, matching the layout the prompt mandates.
var (
	stemRule = fieldRule{
		pattern:  regexp.MustCompile(`(?s)Stem:\s*(.+?)(?:\n\nA:|\nA:)`),
		fallback: "Stem not found",
	}
	choiceRules = []fieldRule{
		{pattern: regexp.MustCompile(`A:\s*(.+?)\n`), fallback: "A not found"},
		{pattern: regexp.MustCompile(`B:\s*(.+?)\n`), fallback: "B not found"},
		{pattern: regexp.MustCompile(`C:\s*(.+?)\n`), fallback: "C not found"},
		{pattern: regexp.MustCompile(`D:\s*(.+?)\n`), fallback: "D not found"},
	}
	correctAnswerRule = fieldRule{
		pattern:   regexp.MustCompile(`(?i)Correct Answer:\s*([A-D])`),
		fallback:  "a",
		lowercase: true,
	}
	explanationRule = fieldRule{
		pattern:  regexp.MustCompile(`(?s)Explanation:\s*(.+?)(?:\n|$)`),
		fallback: "Explanation not found.",
	}
	difficultyRule = fieldRule{
		pattern:   regexp.MustCompile(`(?i)Difficulty:\s*(easy|medium|hard)`),
		fallback:  "medium",
		lowercase: true,
	}
)

// ParseQuestionReply extracts the fixed-layout fields from a raw completion
// reply. Emphasis markers the generator commonly emits are stripped before
// matching. Parsing never fails; absent fields resolve to their fallbacks.
func ParseQuestionReply(raw string) ParsedQuestion {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "**", ""))

	choices := make([]string, len(choiceRules))
	for i, rule := range choiceRules {
		choices[i] = rule.extract(text)
	}

	return ParsedQuestion{
		Stem:          stemRule.extract(text),
		Choices:       choices,
		CorrectAnswer: correctAnswerRule.extract(text),
		Explanation:   explanationRule.extract(text),
		Difficulty:    difficultyRule.extract(text),
	}
}
