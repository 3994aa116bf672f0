package prompts

import (
	"fmt"
	"strings"

	_ "embed"
)

// Embedded prompt files

//go:embed zakia_system.txt
var zakiaSystem string

//go:embed enhance_faq.txt
var enhanceFAQTask string

//go:embed answer_knowledge.txt
var answerKnowledgeTask string

// ZakiaSystem returns the persona block prepended to every assistant prompt.
func ZakiaSystem() string { return strings.TrimSpace(zakiaSystem) }

// EnhanceFAQ builds the prompt that rewrites an official FAQ answer into a
// friendlier reply without changing its facts.
func EnhanceFAQ(userQuestion, faqAnswer string) string {
	var b strings.Builder
	b.WriteString(ZakiaSystem())
	b.WriteString("\n\nSoalan pengguna:\n")
	b.WriteString(userQuestion)
	b.WriteString("\n\nJawapan FAQ rasmi:\n")
	b.WriteString(faqAnswer)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(enhanceFAQTask))
	b.WriteString("\n\nJawapan:")
	return b.String()
}

// AnswerKnowledge builds the prompt used when no FAQ entry matches the
// question. Up to three related FAQ questions are offered as suggestions.
func AnswerKnowledge(userQuestion string, relatedQuestions []string) string {
	var b strings.Builder
	b.WriteString(ZakiaSystem())
	b.WriteString("\n\nSoalan pengguna:\n")
	b.WriteString(userQuestion)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(answerKnowledgeTask))
	if len(relatedQuestions) > 0 {
		b.WriteString("\n\nSoalan yang mungkin berkaitan:\n")
		for i, q := range relatedQuestions {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}
	b.WriteString("\nJawapan:")
	return b.String()
}
