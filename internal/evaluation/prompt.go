package evaluation

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a strict but fair senior technical interviewer evaluating a candidate's answer.
You score based on SUBSTANCE, ACCURACY, and COMPLETENESS, not verbosity.
A long answer that misses key points scores lower than a short answer that nails them.

SCORING RUBRIC (follow this exactly):
- 10:   Every expected point covered with expert-level depth and clarity
- 8-9:  Most expected points covered, minor gaps, demonstrates clear understanding
- 6-7:  Several points covered but meaningful gaps remain
- 4-5:  Partial understanding, significant gaps, some correct points
- 2-3:  Mostly incorrect or very shallow, minimal correct content
- 0-1:  Wrong answer, "I don't know", irrelevant, or fewer than 20 words

CONFIDENCE RULES (you must follow these deterministically):
- Return "low" if score <= 4 OR the answer has fewer than 50 characters
- Return "high" if score >= 8
- Return "medium" for everything else

OUTPUT RULES:
- strengths: specific things the candidate said that were CORRECT
- missingPoints: specific expected points the candidate did NOT cover
- feedback: exactly 2-3 sentences, constructive and actionable
- nextFocusTopic: suggest ONE specific topic to focus on next based on gaps, or null if performance was strong (score >= 7)`

// buildUserMessage constructs the evaluation request from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "QUESTION: %q\n", input.QuestionText)
	fmt.Fprintf(&b, "TOPIC: %s\n", input.Topic)
	fmt.Fprintf(&b, "DIFFICULTY: %s\n", strings.ToUpper(input.Difficulty))

	b.WriteString("\nEXPECTED POINTS (ideal answer should cover most of these):\n")
	for i, p := range input.ExpectedPoints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}

	answer := input.AnswerText
	if cfg.MaxAnswerChars > 0 && len(answer) > cfg.MaxAnswerChars {
		answer = answer[:cfg.MaxAnswerChars]
	}
	b.WriteString("\nCANDIDATE'S ANSWER:\n\"\"\"\n")
	b.WriteString(answer)
	b.WriteString("\n\"\"\"\n")

	b.WriteString("\n")
	b.WriteString(buildPerformanceContext(input.PreviousScores, cfg.MaxPreviousScores))

	return b.String()
}

// buildPerformanceContext formats recent scores for the prompt.
func buildPerformanceContext(scores []TopicScore, max int) string {
	if len(scores) == 0 {
		return "This is the first question in this session."
	}

	// Keep only the most recent entries.
	if max > 0 && len(scores) > max {
		scores = scores[len(scores)-max:]
	}

	var b strings.Builder
	b.WriteString("CANDIDATE'S RECENT PERFORMANCE:\n")
	for _, s := range scores {
		fmt.Fprintf(&b, "- %s: %d/10\n", s.Topic, s.Score)
	}
	return strings.TrimRight(b.String(), "\n")
}
