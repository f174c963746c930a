package questiongen

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `You are a world-class senior technical interviewer conducting a structured interview.
Your questions reveal true depth of understanding, never surface-level definitions.
You probe for application, trade-offs, real-world reasoning, and edge cases.

DIFFICULTY GUIDELINES:
- EASY: test working knowledge and basic application of concepts
- MEDIUM: test problem-solving, trade-offs, and real-world scenarios
- HARD: test system design thinking, edge cases, optimization, expert-level nuance

QUESTION RULES:
- Never start with "Can you explain..."; use scenario-based or direct probe phrasing
- Never ask for simple definitions
- expectedPoints: 3-7 specific concepts, terms, or insights the IDEAL answer must include
- followUpTriggers: 2-3 short phrases that, if said by the candidate, suggest shallow understanding
- rationale: one sentence explaining why you chose this question (for internal use only)
- Do not repeat or paraphrase any question from the "already asked" list`

// buildUserMessage constructs the generation request from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	b.WriteString(buildModeContext(input))
	b.WriteString("\n")

	if len(input.WeakTopics) > 0 {
		b.WriteString("\nWEAKNESS ADAPTATION (IMPORTANT):\n")
		fmt.Fprintf(&b, "The candidate has scored below 6/10 on these topics: %s.\n", strings.Join(input.WeakTopics, ", "))
		b.WriteString("Prioritize these weak topics. Ask a question that tests fundamentals if the score was very low.\n")
	}

	if input.IsFollowUp {
		b.WriteString("\nFOLLOW-UP MODE (IMPORTANT):\n")
		b.WriteString("This is a follow-up question to probe deeper into a weak answer.\n")
		fmt.Fprintf(&b, "Parent question was: %q\n", input.ParentQuestionText)
		if input.ParentAnswerText != "" {
			fmt.Fprintf(&b, "Candidate's answer was: %q\n", input.ParentAnswerText)
		}
		b.WriteString("- Reference the parent question explicitly\n")
		b.WriteString("- Dig deeper into a specific gap or concept from that question\n")
		b.WriteString("- Do NOT introduce a completely new topic\n")
		b.WriteString("- Make this question more targeted and specific\n")
	}

	fmt.Fprintf(&b, "\nINTERVIEW PROGRESS: Question %d of %d\n", input.QuestionNumber, input.TotalQuestions)
	fmt.Fprintf(&b, "REQUIRED DIFFICULTY: %s\n", strings.ToUpper(input.Difficulty))

	b.WriteString("\nAlready asked in this session (do not repeat or paraphrase):\n")
	b.WriteString(buildAskedList(input.AskedFingerprints, cfg.MaxAskedFingerprints))

	return b.String()
}

// buildModeContext renders the mode-specific context block. The switch is
// exhaustive over Mode so new modes fail loudly here rather than being
// silently skipped.
func buildModeContext(input Input) string {
	switch input.Mode {
	case ModeRole:
		return fmt.Sprintf("TARGET ROLE: %s\nGenerate questions testing core skills and knowledge required for a %s.",
			input.Role, input.Role)
	case ModeTopics:
		return fmt.Sprintf("INTERVIEW TOPICS: %s\nGenerate questions specifically about these topics only.",
			strings.Join(input.Topics, ", "))
	case ModeResume:
		profileJSON, err := json.MarshalIndent(input.Profile, "", "  ")
		if err != nil {
			profileJSON = []byte("{}")
		}
		return fmt.Sprintf("CANDIDATE PROFILE (extracted from resume):\n%s", profileJSON)
	default:
		return fmt.Sprintf("UNKNOWN MODE %q: generate a general technical question.", input.Mode)
	}
}

// buildAskedList formats prior fingerprints for the prompt, respecting
// the max limit. Returns "None" if nothing has been asked.
func buildAskedList(asked []string, max int) string {
	if len(asked) == 0 {
		return "None"
	}

	// Keep only the most recent N entries.
	if max > 0 && len(asked) > max {
		asked = asked[len(asked)-max:]
	}

	var b strings.Builder
	for i, a := range asked {
		fmt.Fprintf(&b, "%d. %q\n", i+1, a)
	}
	return strings.TrimRight(b.String(), "\n")
}
