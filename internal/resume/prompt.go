package resume

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a senior technical recruiter with 15 years of experience evaluating resumes.
Analyze the resume and extract a compact structured profile for use in a technical interview system.

STRICT RULES:
- focusTopics must be SPECIFIC (e.g. "SQL window functions" not just "SQL")
- experienceLevel: judge by project depth and years, NOT by job title
- redFlags: gaps over 6 months, job-hopping under 1 year, skill mismatch, vague achievements
- targetRoles: 2-4 most suitable roles based on the FULL resume content
- All arrays: maximum 8 items each
- projects: only include projects with clear technical detail
- If a field has no data, return an empty array, not null`

// buildUserMessage wraps the resume text, truncated to the config limit.
func buildUserMessage(rawText string, cfg Config) string {
	text := rawText
	if cfg.MaxResumeChars > 0 && len(text) > cfg.MaxResumeChars {
		text = text[:cfg.MaxResumeChars]
	}

	var b strings.Builder
	b.WriteString("RESUME TEXT:\n\"\"\"\n")
	b.WriteString(strings.TrimSpace(text))
	b.WriteString("\n\"\"\"")
	return b.String()
}

// Validate checks that the raw text is plausible resume material.
func Validate(rawText string) error {
	if strings.TrimSpace(rawText) == "" {
		return fmt.Errorf("resume text is empty")
	}
	return nil
}
