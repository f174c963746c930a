package questiongen

import "github.com/mockmate/mockmate/internal/resume"

// Mode selects which context the question prompt is built from.
type Mode string

const (
	// ModeRole generates questions for a named target role.
	ModeRole Mode = "role"

	// ModeTopics generates questions restricted to an explicit topic list.
	ModeTopics Mode = "topics"

	// ModeResume generates questions from an extracted candidate profile.
	ModeResume Mode = "resume"
)

// Question is a generated interview question ready for persistence.
type Question struct {
	// Text is the question shown to the candidate.
	Text string

	// Topic is the topic the question tests.
	Topic string

	// Difficulty is the generator's difficulty label: "easy", "medium",
	// or "hard". Matches the requested difficulty.
	Difficulty string

	// ExpectedPoints are 3-7 concepts an ideal answer must include.
	ExpectedPoints []string

	// FollowUpTriggers are 2-3 short phrases that, if said by the
	// candidate, suggest shallow understanding.
	FollowUpTriggers []string

	// Rationale is one sentence on why this question was chosen.
	Rationale string
}

// Input holds all context needed to generate a question.
type Input struct {
	// Mode selects the context block; exactly one of Role, Topics, or
	// Profile is consulted.
	Mode Mode

	// Role is the target role name (ModeRole).
	Role string

	// Topics is the interview topic list (ModeTopics).
	Topics []string

	// Profile is the extracted candidate profile (ModeResume).
	Profile *resume.Profile

	// Difficulty is the requested difficulty: "easy", "medium", "hard".
	Difficulty string

	// AskedFingerprints are the fingerprints of every question already
	// asked in this session, follow-ups included.
	AskedFingerprints []string

	// WeakTopics are topics the candidate is scoring below threshold on,
	// already filtered by the session's focus-weak-areas setting.
	WeakTopics []string

	// QuestionNumber is the 1-based ordinal of the upcoming main question.
	QuestionNumber int

	// TotalQuestions is the session's question target.
	TotalQuestions int

	// IsFollowUp requests a probe into the parent question instead of a
	// fresh main question.
	IsFollowUp bool

	// ParentQuestionText is the parent's text (follow-ups only).
	ParentQuestionText string

	// ParentAnswerText is the candidate's answer to the parent, so the
	// follow-up can target its specific gaps (follow-ups only).
	ParentAnswerText string
}
