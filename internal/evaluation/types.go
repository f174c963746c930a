package evaluation

// Confidence indicates how certain the evaluator is that the score
// reflects genuine understanding. Low confidence is the signal callers
// use to offer a follow-up probe.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Result is the structured evaluation of a single answer.
type Result struct {
	// Score is the 0-10 integer score for the answer.
	Score int

	// Strengths lists specific correct things the candidate said.
	Strengths []string

	// MissingPoints lists expected points the candidate did not cover.
	MissingPoints []string

	// Feedback is a 2-3 sentence constructive summary.
	Feedback string

	// NextFocusTopic suggests one topic to focus on next, based on the
	// gaps in this answer. Empty when performance was strong.
	NextFocusTopic string

	// Confidence is derived by the provider under a fixed rule:
	// low if score <= 4 or the answer is very short, high if score >= 8,
	// medium otherwise. The engine treats it as given data.
	Confidence Confidence
}

// TopicScore pairs a topic with an earned score, used as recent
// performance context in the evaluation prompt.
type TopicScore struct {
	Topic string
	Score int
}

// Input holds all context needed to evaluate an answer.
type Input struct {
	// QuestionText is the question the candidate answered.
	QuestionText string

	// Topic is the question's topic.
	Topic string

	// Difficulty is "easy", "medium", or "hard".
	Difficulty string

	// ExpectedPoints are the concepts an ideal answer should cover.
	ExpectedPoints []string

	// AnswerText is the candidate's answer, already trimmed.
	AnswerText string

	// PreviousScores holds the most recent (topic, score) pairs from
	// earlier in the session, newest first.
	PreviousScores []TopicScore
}
