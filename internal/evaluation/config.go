package evaluation

// Config holds tunable limits for answer evaluation.
type Config struct {
	// MaxTokens is the response token budget.
	MaxTokens int

	// Temperature controls randomness. Evaluation runs cool so repeat
	// submissions of similar answers score consistently.
	Temperature float64

	// MaxAnswerChars caps how much of the answer is sent to the provider.
	MaxAnswerChars int

	// MaxPreviousScores caps the recent-performance context entries.
	MaxPreviousScores int
}

// DefaultConfig returns the standard evaluation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         1024,
		Temperature:       0.2,
		MaxAnswerChars:    2000,
		MaxPreviousScores: 3,
	}
}
