package questiongen

// Config holds tunable limits for question generation.
type Config struct {
	// MaxTokens is the response token budget.
	MaxTokens int

	// Temperature controls randomness. Generation runs warmer than
	// evaluation so repeated sessions vary their questions.
	Temperature float64

	// MaxAskedFingerprints caps the already-asked list in the prompt.
	MaxAskedFingerprints int
}

// DefaultConfig returns the standard generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:            1024,
		Temperature:          0.4,
		MaxAskedFingerprints: 40,
	}
}
