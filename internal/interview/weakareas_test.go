package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func evaluatedQuestion(topic string, score int, isFollowUp bool) *Question {
	return &Question{
		Topic:      topic,
		IsFollowUp: isFollowUp,
		Answer: &Answer{
			Evaluation: &Evaluation{Score: score},
		},
	}
}

func TestWeakTopics_MeanBelowThreshold(t *testing.T) {
	questions := []*Question{
		evaluatedQuestion("SQL", 4, false),
		evaluatedQuestion("SQL", 8, false),
		evaluatedQuestion("Go", 9, false),
	}
	// SQL mean is 6.0, not strictly below the threshold.
	assert.Empty(t, WeakTopics(questions))

	questions = append(questions, evaluatedQuestion("SQL", 3, false))
	// SQL mean drops to 5.0.
	assert.Equal(t, []string{"SQL"}, WeakTopics(questions))
}

func TestWeakTopics_IgnoresFollowUpsAndUnevaluated(t *testing.T) {
	questions := []*Question{
		evaluatedQuestion("Go", 7, false),
		evaluatedQuestion("Go", 1, true), // follow-up, must not count
		{Topic: "Go"},                    // unanswered, must not count
	}
	assert.Empty(t, WeakTopics(questions))
}

func TestWeakTopics_FirstSeenOrder(t *testing.T) {
	questions := []*Question{
		evaluatedQuestion("Networking", 2, false),
		evaluatedQuestion("Kubernetes", 3, false),
		evaluatedQuestion("Networking", 4, false),
	}
	assert.Equal(t, []string{"Networking", "Kubernetes"}, WeakTopics(questions))
}

func TestWeakTopics_Empty(t *testing.T) {
	assert.Empty(t, WeakTopics(nil))
}
