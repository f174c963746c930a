package llm

import (
	"context"
	"time"
)

// LLMCallData captures one LLM API call for the audit log.
type LLMCallData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMCall is a recorded call as read back from the log.
type LLMCall struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	CreatedAt    time.Time
}

// LLMCallRepo is the LLM call audit log.
type LLMCallRepo interface {
	// RecordCall appends one call record.
	RecordCall(ctx context.Context, data LLMCallData) error

	// Recent returns the most recent calls, newest first.
	Recent(ctx context.Context, limit int) ([]*LLMCall, error)

	// Get returns one call by id.
	Get(ctx context.Context, id int) (*LLMCall, error)
}
