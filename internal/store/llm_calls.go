package store

import (
	"context"
	"fmt"

	"github.com/mockmate/mockmate/ent"
	"github.com/mockmate/mockmate/ent/llmcall"
	"github.com/mockmate/mockmate/internal/llm"
)

// llmCallRepo implements llm.LLMCallRepo backed by ent.
type llmCallRepo struct {
	client *ent.Client
}

func (r *llmCallRepo) RecordCall(ctx context.Context, data llm.LLMCallData) error {
	_, err := r.client.LLMCall.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM call: %w", err)
	}
	return nil
}

func (r *llmCallRepo) Recent(ctx context.Context, limit int) ([]*llm.LLMCall, error) {
	q := r.client.LLMCall.Query().
		Order(ent.Desc(llmcall.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM calls: %w", err)
	}

	calls := make([]*llm.LLMCall, 0, len(rows))
	for _, row := range rows {
		calls = append(calls, callFromEnt(row))
	}
	return calls, nil
}

func (r *llmCallRepo) Get(ctx context.Context, id int) (*llm.LLMCall, error) {
	row, err := r.client.LLMCall.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get LLM call %d: %w", id, err)
	}
	return callFromEnt(row), nil
}

func callFromEnt(row *ent.LLMCall) *llm.LLMCall {
	return &llm.LLMCall{
		ID:           row.ID,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
		CreatedAt:    row.CreatedAt,
	}
}
