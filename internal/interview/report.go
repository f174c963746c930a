package interview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
)

// maxReportHighlights caps the strengths and weaknesses lists.
const maxReportHighlights = 6

// improvementTipf is the per-topic tip template for weak topics.
const improvementTipf = "Strengthen %s: Review core concepts and practice applying them in real scenarios. Focus on the gaps identified in your answers."

// generalTip is used when no topic averaged below the weak threshold.
const generalTip = "Solid performance across the board. Push further by practicing harder questions and explaining trade-offs out loud."

// Report returns the session's report, computing and caching it on
// first request. Subsequent calls return the stored report unchanged,
// even if the underlying answers somehow change. Generating a report
// also completes a still in-progress session.
func (s *Service) Report(ctx context.Context, sessionID string) (*Report, error) {
	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	if cached, err := s.storage.GetReport(ctx, sessionID); err == nil {
		return cached, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	questions, err := s.storage.SessionQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report, err := aggregate(sessionID, questions)
	if err != nil {
		return nil, err
	}

	created, err := s.storage.CreateReport(ctx, report)
	if err != nil {
		// A concurrent call may have won the race; its report is the
		// session's report.
		if errors.Is(err, ErrConflict) {
			return s.storage.GetReport(ctx, sessionID)
		}
		return nil, err
	}
	return created, nil
}

// aggregate computes the report from the session's evaluated main
// questions. Follow-ups are probes, not scored material, and are
// excluded here just as they are from weak-topic tracking.
func aggregate(sessionID string, questions []*Question) (*Report, error) {
	type agg struct {
		sum   int
		count int
	}
	totals := make(map[string]*agg)
	var topicOrder []string
	var scoreSum, scoreCount int
	var strengths, weaknesses []string

	for _, q := range questions {
		if q.IsFollowUp || !q.Evaluated() {
			continue
		}
		eval := q.Answer.Evaluation
		scoreSum += eval.Score
		scoreCount++

		a := totals[q.Topic]
		if a == nil {
			a = &agg{}
			totals[q.Topic] = a
			topicOrder = append(topicOrder, q.Topic)
		}
		a.sum += eval.Score
		a.count++

		strengths = appendUnique(strengths, eval.Strengths, maxReportHighlights)
		weaknesses = appendUnique(weaknesses, eval.MissingPoints, maxReportHighlights)
	}
	if scoreCount == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNoScorableQuestions)
	}

	topicScores := make([]TopicScore, 0, len(topicOrder))
	for _, topic := range topicOrder {
		a := totals[topic]
		topicScores = append(topicScores, TopicScore{
			Topic:         topic,
			AvgScore:      round1(float64(a.sum) / float64(a.count)),
			QuestionCount: a.count,
		})
	}
	// Worst topics first; ties keep first-seen order.
	sort.SliceStable(topicScores, func(i, j int) bool {
		return topicScores[i].AvgScore < topicScores[j].AvgScore
	})

	var tips []string
	for _, ts := range topicScores {
		if ts.AvgScore < weakThreshold {
			tips = append(tips, fmt.Sprintf(improvementTipf, ts.Topic))
		}
	}
	if len(tips) == 0 {
		tips = []string{generalTip}
	}

	return &Report{
		SessionID:       sessionID,
		OverallScore:    round1(float64(scoreSum) / float64(scoreCount)),
		TopicScores:     topicScores,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		ImprovementTips: tips,
	}, nil
}

// appendUnique appends items not already present, keeping first-seen
// order, up to max total entries.
func appendUnique(dst, items []string, max int) []string {
	for _, item := range items {
		if len(dst) >= max {
			return dst
		}
		seen := false
		for _, existing := range dst {
			if existing == item {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, item)
		}
	}
	return dst
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
