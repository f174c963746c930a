package interview

// weakThreshold is the per-topic mean below which a topic counts as
// weak. Strictly below: a topic averaging exactly 6.0 is not weak.
const weakThreshold = 6.0

// WeakTopics returns topics whose mean score across evaluated main
// questions is below the threshold, in first-seen order. Follow-ups
// are excluded so one probing question cannot drag a topic under.
// Recomputed fresh from the given questions; nothing is cached.
func WeakTopics(questions []*Question) []string {
	type agg struct {
		sum   int
		count int
	}
	totals := make(map[string]*agg)
	var order []string
	for _, q := range questions {
		if q.IsFollowUp || !q.Evaluated() {
			continue
		}
		a := totals[q.Topic]
		if a == nil {
			a = &agg{}
			totals[q.Topic] = a
			order = append(order, q.Topic)
		}
		a.sum += q.Answer.Evaluation.Score
		a.count++
	}

	var weak []string
	for _, topic := range order {
		a := totals[topic]
		if float64(a.sum)/float64(a.count) < weakThreshold {
			weak = append(weak, topic)
		}
	}
	return weak
}
