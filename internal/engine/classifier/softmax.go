package classifier

import (
	"math"
	"sort"

	"github.com/crimson-sun/sentiment/internal/model"
)

// softmax converts one row of logits to probabilities. The max logit is
// subtracted first so large values do not overflow.
func softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	maxLogit := float64(logits[0])
	for _, l := range logits[1:] {
		maxLogit = math.Max(maxLogit, float64(l))
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(float64(l) - maxLogit)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// rank pairs probabilities with their labels, best first. Ties keep class
// index order.
func rank(probs []float64, labels []string) []model.Result {
	results := make([]model.Result, len(probs))
	for i, p := range probs {
		results[i] = model.Result{Label: model.Label(labels[i]), Score: p}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
