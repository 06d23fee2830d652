package classifier

import (
	"math"
	"testing"

	"github.com/crimson-sun/sentiment/internal/model"
)

func TestSoftmax(t *testing.T) {
	// logits [0, ln 3] → [0.25, 0.75]
	probs := softmax([]float32{0, float32(math.Log(3))})

	if len(probs) != 2 {
		t.Fatalf("expected 2 probabilities, got %d", len(probs))
	}
	if !closeEnough(probs[0], 0.25) || !closeEnough(probs[1], 0.75) {
		t.Errorf("expected [0.25, 0.75], got %v", probs)
	}
}

func TestSoftmaxLargeLogits(t *testing.T) {
	probs := softmax([]float32{1000, 1000})
	for i, p := range probs {
		if math.IsNaN(p) || !closeEnough(p, 0.5) {
			t.Errorf("probs[%d] = %f, want 0.5", i, p)
		}
	}
}

func TestSoftmaxEmpty(t *testing.T) {
	if probs := softmax(nil); probs != nil {
		t.Errorf("expected nil, got %v", probs)
	}
}

func TestRank(t *testing.T) {
	got := rank([]float64{0.1, 0.9}, DefaultLabels)

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Label != model.Positive || got[1].Label != model.Negative {
		t.Errorf("expected POSITIVE then NEGATIVE, got %v", got)
	}
	if !closeEnough(got[0].Score, 0.9) {
		t.Errorf("expected top score 0.9, got %f", got[0].Score)
	}
}

func TestRankTieKeepsClassOrder(t *testing.T) {
	got := rank([]float64{0.5, 0.5}, DefaultLabels)
	if got[0].Label != model.Negative {
		t.Errorf("expected NEGATIVE first on tie, got %s", got[0].Label)
	}
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
