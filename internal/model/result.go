package model

// Result is the outcome of classifying a single text.
type Result struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"` // confidence in [0, 1]
}

// Percent returns the score scaled to a percentage.
func (r Result) Percent() float64 {
	return r.Score * 100
}

// BatchItem pairs a batch input text with its classification.
type BatchItem struct {
	Text       string  `json:"text"`
	Sentiment  Label   `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}
