package sentiment

import "github.com/crimson-sun/sentiment/internal/model"

// Label is a sentiment label.
type Label = model.Label

// Labels reported by Analyze.
const (
	Positive = model.Positive
	Negative = model.Negative
	Neutral  = model.Neutral
	Error    = model.Error
)

// Result is the label and confidence score for one text.
type Result = model.Result

// BatchItem is one entry of an AnalyzeBatch result.
type BatchItem = model.BatchItem
