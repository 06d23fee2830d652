// Package engine adapts a ranking classifier into the analyzer contract: one
// result per text, with empty input and classifier failures folded into the
// NEUTRAL and ERROR sentinel labels instead of errors.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crimson-sun/sentiment/internal/model"
)

// Classifier ranks labels for a text, best first.
type Classifier interface {
	Classify(text string) ([]model.Result, error)
}

// ErrNoPrediction is logged when the classifier returns an empty ranking.
var ErrNoPrediction = errors.New("classifier returned no predictions")

// Engine turns classifier rankings into single sentiment results.
type Engine struct {
	classifier Classifier
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for classification diagnostics.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine around cls.
func New(cls Classifier, opts ...Option) *Engine {
	e := &Engine{classifier: cls, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze classifies text and returns the top-ranked label and score.
// Empty or whitespace-only text yields NEUTRAL/0 without calling the
// classifier. Any classifier failure is logged and yields ERROR/0.
func (e *Engine) Analyze(text string) model.Result {
	if strings.TrimSpace(text) == "" {
		return model.Result{Label: model.Neutral, Score: 0}
	}

	ranked, err := e.classify(text)
	if err == nil && len(ranked) == 0 {
		err = ErrNoPrediction
	}
	if err != nil {
		e.logger.Error("error analyzing text", "error", err, "chars", len(text))
		return model.Result{Label: model.Error, Score: 0}
	}
	return ranked[0]
}

// AnalyzeBatch analyzes each text in order. A failed item carries the ERROR
// label and processing continues with the next text.
func (e *Engine) AnalyzeBatch(texts []string) []model.BatchItem {
	items := make([]model.BatchItem, 0, len(texts))
	for _, text := range texts {
		r := e.Analyze(text)
		items = append(items, model.BatchItem{
			Text:       text,
			Sentiment:  r.Label,
			Confidence: r.Score,
		})
	}
	return items
}

// classify calls the classifier, converting a panic into an error.
func (e *Engine) classify(text string) (ranked []model.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()
	return e.classifier.Classify(text)
}
