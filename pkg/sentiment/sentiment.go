package sentiment

import (
	"context"
	"fmt"

	"github.com/crimson-sun/sentiment/internal/engine"
	"github.com/crimson-sun/sentiment/internal/engine/classifier"
	"github.com/crimson-sun/sentiment/internal/hub"
)

// Analyzer classifies text sentiment. Create once and reuse; loading the
// model is slow.
type Analyzer struct {
	engine     *engine.Engine
	classifier *classifier.ONNX
}

// New acquires the model (downloading it on first use) and loads it.
func New(opts ...Option) (*Analyzer, error) {
	return Load(context.Background(), opts...)
}

// Load is New with a context that bounds the model download.
func Load(ctx context.Context, opts ...Option) (*Analyzer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := resolveDir(o)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	var art hub.Artifacts
	if o.offline {
		art, err = hub.Resolve(dir)
	} else {
		o.logger.Debug("fetching model", "model", o.modelID, "revision", o.revision, "dir", dir)
		client := hub.New(o.hubURL, o.token, hub.WithTimeout(o.downloadTimeout))
		art, err = client.Fetch(ctx, o.modelID, o.revision, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	cls, err := classifier.New(art.ModelPath, art.VocabPath, art.ConfigPath,
		classifier.WithRuntimeLibrary(o.runtimeLibrary))
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}
	o.logger.Debug("model loaded", "model", o.modelID, "labels", cls.Labels())

	return &Analyzer{
		engine:     engine.New(cls, engine.WithLogger(o.logger)),
		classifier: cls,
	}, nil
}

// Analyze classifies a single text. Empty or whitespace-only text returns
// NEUTRAL with score 0; an inference failure returns ERROR with score 0.
func (a *Analyzer) Analyze(text string) Result {
	return a.engine.Analyze(text)
}

// AnalyzeBatch classifies texts one after another, preserving input order.
func (a *Analyzer) AnalyzeBatch(texts []string) []BatchItem {
	return a.engine.AnalyzeBatch(texts)
}

// Labels returns the labels the model can predict, in class-index order.
func (a *Analyzer) Labels() []string {
	return a.classifier.Labels()
}

// Close releases model resources.
func (a *Analyzer) Close() error {
	return a.classifier.Close()
}
