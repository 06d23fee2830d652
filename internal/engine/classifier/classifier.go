// Package classifier runs a Hugging Face sequence-classification model
// exported to ONNX and ranks its labels for a text.
package classifier

import (
	"fmt"

	"github.com/crimson-sun/sentiment/internal/engine/tokenizer"
	"github.com/crimson-sun/sentiment/internal/model"
)

// Classifier ranks sentiment labels for a text, best first.
type Classifier interface {
	Classify(text string) ([]model.Result, error)
	Close() error
}

type options struct {
	runtimeLibrary string
	threads        int
	maxLength      int
}

// Option configures an ONNX classifier.
type Option func(*options)

// WithRuntimeLibrary sets an explicit path to the ONNX Runtime shared library.
func WithRuntimeLibrary(path string) Option {
	return func(o *options) {
		o.runtimeLibrary = path
	}
}

// WithThreads sets the intra-op thread count for inference. Default: 4.
func WithThreads(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.threads = n
		}
	}
}

// WithMaxLength caps the token sequence fed to the model.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// ONNX wraps the ONNX runtime session, the tokenizer, and the model's label
// set. The pipeline is: tokenize → ONNX inference → softmax → rank.
type ONNX struct {
	session *onnxSession
	tok     *tokenizer.Tokenizer
	labels  []string
}

// New loads the ONNX model, vocabulary and label map. Loading is slow; create
// once and reuse.
func New(modelPath, vocabPath, configPath string, opts ...Option) (*ONNX, error) {
	o := options{threads: 4, maxLength: tokenizer.DefaultMaxLength}
	for _, opt := range opts {
		opt(&o)
	}

	labels, err := loadLabels(configPath)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	tok, err := tokenizer.Load(vocabPath, tokenizer.WithMaxLength(o.maxLength))
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	libPath := resolveRuntimeLibrary(o.runtimeLibrary, modelPath)
	sess, err := newONNXSession(modelPath, libPath, o.threads)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	if int(sess.numLabels) != len(labels) {
		sess.close()
		return nil, fmt.Errorf("classifier: model emits %d logits but config names %d labels",
			sess.numLabels, len(labels))
	}

	return &ONNX{session: sess, tok: tok, labels: labels}, nil
}

// Labels returns the model's label names in class-index order.
func (c *ONNX) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Classify returns every label with its probability for text, highest first.
func (c *ONNX) Classify(text string) ([]model.Result, error) {
	batch := c.tok.EncodeBatch([]string{text})

	logits, err := c.session.infer(
		batch.InputIDs, batch.AttentionMask, batch.TokenTypeIDs,
		batch.Size, batch.SeqLen,
	)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	if int64(len(logits)) != c.session.numLabels {
		return nil, fmt.Errorf("classifier: expected %d logits, got %d", c.session.numLabels, len(logits))
	}

	return rank(softmax(logits), c.labels), nil
}

// Close releases ONNX Runtime resources.
func (c *ONNX) Close() error {
	if c.session != nil {
		return c.session.close()
	}
	return nil
}
