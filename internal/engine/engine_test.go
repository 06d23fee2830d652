package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/sentiment/internal/model"
)

// fakeClassifier returns canned rankings per text and records every call.
type fakeClassifier struct {
	rankings map[string][]model.Result
	errs     map[string]error
	panics   map[string]any
	calls    []string
}

func (f *fakeClassifier) Classify(text string) ([]model.Result, error) {
	f.calls = append(f.calls, text)
	if v, ok := f.panics[text]; ok {
		panic(v)
	}
	if err, ok := f.errs[text]; ok {
		return nil, err
	}
	if r, ok := f.rankings[text]; ok {
		return r, nil
	}
	return []model.Result{{Label: model.Positive, Score: 0.5}, {Label: model.Negative, Score: 0.5}}, nil
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	cls := &fakeClassifier{}
	eng := New(cls)

	for _, text := range []string{"", "   ", "\t\n"} {
		got := eng.Analyze(text)
		assert.Equal(t, model.Result{Label: model.Neutral, Score: 0}, got, "input %q", text)
	}
	assert.Empty(t, cls.calls, "classifier must not be called for empty input")
}

func TestAnalyzeReturnsTopRanked(t *testing.T) {
	cls := &fakeClassifier{rankings: map[string][]model.Result{
		"great!": {
			{Label: model.Positive, Score: 0.97},
			{Label: model.Negative, Score: 0.03},
		},
	}}
	eng := New(cls)

	got := eng.Analyze("great!")

	assert.Equal(t, model.Result{Label: model.Positive, Score: 0.97}, got)
	assert.Equal(t, []string{"great!"}, cls.calls)
}

func TestAnalyzePassesTextUntrimmed(t *testing.T) {
	cls := &fakeClassifier{}
	New(cls).Analyze("  padded  ")
	assert.Equal(t, []string{"  padded  "}, cls.calls)
}

func TestAnalyzeClassifierError(t *testing.T) {
	var logs bytes.Buffer
	cls := &fakeClassifier{errs: map[string]error{"boom": errors.New("inference failed")}}
	eng := New(cls, WithLogger(quietLogger(&logs)))

	got := eng.Analyze("boom")

	assert.Equal(t, model.Result{Label: model.Error, Score: 0}, got)
	assert.Contains(t, logs.String(), "inference failed")
}

func TestAnalyzeClassifierPanic(t *testing.T) {
	var logs bytes.Buffer
	cls := &fakeClassifier{panics: map[string]any{"crash": "tensor shape mismatch"}}
	eng := New(cls, WithLogger(quietLogger(&logs)))

	require.NotPanics(t, func() {
		got := eng.Analyze("crash")
		assert.Equal(t, model.Error, got.Label)
		assert.Zero(t, got.Score)
	})
	assert.Contains(t, logs.String(), "tensor shape mismatch")
}

func TestAnalyzeEmptyRanking(t *testing.T) {
	var logs bytes.Buffer
	cls := &fakeClassifier{rankings: map[string][]model.Result{"nothing": {}}}
	eng := New(cls, WithLogger(quietLogger(&logs)))

	got := eng.Analyze("nothing")

	assert.Equal(t, model.Error, got.Label)
	assert.Contains(t, logs.String(), ErrNoPrediction.Error())
}

func TestAnalyzeBatchPreservesOrder(t *testing.T) {
	cls := &fakeClassifier{rankings: map[string][]model.Result{
		"good": {{Label: model.Positive, Score: 0.9}},
		"bad":  {{Label: model.Negative, Score: 0.8}},
		"meh":  {{Label: model.Negative, Score: 0.6}},
	}}
	eng := New(cls)
	texts := []string{"good", "bad", "meh"}

	items := eng.AnalyzeBatch(texts)

	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, texts[i], item.Text)
	}
	assert.Equal(t, model.Positive, items[0].Sentiment)
	assert.Equal(t, 0.8, items[1].Confidence)
	assert.Equal(t, texts, cls.calls)
}

func TestAnalyzeBatchContinuesPastFailures(t *testing.T) {
	var logs bytes.Buffer
	cls := &fakeClassifier{errs: map[string]error{"broken": errors.New("timeout")}}
	eng := New(cls, WithLogger(quietLogger(&logs)))

	items := eng.AnalyzeBatch([]string{"first", "broken", "", "last"})

	require.Len(t, items, 4)
	assert.Equal(t, model.Error, items[1].Sentiment)
	assert.Equal(t, model.Neutral, items[2].Sentiment)
	assert.Equal(t, "last", items[3].Text)
	assert.Equal(t, []string{"first", "broken", "last"}, cls.calls)
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	items := New(&fakeClassifier{}).AnalyzeBatch(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
