package sentiment

import (
	"log/slog"
	"time"

	"github.com/crimson-sun/sentiment/internal/config"
	"github.com/crimson-sun/sentiment/internal/hub"
)

type options struct {
	modelDir        string
	modelID         string
	revision        string
	hubURL          string
	token           string
	runtimeLibrary  string
	offline         bool
	downloadTimeout time.Duration
	logger          *slog.Logger
}

// Option configures an Analyzer.
type Option func(*options)

// WithModelDir sets the directory holding model.onnx, vocab.txt and
// config.json. Missing files are downloaded into it unless offline.
// Default: a per-model directory under the user cache directory.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.modelDir = dir
	}
}

// WithModelID sets the Hub repository to load.
// Default: distilbert/distilbert-base-uncased-finetuned-sst-2-english.
func WithModelID(id string) Option {
	return func(o *options) {
		o.modelID = id
	}
}

// WithRevision sets the Hub branch, tag or commit. Default: "main".
func WithRevision(rev string) Option {
	return func(o *options) {
		o.revision = rev
	}
}

// WithHubURL points downloads at a Hub mirror.
func WithHubURL(url string) Option {
	return func(o *options) {
		o.hubURL = url
	}
}

// WithToken sets a Hub access token for gated or private models.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithRuntimeLibrary sets the path to the ONNX Runtime shared library.
func WithRuntimeLibrary(path string) Option {
	return func(o *options) {
		o.runtimeLibrary = path
	}
}

// WithOffline forbids network access; all model files must already be cached.
func WithOffline(offline bool) Option {
	return func(o *options) {
		o.offline = offline
	}
}

// WithDownloadTimeout bounds each model file download. Default: 5m.
func WithDownloadTimeout(d time.Duration) Option {
	return func(o *options) {
		o.downloadTimeout = d
	}
}

// WithLogger sets the logger for load progress and analysis diagnostics.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		modelID:         config.DefaultModelID,
		revision:        "main",
		hubURL:          hub.DefaultURL,
		downloadTimeout: 5 * time.Minute,
		logger:          slog.Default(),
	}
}

// resolveDir returns the configured model directory or the per-model cache
// directory.
func resolveDir(o options) (string, error) {
	if o.modelDir != "" {
		return o.modelDir, nil
	}
	return hub.CacheDir(o.modelID)
}
