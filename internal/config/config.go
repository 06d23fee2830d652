package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultModelID is the SST-2 fine-tuned DistilBERT sentiment model.
const DefaultModelID = "distilbert/distilbert-base-uncased-finetuned-sst-2-english"

// Config holds all sentiment analyzer configuration.
type Config struct {
	Model ModelConfig
	Log   LogConfig
}

// ModelConfig holds model acquisition and runtime settings.
type ModelConfig struct {
	ID              string
	Revision        string
	Dir             string // empty: per-user cache directory
	HubURL          string
	Token           string
	RuntimeLibrary  string // empty: auto-resolve
	Offline         bool
	DownloadTimeout time.Duration
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Model: ModelConfig{
			ID:              getenv("SENTIMENT_MODEL_ID", DefaultModelID),
			Revision:        getenv("SENTIMENT_MODEL_REVISION", "main"),
			Dir:             os.Getenv("SENTIMENT_MODEL_DIR"),
			HubURL:          getenv("SENTIMENT_HUB_URL", "https://huggingface.co"),
			Token:           os.Getenv("SENTIMENT_HF_TOKEN"),
			RuntimeLibrary:  os.Getenv("SENTIMENT_ORT_LIB"),
			Offline:         getenvBool("SENTIMENT_OFFLINE", false),
			DownloadTimeout: getenvDuration("SENTIMENT_DOWNLOAD_TIMEOUT", 5*time.Minute),
		},
		Log: LogConfig{
			Level: getenv("SENTIMENT_LOG_LEVEL", "warn"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// getenvDuration parses a Go duration string. Non-positive values fall back.
func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
