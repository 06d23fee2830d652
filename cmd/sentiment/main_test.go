package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/sentiment/internal/config"
)

func TestRunReportsLoadFailure(t *testing.T) {
	cfg := config.Config{
		Model: config.ModelConfig{
			ID:              config.DefaultModelID,
			Dir:             filepath.Join(t.TempDir(), "missing"),
			Offline:         true,
			DownloadTimeout: time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
	var out bytes.Buffer

	err := run(context.Background(), cfg, strings.NewReader("q\n"), &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errReported))
	assert.Contains(t, out.String(), "SENTIMENT ANALYZER")
	assert.Contains(t, out.String(), "Error loading model:")
	assert.Contains(t, out.String(), "Please ensure you have internet connection")
	assert.NotContains(t, out.String(), "Model loaded successfully")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestModelOptions(t *testing.T) {
	m := config.ModelConfig{ID: "acme/sst2", Revision: "main"}
	assert.Len(t, modelOptions(m), 7)

	m.Dir = "/models"
	assert.Len(t, modelOptions(m), 8)
}
