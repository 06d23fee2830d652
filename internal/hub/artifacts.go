package hub

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Artifact file names inside a model cache directory.
const (
	ModelFile  = "model.onnx"
	VocabFile  = "vocab.txt"
	ConfigFile = "config.json"
)

// ErrNotCached is returned by Resolve when an artifact is missing locally.
var ErrNotCached = errors.New("model artifact not cached")

// Artifacts holds the local paths of a model's files.
type Artifacts struct {
	ModelPath  string
	VocabPath  string
	ConfigPath string
}

// remoteFiles maps each cached file to its path inside the hub repository.
// Transformers-exported models keep the ONNX graph under onnx/.
var remoteFiles = []struct {
	local  string
	remote string
}{
	{ConfigFile, "config.json"},
	{VocabFile, "vocab.txt"},
	{ModelFile, "onnx/model.onnx"},
}

// Resolve returns the artifact paths in dir without touching the network.
// It fails with ErrNotCached if any file is missing.
func Resolve(dir string) (Artifacts, error) {
	a := artifactsIn(dir)
	for _, p := range []string{a.ModelPath, a.VocabPath, a.ConfigPath} {
		if !cached(p) {
			return Artifacts{}, fmt.Errorf("hub: %s: %w", p, ErrNotCached)
		}
	}
	return a, nil
}

// Fetch ensures the model files of repo at revision exist in dir, downloading
// only those that are missing.
func (c *Client) Fetch(ctx context.Context, repo, revision, dir string) (Artifacts, error) {
	if repo == "" {
		return Artifacts{}, fmt.Errorf("hub: empty model repository")
	}
	if revision == "" {
		revision = "main"
	}

	for _, f := range remoteFiles {
		dest := filepath.Join(dir, f.local)
		if cached(dest) {
			continue
		}
		if err := c.Download(ctx, resolvePath(repo, revision, f.remote), dest); err != nil {
			return Artifacts{}, fmt.Errorf("hub: fetch %s from %s: %w", f.remote, repo, err)
		}
	}
	return artifactsIn(dir), nil
}

// CacheDir returns the default cache directory for repo under the user's
// cache root, e.g. ~/.cache/sentiment/distilbert--distilbert-base-uncased-finetuned-sst-2-english.
func CacheDir(repo string) (string, error) {
	root, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("hub: %w", err)
	}
	return filepath.Join(root, "sentiment", strings.ReplaceAll(repo, "/", "--")), nil
}

func artifactsIn(dir string) Artifacts {
	return Artifacts{
		ModelPath:  filepath.Join(dir, ModelFile),
		VocabPath:  filepath.Join(dir, VocabFile),
		ConfigPath: filepath.Join(dir, ConfigFile),
	}
}

// resolvePath builds /<repo>/resolve/<revision>/<file>, escaping the revision
// so branch names with slashes survive.
func resolvePath(repo, revision, file string) string {
	return "/" + repo + "/resolve/" + url.PathEscape(revision) + "/" + file
}

func cached(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
