package hub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
)

func newHubServer(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var paths []string
	files := map[string]string{
		"/acme/sst2/resolve/main/config.json":     `{"id2label":{"0":"NEGATIVE","1":"POSITIVE"}}`,
		"/acme/sst2/resolve/main/vocab.txt":       "[PAD]\n[UNK]\n[CLS]\n[SEP]\n",
		"/acme/sst2/resolve/main/onnx/model.onnx": "onnx-bytes",
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		out := append([]string(nil), paths...)
		sort.Strings(out)
		return out
	}
}

func TestFetch_DownloadsAllFiles(t *testing.T) {
	srv, requested := newHubServer(t)
	dir := t.TempDir()

	a, err := New(srv.URL, "").Fetch(context.Background(), "acme/sst2", "", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ModelPath != filepath.Join(dir, ModelFile) {
		t.Errorf("unexpected model path %s", a.ModelPath)
	}
	got, _ := os.ReadFile(a.ModelPath)
	if string(got) != "onnx-bytes" {
		t.Errorf("unexpected model content %q", got)
	}
	if n := len(requested()); n != 3 {
		t.Errorf("expected 3 requests, got %d: %v", n, requested())
	}
}

func TestFetch_SkipsCachedFiles(t *testing.T) {
	srv, requested := newHubServer(t)
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, VocabFile), []byte("cached"), 0o644)
	os.WriteFile(filepath.Join(dir, ConfigFile), []byte("{}"), 0o644)

	if _, err := New(srv.URL, "").Fetch(context.Background(), "acme/sst2", "main", dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"/acme/sst2/resolve/main/onnx/model.onnx"}
	if got := requested(); len(got) != 1 || got[0] != want[0] {
		t.Fatalf("expected only %v, got %v", want, got)
	}
	vocab, _ := os.ReadFile(filepath.Join(dir, VocabFile))
	if string(vocab) != "cached" {
		t.Errorf("cached vocab overwritten: %q", vocab)
	}
}

func TestFetch_UnknownRepo(t *testing.T) {
	srv, _ := newHubServer(t)

	_, err := New(srv.URL, "").Fetch(context.Background(), "acme/missing", "main", t.TempDir())

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected wrapped 404, got %v", err)
	}
	if !strings.Contains(err.Error(), "acme/missing") {
		t.Errorf("error should name the repo: %v", err)
	}
}

func TestFetch_EmptyRepo(t *testing.T) {
	if _, err := New("http://unused", "").Fetch(context.Background(), "", "main", t.TempDir()); err == nil {
		t.Fatal("expected error for empty repo")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	if _, err := Resolve(dir); !errors.Is(err, ErrNotCached) {
		t.Fatalf("expected ErrNotCached, got %v", err)
	}

	for _, f := range []string{ModelFile, VocabFile, ConfigFile} {
		os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644)
	}
	a, err := Resolve(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.VocabPath != filepath.Join(dir, VocabFile) {
		t.Errorf("unexpected vocab path %s", a.VocabPath)
	}
}

func TestResolvePath(t *testing.T) {
	got := resolvePath("distilbert/sst2", "refs/pr/1", "onnx/model.onnx")
	want := "/distilbert/sst2/resolve/refs%2Fpr%2F1/onnx/model.onnx"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir, err := CacheDir("distilbert/distilbert-base-uncased-finetuned-sst-2-english")
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join("sentiment", "distilbert--distilbert-base-uncased-finetuned-sst-2-english")) {
		t.Errorf("unexpected cache dir %s", dir)
	}
}
