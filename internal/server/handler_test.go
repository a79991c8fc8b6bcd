package server

// Notes:
// - Handler tests run against a real source tree in t.TempDir() so the
//   resolver, renderer and asset path share one filesystem view.
// - fakeRenderer records calls; the parity test uses the real engine.

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/zweifisch/haystack"
	"github.com/zweifisch/haystack/internal/pathmap"
)

type fakeRenderer struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeRenderer) RenderFile(_ context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("<html>" + filepath.Base(path) + "</html>"), nil
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// TestHandler_Status
// ---------------------------------------------------------------------------

func TestHandler_Status(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"index.md":         "# Home",
		"guide.org":        "#+TITLE: Guide",
		"img/logo.png":     "\x89PNG",
		"style.css":        "body{}",
		"drafts/secret.md": "# Secret",
		"blob.unknownext":  "x",
	})
	ignore, err := pathmap.NewIgnore([]string{"drafts/**"})
	if err != nil {
		t.Fatalf("NewIgnore() error: %v", err)
	}
	h := NewHandler(&fakeRenderer{}, pathmap.NewResolver(root, ignore), nil)

	tests := []struct {
		name        string
		method      string
		target      string
		wantStatus  int
		wantType    string
		wantContain string
	}{
		{"root", http.MethodGet, "/", http.StatusOK, "text/html; charset=utf-8", "index.md"},
		{"index", http.MethodGet, "/index.html", http.StatusOK, "text/html; charset=utf-8", "index.md"},
		{"org document", http.MethodGet, "/guide.html", http.StatusOK, "text/html; charset=utf-8", "guide.org"},
		{"png asset", http.MethodGet, "/img/logo.png", http.StatusOK, "image/png", "PNG"},
		{"css asset", http.MethodGet, "/style.css", http.StatusOK, "text/css; charset=utf-8", "body{}"},
		{"unknown extension", http.MethodGet, "/blob.unknownext", http.StatusOK, "application/octet-stream", "x"},
		{"raw source", http.MethodGet, "/index.md", http.StatusOK, "", "# Home"},
		{"missing document", http.MethodGet, "/missing.html", http.StatusNotFound, "", ""},
		{"missing asset", http.MethodGet, "/missing.png", http.StatusNotFound, "", ""},
		{"ignored", http.MethodGet, "/drafts/secret.html", http.StatusNotFound, "", ""},
		{"traversal", http.MethodGet, "/a/../../etc/passwd", http.StatusBadRequest, "", ""},
		{"post", http.MethodPost, "/", http.StatusMethodNotAllowed, "", ""},
		{"delete", http.MethodDelete, "/index.html", http.StatusMethodNotAllowed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, tt.method, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantType != "" {
				if got := rec.Header().Get("Content-Type"); got != tt.wantType {
					t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
				}
			}
			if tt.wantContain != "" && !strings.Contains(rec.Body.String(), tt.wantContain) {
				t.Errorf("body %q missing %q", rec.Body.String(), tt.wantContain)
			}
		})
	}
}

func TestHandler_MethodNotAllowedSetsAllow(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeRenderer{}, pathmap.NewResolver(t.TempDir(), nil), nil)
	rec := do(t, h, http.MethodPut, "/")

	if got := rec.Header().Get("Allow"); got != "GET, HEAD" {
		t.Errorf("Allow = %q", got)
	}
}

func TestHandler_DocumentHeaders(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.md": "# A"})
	h := NewHandler(&fakeRenderer{}, pathmap.NewResolver(root, nil), nil)

	rec := do(t, h, http.MethodGet, "/a.html")
	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}

	head := do(t, h, http.MethodHead, "/a.html")
	if head.Code != http.StatusOK {
		t.Fatalf("HEAD status = %d", head.Code)
	}
	if head.Body.Len() != 0 {
		t.Errorf("HEAD body = %q, want empty", head.Body.String())
	}
	if head.Header().Get("Content-Length") != rec.Header().Get("Content-Length") {
		t.Error("HEAD and GET Content-Length differ")
	}
}

func TestHandler_RenderError(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.md": "# A", "b.md": "# B"})
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	renderer := &fakeRenderer{err: errors.New("boom")}
	h := NewHandler(renderer, pathmap.NewResolver(root, nil), log)

	rec := do(t, h, http.MethodGet, "/a.html")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(logs.String(), "boom") {
		t.Errorf("render error not logged: %s", logs.String())
	}

	// The failure is per request.
	renderer.mu.Lock()
	renderer.err = nil
	renderer.mu.Unlock()
	if rec := do(t, h, http.MethodGet, "/b.html"); rec.Code != http.StatusOK {
		t.Errorf("next request status = %d, want 200", rec.Code)
	}
}

func TestHandler_RendersFreshOnEveryRequest(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.md": "# A"})
	renderer := &fakeRenderer{}
	h := NewHandler(renderer, pathmap.NewResolver(root, nil), nil)

	do(t, h, http.MethodGet, "/a.html")
	do(t, h, http.MethodGet, "/a.html")

	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	if len(renderer.calls) != 2 {
		t.Errorf("RenderFile called %d times, want 2", len(renderer.calls))
	}
}

// ---------------------------------------------------------------------------
// TestHandler_Engine
// ---------------------------------------------------------------------------

func TestHandler_Engine(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"index.md": "# Welcome\n\n[next](next.md)\n",
		"next.md":  "# Next\n",
	})
	engine, err := haystack.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	h := NewHandler(engine, pathmap.NewResolver(root, nil), nil)

	slash := do(t, h, http.MethodGet, "/")
	index := do(t, h, http.MethodGet, "/index.html")
	if slash.Code != http.StatusOK || index.Code != http.StatusOK {
		t.Fatalf("status = %d, %d", slash.Code, index.Code)
	}
	if slash.Body.String() != index.Body.String() {
		t.Error("/ and /index.html differ")
	}
	if !strings.Contains(slash.Body.String(), "<title>Welcome</title>") {
		t.Error("title missing")
	}
	if !strings.Contains(slash.Body.String(), `href="next.html"`) {
		t.Error("document link not rewritten")
	}

	// Edits show up on the next request.
	if err := os.WriteFile(filepath.Join(root, "next.md"), []byte("# Edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	next := do(t, h, http.MethodGet, "/next.html")
	if !strings.Contains(next.Body.String(), "<title>Edited</title>") {
		t.Error("edit not picked up")
	}
}

// ---------------------------------------------------------------------------
// TestLogRequests
// ---------------------------------------------------------------------------

func TestLogRequests(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short and stout")
	})
	h := LogRequests(inner, log)

	rec := do(t, h, http.MethodGet, "/pot")
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}

	out := logs.String()
	for _, want := range []string{"method=GET", "path=/pot", "status=418", "bytes=15", "duration="} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
}

func TestLogRequests_ImplicitOK(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	h := LogRequests(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), log)

	do(t, h, http.MethodGet, "/")
	if !strings.Contains(logs.String(), "status=200") {
		t.Errorf("log = %s, want status=200", logs.String())
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"a.png", "image/png"},
		{"dir/a.JPG", "image/jpeg"},
		{"noext", "application/octet-stream"},
		{"a.zzzunknown", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := contentType(tt.name); got != tt.want {
			t.Errorf("contentType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
