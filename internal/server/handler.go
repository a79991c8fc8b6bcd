package server

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"strconv"

	"github.com/zweifisch/haystack/internal/pathmap"
)

const htmlContentType = "text/html; charset=utf-8"

// Renderer turns a source file into a complete HTML page.
type Renderer interface {
	RenderFile(ctx context.Context, path string) ([]byte, error)
}

// Handler answers GET and HEAD requests for documents and assets.
type Handler struct {
	renderer Renderer
	resolver *pathmap.Resolver
	log      *slog.Logger
}

// NewHandler wires a handler. A nil logger discards records.
func NewHandler(renderer Renderer, resolver *pathmap.Resolver, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{renderer: renderer, resolver: resolver, log: log}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeStatus(w, http.StatusMethodNotAllowed)
		return
	}

	target, err := h.resolver.Resolve(r.URL.Path)
	if err != nil {
		switch {
		case errors.Is(err, pathmap.ErrInvalidPath):
			writeStatus(w, http.StatusBadRequest)
		case errors.Is(err, pathmap.ErrNotFound):
			writeStatus(w, http.StatusNotFound)
		default:
			h.log.Error("resolve failed", "path", r.URL.Path, "error", err)
			writeStatus(w, http.StatusInternalServerError)
		}
		return
	}

	if target.Format.IsDocument() {
		h.serveDocument(w, r, target)
		return
	}
	h.serveAsset(w, r, target)
}

func (h *Handler) serveDocument(w http.ResponseWriter, r *http.Request, target pathmap.Target) {
	page, err := h.renderer.RenderFile(r.Context(), target.Path)
	if err != nil {
		h.log.Error("render failed", "source", target.Rel, "error", err)
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", htmlContentType)
	header.Set("Cache-Control", "no-cache")
	header.Set("Content-Length", strconv.Itoa(len(page)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(page); err != nil {
		h.log.Debug("write failed", "source", target.Rel, "error", err)
	}
}

func (h *Handler) serveAsset(w http.ResponseWriter, r *http.Request, target pathmap.Target) {
	f, err := os.Open(target.Path) // #nosec G304 -- path resolved under the source root
	if err != nil {
		h.log.Error("open asset failed", "asset", target.Rel, "error", err)
		writeStatus(w, http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		h.log.Error("stat asset failed", "asset", target.Rel, "error", err)
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType(target.Rel))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// contentType looks up the MIME type by extension. Unknown extensions are
// served as opaque bytes.
func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func writeStatus(w http.ResponseWriter, code int) {
	http.Error(w, http.StatusText(code), code)
}

// Compile-time interface check.
var _ http.Handler = (*Handler)(nil)
