package sitemap

import (
	"net/http"
	"slices"
)

// Handler serves a sitemap rendered from a fixed entry list.
type Handler struct {
	baseURL string
	entries []Entry
	opts    Options
}

// NewHandler creates a Handler. The entry slice is copied, so the caller may
// reuse it.
func NewHandler(baseURL string, entries []Entry, opts Options) *Handler {
	return &Handler{
		baseURL: baseURL,
		entries: slices.Clone(entries),
		opts:    opts,
	}
}

// ServeHTTP writes the sitemap document. A request whose context ends mid-render
// simply gets a truncated body; there is nothing to clean up.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentType)
	_ = Render(r.Context(), w, h.baseURL, h.entries, h.opts)
}

// Register mounts a Handler for entries at GET /sitemap.xml on mux and returns it.
func Register(mux *http.ServeMux, baseURL string, entries []Entry, opts Options) http.Handler {
	h := NewHandler(baseURL, entries, opts)
	mux.Handle("GET /"+Path, h)
	return h
}
