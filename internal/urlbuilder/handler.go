package urlbuilder

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"imglab-urls/internal/imglab"
	"imglab-urls/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const textContentType = "text/plain; charset=utf-8"

// pathParam is the query key holding the resource path; it is never
// forwarded as a transformation parameter.
const pathParam = "path"

// Handler exposes URL builder HTTP endpoints using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler that uses the given Service, Logger, and optional Metrics.
// Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// Routes mounts the handler endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/sources", h.ListSources)
	r.Get("/sequence", h.GetSequence)
	r.Route("/sources/{source}", func(r chi.Router) {
		r.Get("/url", h.GetURL)
		r.Get("/srcset", h.GetSrcset)
	})
}

// GetURL handles GET /sources/{source}/url?path=example.jpeg&width=200.
func (h *Handler) GetURL(w http.ResponseWriter, r *http.Request) {
	name, path, params, ok := h.parseBuildRequest(w, r)
	if !ok {
		return
	}

	u, err := h.svc.URL(name, path, params)
	if err != nil {
		h.writeError(w, name, err)
		return
	}

	h.log.Debug("url built", slog.String("source", string(name)), slog.String("path", path))
	if h.metrics != nil {
		h.metrics.IncURLsBuilt()
		if h.isSecure(name) {
			h.metrics.AddSignedURLs(1)
		}
	}
	writeText(w, u)
}

// GetSrcset handles GET /sources/{source}/srcset?path=example.jpeg&width=100..800.
func (h *Handler) GetSrcset(w http.ResponseWriter, r *http.Request) {
	name, path, params, ok := h.parseBuildRequest(w, r)
	if !ok {
		return
	}

	srcset, err := h.svc.Srcset(name, path, params)
	if err != nil {
		h.writeError(w, name, err)
		return
	}

	entries := strings.Count(srcset, "\n") + 1
	h.log.Debug("srcset built",
		slog.String("source", string(name)),
		slog.String("path", path),
		slog.Int("entries", entries))
	if h.metrics != nil {
		h.metrics.ObserveSrcset(entries)
		if h.isSecure(name) {
			h.metrics.AddSignedURLs(entries)
		}
	}
	writeText(w, srcset)
}

// GetSequence handles GET /sequence?first=100&last=8192&size=16.
func (h *Handler) GetSequence(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	first, errFirst := strconv.Atoi(q.Get("first"))
	last, errLast := strconv.Atoi(q.Get("last"))
	if errFirst != nil || errLast != nil {
		http.Error(w, "first and last must be integers", http.StatusBadRequest)
		return
	}
	size := 0
	if s := q.Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "size must be an integer", http.StatusBadRequest)
			return
		}
		size = n
	}

	seq, err := h.svc.Sequence(first, last, size)
	if err != nil {
		h.writeError(w, "", err)
		return
	}
	writeJSON(w, seq)
}

// ListSources handles GET /sources.
func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Sources())
}

func (h *Handler) parseBuildRequest(w http.ResponseWriter, r *http.Request) (SourceName, string, *imglab.Params, bool) {
	name := SourceName(chi.URLParam(r, "source"))
	path := r.URL.Query().Get(pathParam)
	if name == "" || path == "" {
		http.Error(w, "source and path are required", http.StatusBadRequest)
		return "", "", nil, false
	}

	params, err := ParseQuery(r.URL.RawQuery, pathParam)
	if err != nil {
		h.writeError(w, name, err)
		return "", "", nil, false
	}
	return name, path, params, true
}

func (h *Handler) isSecure(name SourceName) bool {
	src, ok := h.svc.repo.Source(name)
	return ok && src.IsSecure()
}

// writeError maps err onto a status code. Nothing but the error is written.
func (h *Handler) writeError(w http.ResponseWriter, name SourceName, err error) {
	status := StatusFor(err)
	attrs := []any{slog.String("source", string(name)), slog.String("error", err.Error())}
	switch status {
	case http.StatusNotFound:
		h.log.Info("unknown source", attrs...)
	case http.StatusBadRequest:
		h.log.Debug("invalid build request", attrs...)
	default:
		h.log.Error("build failed", attrs...)
	}
	http.Error(w, err.Error(), status)
}

// StatusFor returns the HTTP status for an error returned by the Service.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidParam),
		errors.Is(err, imglab.ErrInvalidColor),
		errors.Is(err, imglab.ErrInvalidPosition),
		errors.Is(err, imglab.ErrInvalidSource),
		errors.Is(err, imglab.ErrMalformedRange),
		errors.Is(err, imglab.ErrUnresolvedParam),
		errors.Is(err, imglab.ErrAxisConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", textContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
