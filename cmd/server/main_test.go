package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imglab-urls/internal/platform/metrics"

	"github.com/stretchr/testify/require"
)

func TestLoadRepository(t *testing.T) {
	t.Setenv("IMGLAB_SOURCE", "fixtures")
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources:\n  - name: assets\n  - name: media\n"), 0o600))

	repo, err := loadRepository(path)
	require.NoError(t, err)
	require.Equal(t, 3, repo.Count())
}

func TestLoadRepository_missingFile(t *testing.T) {
	t.Setenv("IMGLAB_SOURCE", "")

	repo, err := loadRepository(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 0, repo.Count())
}

func TestLoadRepository_duplicate(t *testing.T) {
	t.Setenv("IMGLAB_SOURCE", "assets")
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources:\n  - name: assets\n"), 0o600))

	_, err := loadRepository(path)
	require.Error(t, err)
}

func TestRouter(t *testing.T) {
	t.Setenv("IMGLAB_SOURCE", "assets")
	repo, err := loadRepository(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	met := metrics.New()
	r := newRouter(repo, slog.New(slog.NewTextHandler(io.Discard, nil)), met)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sources/assets/url?path=example.jpeg&width=200", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://assets.imglab-cdn.net/example.jpeg?width=200", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sources/missing/url?path=example.jpeg", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, "imglab_registered_sources 1"), body)
	require.True(t, strings.Contains(body, "imglab_errors_total 1"), body)
	require.True(t, strings.Contains(body, "imglab_urls_built_total 1"), body)
}
