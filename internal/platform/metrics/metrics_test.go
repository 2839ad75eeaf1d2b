package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.IncURLsBuilt()
	m.IncURLsBuilt()
	m.ObserveSrcset(6)
	m.AddSignedURLs(3)
	m.IncErrors()

	require.Equal(t, 2.0, testutil.ToFloat64(m.urlsBuiltTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.srcsetsBuiltTotal))
	require.Equal(t, 3.0, testutil.ToFloat64(m.signedURLsTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal))
}

func TestMetrics_Handler_updatesGauges(t *testing.T) {
	m := New()
	h := m.Handler(func() { m.SetRegisteredSources(4) })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "imglab_registered_sources 4"), rec.Body.String())
}

func TestRequestMiddleware_countsErrors(t *testing.T) {
	m := New()
	mw := RequestMiddleware(m)

	ok := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))
	bad := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) }))

	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	bad.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal))
}

func TestRequestMiddleware_routeLatency(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(RequestMiddleware(m))
	r.Get("/sources/{source}/url", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sources/assets/url", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sources/media/url", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))

	rec := httptest.NewRecorder()
	m.Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	require.Contains(t, body, `imglab_request_duration_seconds_count{code="200",route="/sources/{source}/url"} 2`)
	require.True(t, strings.Contains(body, `imglab_request_duration_seconds_count{code="404",`), body)
}
