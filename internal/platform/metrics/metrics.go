package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the URL builder.
type Metrics struct {
	registry          *prometheus.Registry
	requestsTotal     prometheus.Counter
	urlsBuiltTotal    prometheus.Counter
	srcsetsBuiltTotal prometheus.Counter
	signedURLsTotal   prometheus.Counter
	srcsetVariants    prometheus.Histogram
	registeredSources prometheus.Gauge
	errorsTotal       prometheus.Counter
	requestDuration   *prometheus.HistogramVec
}

// New creates and registers Prometheus metrics for the URL builder.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imglab_requests_total",
		Help: "Total number of HTTP requests received",
	})
	urlsBuiltTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imglab_urls_built_total",
		Help: "Total number of single URLs built",
	})
	srcsetsBuiltTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imglab_srcsets_built_total",
		Help: "Total number of srcset strings built",
	})
	signedURLsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imglab_signed_urls_total",
		Help: "Total number of URLs built against secure sources, srcset entries included",
	})
	srcsetVariants := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "imglab_srcset_variants",
		Help:    "Number of entries per built srcset",
		Buckets: []float64{1, 2, 4, 6, 8, 16, 32, 64},
	})
	registeredSources := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "imglab_registered_sources",
		Help: "Number of sources in the registry",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imglab_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "imglab_request_duration_seconds",
		Help:    "HTTP request latency by route pattern and status code",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"route", "code"})

	registry.MustRegister(
		requestsTotal,
		urlsBuiltTotal,
		srcsetsBuiltTotal,
		signedURLsTotal,
		srcsetVariants,
		registeredSources,
		errorsTotal,
		requestDuration,
	)

	return &Metrics{
		registry:          registry,
		requestsTotal:     requestsTotal,
		urlsBuiltTotal:    urlsBuiltTotal,
		srcsetsBuiltTotal: srcsetsBuiltTotal,
		signedURLsTotal:   signedURLsTotal,
		srcsetVariants:    srcsetVariants,
		registeredSources: registeredSources,
		errorsTotal:       errorsTotal,
		requestDuration:   requestDuration,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncURLsBuilt increments the single URL counter.
func (m *Metrics) IncURLsBuilt() {
	m.urlsBuiltTotal.Inc()
}

// ObserveSrcset counts one built srcset with the given number of entries.
func (m *Metrics) ObserveSrcset(entries int) {
	m.srcsetsBuiltTotal.Inc()
	m.srcsetVariants.Observe(float64(entries))
}

// AddSignedURLs adds n to the signed URL counter.
func (m *Metrics) AddSignedURLs(n int) {
	m.signedURLsTotal.Add(float64(n))
}

// SetRegisteredSources sets the registered sources gauge.
func (m *Metrics) SetRegisteredSources(n int) {
	m.registeredSources.Set(float64(n))
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// ObserveRequest records the latency of one request to route.
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values (e.g. registered sources).
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
