package analytics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the search server.
type Metrics struct {
	SearchQueriesTotal   *prometheus.CounterVec
	SearchResultsCount   prometheus.Histogram
	HistoryEmptyRequests prometheus.Gauge
	DocsIndexedTotal     prometheus.Counter
	DocsRejectedTotal    prometheus.Counter
	DocsRemovedTotal     prometheus.Counter
	DuplicatesRemoved    prometheus.Counter
	LiveDocuments        prometheus.Gauge
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	registry             prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg.
// Pass prometheus.NewRegistry() in tests to keep registrations isolated.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total search queries by result type (hit, zero_result, error).",
			},
			[]string{"result_type"},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of results returned per search query.",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
		),
		HistoryEmptyRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "request_history_empty_requests",
				Help: "Empty-result requests currently retained by the request history window.",
			},
		),
		DocsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_indexed_total",
				Help: "Total documents indexed.",
			},
		),
		DocsRejectedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_rejected_total",
				Help: "Total documents rejected at ingest.",
			},
		),
		DocsRemovedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_removed_total",
				Help: "Total documents removed.",
			},
		),
		DuplicatesRemoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "duplicates_removed_total",
				Help: "Total documents removed as duplicates.",
			},
		),
		LiveDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "live_documents",
				Help: "Number of documents currently in the index.",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.SearchQueriesTotal,
		m.SearchResultsCount,
		m.HistoryEmptyRequests,
		m.DocsIndexedTotal,
		m.DocsRejectedTotal,
		m.DocsRemovedTotal,
		m.DuplicatesRemoved,
		m.LiveDocuments,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSearch records the outcome of one search.
func (m *Metrics) ObserveSearch(resultCount int, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.SearchQueriesTotal.WithLabelValues("error").Inc()
		return
	case resultCount == 0:
		m.SearchQueriesTotal.WithLabelValues("zero_result").Inc()
	default:
		m.SearchQueriesTotal.WithLabelValues("hit").Inc()
	}
	m.SearchResultsCount.Observe(float64(resultCount))
}

// ObserveIngest records an ingest attempt and the resulting live document count.
func (m *Metrics) ObserveIngest(err error, liveDocuments int) {
	if m == nil {
		return
	}
	if err != nil {
		m.DocsRejectedTotal.Inc()
		return
	}
	m.DocsIndexedTotal.Inc()
	m.LiveDocuments.Set(float64(liveDocuments))
}

// ObserveRemoval records removed documents and the resulting live document count.
func (m *Metrics) ObserveRemoval(removed int, liveDocuments int) {
	if m == nil {
		return
	}
	m.DocsRemovedTotal.Add(float64(removed))
	m.LiveDocuments.Set(float64(liveDocuments))
}

// ObserveDuplicates records documents removed by duplicate detection.
func (m *Metrics) ObserveDuplicates(removed int) {
	if m == nil {
		return
	}
	m.DuplicatesRemoved.Add(float64(removed))
}
