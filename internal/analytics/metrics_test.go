package analytics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveSearch(3, nil)
	m.ObserveSearch(0, nil)
	m.ObserveSearch(0, errors.New("malformed"))
	assert.Equal(t, 1.0, metricValue(t, m.SearchQueriesTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, metricValue(t, m.SearchQueriesTotal.WithLabelValues("zero_result")))
	assert.Equal(t, 1.0, metricValue(t, m.SearchQueriesTotal.WithLabelValues("error")))

	m.ObserveIngest(nil, 1)
	m.ObserveIngest(nil, 2)
	m.ObserveIngest(errors.New("rejected"), 2)
	assert.Equal(t, 2.0, metricValue(t, m.DocsIndexedTotal))
	assert.Equal(t, 1.0, metricValue(t, m.DocsRejectedTotal))
	assert.Equal(t, 2.0, metricValue(t, m.LiveDocuments))

	m.ObserveRemoval(2, 0)
	m.ObserveDuplicates(2)
	assert.Equal(t, 2.0, metricValue(t, m.DocsRemovedTotal))
	assert.Equal(t, 2.0, metricValue(t, m.DuplicatesRemoved))
	assert.Equal(t, 0.0, metricValue(t, m.LiveDocuments))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSearch(1, nil)
		m.ObserveIngest(nil, 1)
		m.ObserveRemoval(1, 0)
		m.ObserveDuplicates(1)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveIngest(nil, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "docs_indexed_total 1"))
}
