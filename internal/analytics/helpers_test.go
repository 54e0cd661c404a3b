package analytics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// metricValue reads the current value of a counter or gauge.
func metricValue(t *testing.T, collector prometheus.Metric) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, collector.Write(&metric))
	if metric.Counter != nil {
		return metric.GetCounter().GetValue()
	}
	return metric.GetGauge().GetValue()
}
