package metric_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
)

func TestMetrics_Increment_CountsPerLabels(t *testing.T) {
	registry := metric.NewRegistry("hoshi")
	metrics := registry.Metrics()

	metrics.With(metric.Labels{"result": "hit"}).Increment("media_url_cache_total")
	metrics.With(metric.Labels{"result": "hit"}).Increment("media_url_cache_total")
	metrics.With(metric.Labels{"result": "miss"}).Increment("media_url_cache_total")

	count, err := testutil.GatherAndCount(registry.Gatherer(), "hoshi_media_url_cache_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Duration_RegistersHistogram(t *testing.T) {
	registry := metric.NewRegistry("hoshi")
	registry.Metrics().With(metric.Labels{"code": "200"}).Duration("http_client_request_duration_seconds", time.Second)

	count, err := testutil.GatherAndCount(registry.Gatherer(), "hoshi_http_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
