package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordMetricsWithNilMetrics(t *testing.T) {
	ctx := context.Background()

	require.NotPanics(t, func() {
		RecordRequestMetric(ctx, nil, "GET", "/api/flights", 200, 5*time.Millisecond)
	})
	require.NotPanics(t, func() {
		RecordDBMetric(ctx, nil, "count_flights", 2*time.Millisecond)
	})
	require.NotPanics(t, func() {
		RecordCacheHit(ctx, nil, "flight:abc")
	})
	require.NotPanics(t, func() {
		RecordCacheMiss(ctx, nil, "flight:abc")
	})
}
