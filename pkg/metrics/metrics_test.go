package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	reg := prometheus.NewRegistry()
	Init(reg)

	IncCountFallback()
	AddReassigned(3)
	AddReassigned(2)
	AddCacheFailures(1)
	ObserveQuery("ids", 10*time.Millisecond)
	ObserveRequest("POST", "/search", "200", time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(countFallbackTotal))
	assert.Equal(t, float64(5), testutil.ToFloat64(reassignedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(cacheFailuresTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/search", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
