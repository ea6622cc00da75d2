package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "conversation_srv"

var (
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	queryDuration       *prometheus.HistogramVec
	countFallbackTotal  prometheus.Counter
	reassignedTotal     prometheus.Counter
	cacheFailuresTotal  prometheus.Counter

	initOnce sync.Once
)

// Init registers the metrics with reg. Only the first call registers; until
// then every recorder is a no-op.
func Init(reg prometheus.Registerer) {
	initOnce.Do(func() {
		f := promauto.With(reg)

		httpRequestsTotal = f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"})

		httpRequestDuration = f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"})

		queryDuration = f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Conversation query latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"})

		countFallbackTotal = f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "count_fallback_total",
			Help:      "Conversation counts replaced by the unknown total",
		})

		reassignedTotal = f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reassigned_contacts_total",
			Help:      "Contacts whose assignment was updated",
		})

		cacheFailuresTotal = f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_failures_total",
			Help:      "Contact cache entries that could not be updated",
		})
	})
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route, status string, d time.Duration) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveQuery records the latency of one conversation query step.
func ObserveQuery(query string, d time.Duration) {
	if queryDuration == nil {
		return
	}
	queryDuration.WithLabelValues(query).Observe(d.Seconds())
}

// IncCountFallback counts a total reported as unknown.
func IncCountFallback() {
	if countFallbackTotal == nil {
		return
	}
	countFallbackTotal.Inc()
}

// AddReassigned counts reassigned contacts.
func AddReassigned(n int) {
	if reassignedTotal == nil {
		return
	}
	reassignedTotal.Add(float64(n))
}

// AddCacheFailures counts failed cache updates.
func AddCacheFailures(n int) {
	if cacheFailuresTotal == nil {
		return
	}
	cacheFailuresTotal.Add(float64(n))
}
