/*
Package metrics holds the Prometheus collectors exported on /metrics.

HTTP:
  - cinemadia_http_requests_total{operation, code}
  - cinemadia_http_request_duration_seconds{operation}

Domain:
  - cinemadia_vote_transitions_total{from, to}: "none" stands for no vote
  - cinemadia_reviews_total
  - cinemadia_registrations_total
  - cinemadia_cache_requests_total{cache, result}

External catalog:
  - cinemadia_catalog_requests_total{result}: success, failure or rejected
  - cinemadia_catalog_breaker_state: 0 closed, 1 half-open, 2 open
*/
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemadia_http_requests_total",
			Help: "Requests handled, by operation and response code",
		},
		[]string{"operation", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinemadia_http_request_duration_seconds",
			Help:    "Request latency by operation",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"operation"},
	)

	VoteTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemadia_vote_transitions_total",
			Help: "Vote toggles by previous and resulting vote",
		},
		[]string{"from", "to"},
	)

	ReviewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinemadia_reviews_total",
			Help: "Reviews submitted",
		},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinemadia_registrations_total",
			Help: "Accounts registered",
		},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemadia_cache_requests_total",
			Help: "Redis cache lookups by cache name and result",
		},
		[]string{"cache", "result"},
	)

	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemadia_catalog_requests_total",
			Help: "External catalog lookups by result",
		},
		[]string{"result"},
	)

	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinemadia_catalog_breaker_state",
			Help: "Circuit breaker state of the catalog client",
		},
	)
)

// RecordRequest records one handled request.
func RecordRequest(operation, code string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(operation, code).Inc()
	HTTPRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordVote records a vote transition; empty votes are reported as "none".
func RecordVote(from, to string) {
	VoteTransitionsTotal.WithLabelValues(voteLabel(from), voteLabel(to)).Inc()
}

func voteLabel(v string) string {
	if v == "" {
		return "none"
	}
	return v
}

// RecordCache records a cache hit or miss.
func RecordCache(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}
