package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoreComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerrank_score_computations_total",
			Help: "Total number of score aggregations computed, by kind",
		},
		[]string{"kind"},
	)

	ScoreCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerrank_score_cache_results_total",
			Help: "Score cache lookups by kind and result (hit, miss, error)",
		},
		[]string{"kind", "result"},
	)

	LeaderboardDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peerrank_leaderboard_duration_seconds",
			Help:    "Duration of leaderboard computation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	VerificationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerrank_verification_decisions_total",
			Help: "Verification and recommendation decisions, by subject and resulting status",
		},
		[]string{"subject", "status"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerrank_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peerrank_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)
