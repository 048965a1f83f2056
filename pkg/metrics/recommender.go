package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of supplier recommendation requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommend requests",
	})

	// Categorical values the trained encoders had never seen, per field.
	// These are encoded with the sentinel code, not rejected.
	UnknownCategoryFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "unknown_category_fallbacks_total",
		Help: "Unseen categorical values substituted with the sentinel code",
	}, []string{"field"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		UnknownCategoryFallbacks,
	)
}
