package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chirpmux_http_requests_total",
		Help: "Total HTTP requests served",
	}, []string{"method", "status"})
	TapOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chirpmux_reaction_taps_total",
		Help: "Total reaction taps by outcome",
	}, []string{"outcome"})
	FeedRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chirpmux_feed_requests_total",
		Help: "Total feed assemblies",
	})
)

func init() {
	prometheus.MustRegister(RequestCount, TapOutcomes, FeedRequests)
}

// IncTapOutcome increments the tap counter for one outcome variant.
func IncTapOutcome(outcome string) { TapOutcomes.WithLabelValues(outcome).Inc() }
