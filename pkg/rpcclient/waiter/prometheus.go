package waiter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics for monitoring service.
var (
	sendsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of transactions sent",
			Name:      "submitter_sends_total",
			Namespace: "omnibox",
		},
	)
	pollsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of transaction status polls",
			Name:      "submitter_polls_total",
			Namespace: "omnibox",
		},
	)
	timeoutsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of gateway timeouts received while sending or polling",
			Name:      "submitter_timeouts_total",
			Namespace: "omnibox",
		},
	)
	submitTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Help:      "Time from first send to the final submission result",
			Name:      "submitter_submit_time",
			Namespace: "omnibox",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)
)

func init() {
	prometheus.MustRegister(
		sendsTotal,
		pollsTotal,
		timeoutsTotal,
		submitTime,
	)
}
