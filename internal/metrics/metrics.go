// Package metrics registers the two Prometheus collectors the driver loop
// updates once per matrix cell. Exposing them over HTTP is left to the
// caller; this package only registers and updates.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dnsclient_queries_total", Help: "Total queries issued, by transport and response code"},
		[]string{"transport", "rcode"},
	)
	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "dnsclient_query_duration_seconds", Help: "Query round-trip time, by transport", Buckets: prometheus.DefBuckets},
		[]string{"transport"},
	)
)

func init() {
	prometheus.MustRegister(QueriesTotal, QueryDuration)
}

// Observe records one completed matrix cell: its transport, the response's
// rcode name (or "error" when the cell failed before a response arrived),
// and how long the round trip took.
func Observe(transport, rcode string, duration time.Duration) {
	QueriesTotal.WithLabelValues(transport, rcode).Inc()
	QueryDuration.WithLabelValues(transport).Observe(duration.Seconds())
}
