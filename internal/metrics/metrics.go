// Package metrics holds the Prometheus collectors for the dispatch path.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DispatchedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_dispatched_total",
		Help: "Notifications dispatched, labeled by channel",
	}, []string{"channel"})
	DispatchRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_rejected_total",
		Help: "Dispatch requests rejected before sending, labeled by reason",
	}, []string{"reason"})
	DispatchSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "notification_dispatch_seconds",
		Help: "Time to dispatch a notification end-to-end",
	})
)

func init() {
	prometheus.MustRegister(
		DispatchedTotal,
		DispatchRejectedTotal,
		DispatchSeconds,
	)
}
