package service

import "github.com/prometheus/client_golang/prometheus"

var (
	transitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gochat",
		Subsystem: "presence",
		Name:      "transitions_total",
		Help:      "Presence transitions written to the store, by resulting status.",
	}, []string{"status"})

	refreshesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gochat",
		Subsystem: "presence",
		Name:      "refreshes_total",
		Help:      "Heartbeats that extended an existing presence key.",
	})

	expiriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gochat",
		Subsystem: "presence",
		Name:      "expiries_total",
		Help:      "Presence keys reported expired by the store.",
	})
)

func init() {
	prometheus.MustRegister(transitionsTotal, refreshesTotal, expiriesTotal)
}
