package tracker

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(sweepsCounter)
	prometheus.MustRegister(notifiedLoginsCounter)
	prometheus.MustRegister(sweepFailuresCounter)
}

var sweepsCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "stalled_login_sweeps_total",
		Help: "Total number of sweep passes over the pending login table",
	},
)

var notifiedLoginsCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "stalled_logins_notified_total",
		Help: "Total number of stalled logins that were notified and purged",
	},
)

var sweepFailuresCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stalled_login_sweep_failures_total",
		Help: "Total number of failures during sweep passes",
	},
	[]string{"stage"},
)
