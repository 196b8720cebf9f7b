package lending

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "moneymarket",
		Subsystem: "lending",
		Name:      "operations_total",
		Help:      "Mutating operations segmented by operation and outcome.",
	}, []string{"op", "outcome"})

	eventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "moneymarket",
		Subsystem: "lending",
		Name:      "events_total",
		Help:      "Committed events segmented by action.",
	}, []string{"action"})
)

func init() {
	prometheus.MustRegister(opsTotal, eventsTotal)
}
