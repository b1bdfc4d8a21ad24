package reports

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reportsGenerated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ledger",
		Subsystem: "reports",
		Name:      "generated_total",
	},
	[]string{"kind", "cached"},
)

func observeReport(kind string, cached bool) {
	reportsGenerated.WithLabelValues(kind, strconv.FormatBool(cached)).Inc()
}
