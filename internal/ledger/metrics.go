package ledger

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

var mutations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_mutations_total",
		Help: "How many expense mutations were attempted, partitioned by operation, origin and result.",
	},
	[]string{"operation", "origin", "result"},
)

// Metrics lists the Prometheus collectors of this package.
var Metrics = []prometheus.Collector{
	mutations,
}

func observe(operation string, e models.Expense, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	origin := models.OriginLocal
	if e.IsRemote() {
		origin = models.OriginRemote
	}

	mutations.WithLabelValues(operation, string(origin), result).Inc()
}
