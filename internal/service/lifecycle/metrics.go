package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PackageTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "package_transitions_total",
			Help: "Total number of package status transitions",
		},
		[]string{"from", "to"},
	)

	ReplicaRepairsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "package_replica_repairs_total",
			Help: "Total number of repaired private package copies",
		},
	)
)
