package reward

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RewardGrantsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reward_grants_total",
			Help: "Total number of rewards granted to volunteers",
		},
	)

	RewardGrantsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reward_grants_skipped_total",
			Help: "Total number of reward grants skipped as already granted",
		},
	)
)
