package packagestatus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var PublishedEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gateway_published_events_total",
		Help: "Total number of package status events published to Kafka",
	},
	[]string{"status"},
)
