package projection

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MalformedDocumentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "projection_malformed_documents_total",
		Help: "Total number of documents dropped by the projection as malformed",
	},
)
