package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "datacheck",
		Name:      "validations_total",
		Help:      "The total number of template validations, by result",
	}, []string{"result"})

	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Namespace: "datacheck",
		Name:      "validation_time_millis",
		Help:      "The time it takes to validate a document, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000,
		},
	}, []string{"result"})
)

func init() {
	for _, result := range []string{"ok", "bad_type", "mismatched_keys", "invalid_template"} {
		validationsTotal.WithLabelValues(result).Add(0)
	}
}
