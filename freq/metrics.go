package freq

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mergesTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "datacheck",
		Name:      "freq_merges_total",
		Help:      "The total number of frequency merges",
	})

	mergedWords = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Namespace: "datacheck",
		Name:      "freq_merged_words",
		Help:      "Distinct words in each merge result",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), //nolint:mnd
	})
)
