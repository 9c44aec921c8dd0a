package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	LookupsProcessed prometheus.Counter
	FlightsMatched   prometheus.Counter
	PredictionTime   prometheus.Histogram
	FacetCacheHits   prometheus.Counter
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		LookupsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_processed_total",
			Help:      "The total number of fare lookups served",
		}),
		FlightsMatched: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_matched_total",
			Help:      "The total number of flight records matched across lookups",
		}),
		PredictionTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_time_seconds",
			Help:      "Time taken by model server prediction calls",
			Buckets:   prometheus.DefBuckets,
		}),
		FacetCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facet_cache_hits_total",
			Help:      "The total number of facet summaries served from cache",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
