// Prometheus metrics for the analytics pipeline of Uplift.

package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters of the analytics pipeline.
type Metrics struct {
	EventsAssembled prometheus.Counter
	EventsDropped   prometheus.Counter
}

// NewMetrics creates and registers the analytics counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsAssembled: factory.NewCounter(prometheus.CounterOpts{
			Name: "uplift_analytics_events_assembled_total",
			Help: "Total number of analytics events assembled at request completion",
		}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "uplift_analytics_events_dropped_total",
			Help: "Total number of analytics events dropped during sink delivery",
		}),
	}
}
