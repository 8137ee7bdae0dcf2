// Prometheus metrics for the broadcast hub of Uplift.

package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the broadcast hub.
type Metrics struct {
	ConnectedClients prometheus.Gauge
	RoomPublishes    prometheus.Counter
	DeliveriesFailed prometheus.Counter
}

// NewMetrics creates and registers the hub collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ConnectedClients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "uplift_broadcast_connected_clients",
			Help: "Number of currently connected live clients",
		}),
		RoomPublishes: factory.NewCounter(prometheus.CounterOpts{
			Name: "uplift_broadcast_room_publishes_total",
			Help: "Total number of room publishes with at least one member",
		}),
		DeliveriesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "uplift_broadcast_deliveries_failed_total",
			Help: "Total number of per-client deliveries dropped during publish",
		}),
	}
}
