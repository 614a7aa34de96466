package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wsConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "courier_hub",
		Subsystem: "fanout",
		Name:      "connections",
		Help:      "Current number of connected socket clients.",
	})

	eventsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courier_hub",
		Subsystem: "fanout",
		Name:      "events_delivered_total",
		Help:      "Total number of events pushed to connected clients.",
	}, []string{"event"})
)
