package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	claimWon  = "won"
	claimLost = "lost"
	claimAuto = "auto"
)

var (
	claimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "dispatch",
			Name:      "claims_total",
			Help:      "Delivery claims by result.",
		},
		[]string{"result"},
	)

	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Accepted status transitions.",
		},
		[]string{"entity", "status"},
	)

	mirrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "lifecycle",
			Name:      "order_mirrors_total",
			Help:      "Order statuses mirrored from delivery milestones.",
		},
		[]string{"status"},
	)

	fanoutFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "fanout",
			Name:      "publish_failures_total",
			Help:      "Events that could not be published.",
		},
		[]string{"event"},
	)
)
