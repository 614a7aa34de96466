package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourceKafka    = "kafka"
	sourceRabbitMQ = "rabbitmq"
)

var (
	relayProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "relay_consumer",
			Name:      "messages_processed_total",
			Help:      "Total number of relayed room messages handed to the local hub",
		},
		[]string{"source"},
	)

	relayFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "relay_consumer",
			Name:      "messages_failed_total",
			Help:      "Total number of relayed room messages that could not be handled",
		},
		[]string{"source"},
	)

	relayDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "relay_consumer",
			Name:      "messages_dlq_total",
			Help:      "Total number of relayed room messages written to DLQ",
		},
	)

	commitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "courier_hub",
			Subsystem: "relay_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	relayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "courier_hub",
			Subsystem: "relay_consumer",
			Name:      "message_duration_seconds",
			Help:      "Histogram of relayed message handling durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)
)
