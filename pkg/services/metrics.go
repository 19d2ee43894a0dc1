package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsDispatchedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lead_router",
			Name:      "leads_dispatched_total",
			Help:      "Total leads handed to the SMS provider.",
		},
		[]string{"provider", "outcome"}, // outcome: "accepted", "rejected", "error"
	)

	providerRequestDurationHist = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lead_router",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of SMS provider create-message calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
)
