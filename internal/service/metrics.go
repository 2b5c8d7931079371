package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"giving-tree-admin/internal/form"
)

var (
	submitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "giving_tree",
		Name:      "charity_submits_total",
		Help:      "Charity form submits by outcome.",
	}, []string{"outcome"})

	auditEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "giving_tree",
		Name:      "submission_events_total",
		Help:      "Consumed submission events by outcome.",
	}, []string{"outcome"})
)

func submitOutcome(err error) {
	switch {
	case err == nil:
		submitsTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, form.ErrValidation):
		submitsTotal.WithLabelValues("invalid").Inc()
	case errors.Is(err, form.ErrSubmitInProgress):
		submitsTotal.WithLabelValues("busy").Inc()
	default:
		submitsTotal.WithLabelValues("api_error").Inc()
	}
}

func auditOutcome(outcome string) { auditEventsTotal.WithLabelValues(outcome).Inc() }
