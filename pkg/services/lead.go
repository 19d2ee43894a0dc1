package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/mbcars/lead-router/pkg/clients/sms"
	"github.com/mbcars/lead-router/pkg/models"
	"github.com/mbcars/lead-router/pkg/utils"
)

const (
	leadMessageFormat = "You have a new lead: %s. Call them at %s"

	// UnavailableNotice replaces transport failures in user-facing output.
	UnavailableNotice = "Our messaging service is unavailable right now. Please try again later."
)

// LeadService defines the interface for forwarding leads to sales agents
type LeadService interface {
	Dispatch(ctx context.Context, lead models.Lead) models.DeliveryOutcome
}

type leadServiceImpl struct {
	provider   sms.Provider
	roster     *Roster
	originator string
}

// NewLeadService creates a new lead dispatch service
func NewLeadService(provider sms.Provider, roster *Roster, originator string) LeadService {
	return &leadServiceImpl{
		provider:   provider,
		roster:     roster,
		originator: originator,
	}
}

// LeadMessage builds the text sent to the agent for a lead.
func LeadMessage(lead models.Lead) string {
	return fmt.Sprintf(leadMessageFormat, lead.CustomerName, lead.Phone)
}

// Dispatch sends the lead to one randomly chosen agent. It never retries.
func (s *leadServiceImpl) Dispatch(ctx context.Context, lead models.Lead) models.DeliveryOutcome {
	recipient := s.roster.Pick()
	entry := log.WithFields(log.Fields{
		"provider":  s.provider.Name(),
		"lead":      utils.RedactPhone(lead.Phone),
		"recipient": utils.RedactPhone(recipient),
	})

	timer := prometheus.NewTimer(providerRequestDurationHist.WithLabelValues(s.provider.Name()))
	err := s.provider.CreateMessage(ctx, s.originator, recipient, LeadMessage(lead))
	timer.ObserveDuration()

	outcome := models.DeliveryOutcome{Recipient: recipient}
	if err == nil {
		leadsDispatchedCounter.WithLabelValues(s.provider.Name(), "accepted").Inc()
		entry.Info("Lead forwarded to sales agent")
		return outcome
	}

	var rejection *sms.RejectionError
	if errors.As(err, &rejection) {
		leadsDispatchedCounter.WithLabelValues(s.provider.Name(), "rejected").Inc()
		for _, e := range rejection.Entries {
			outcome.Errors = append(outcome.Errors, models.DeliveryError{
				Code:        e.Code,
				Description: e.Description,
			})
		}
		if len(outcome.Errors) == 0 {
			outcome.Errors = []models.DeliveryError{{Description: rejection.Error()}}
		}
	} else {
		leadsDispatchedCounter.WithLabelValues(s.provider.Name(), "error").Inc()
		entry.WithError(err).Warn("Provider call failed")
		outcome.Errors = []models.DeliveryError{{Description: UnavailableNotice}}
		return outcome
	}

	for _, e := range outcome.Errors {
		entry.WithField("code", e.Code).Warnf("Provider refused lead: %s", e.Description)
	}
	return outcome
}
