package twilio

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/mbcars/lead-router/pkg/clients/sms"
)

const providerName = "twilio"

type clientImpl struct {
	client *twilio.RestClient
}

// NewClient creates a new Twilio messaging client
func NewClient(accountSid, authToken string) sms.Provider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &clientImpl{
		client: client,
	}
}

func (c *clientImpl) Name() string {
	return providerName
}

func (c *clientImpl) CreateMessage(ctx context.Context, originator, recipient, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetFrom(originator)
	params.SetTo(recipient)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return translateError(err)
	}

	if resp.Sid != nil {
		log.Debugf("Twilio accepted message %s", *resp.Sid)
	}
	return nil
}

func translateError(err error) error {
	var restErr *twclient.TwilioRestError
	if !errors.As(err, &restErr) {
		return fmt.Errorf("error sending message via Twilio: %w", err)
	}

	return &sms.RejectionError{
		Provider: providerName,
		Entries: []sms.Entry{{
			Code:        restErr.Code,
			Description: restErr.Message,
		}},
	}
}
