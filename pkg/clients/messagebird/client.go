package messagebird

import (
	"context"
	"errors"
	"fmt"

	messagebird "github.com/messagebird/go-rest-api/v9"
	mbsms "github.com/messagebird/go-rest-api/v9/sms"
	log "github.com/sirupsen/logrus"

	"github.com/mbcars/lead-router/pkg/clients/sms"
)

const providerName = "messagebird"

type clientImpl struct {
	client messagebird.Client
}

// NewClient creates a new MessageBird client using the account access key
func NewClient(accessKey string) sms.Provider {
	return &clientImpl{
		client: messagebird.New(accessKey),
	}
}

func (c *clientImpl) Name() string {
	return providerName
}

// CreateMessage sends body to recipient. The MessageBird SDK has no context
// support, so ctx is only checked before the call.
func (c *clientImpl) CreateMessage(ctx context.Context, originator, recipient, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := mbsms.Create(c.client, originator, []string{recipient}, body, nil)
	if err != nil {
		return translateError(err)
	}

	log.Debugf("MessageBird accepted message %s", msg.ID)
	return nil
}

func translateError(err error) error {
	var resp messagebird.ErrorResponse
	if !errors.As(err, &resp) {
		return fmt.Errorf("error sending message via MessageBird: %w", err)
	}

	rejection := &sms.RejectionError{Provider: providerName}
	for _, e := range resp.Errors {
		rejection.Entries = append(rejection.Entries, sms.Entry{
			Code:        e.Code,
			Description: e.Description,
		})
	}
	if len(rejection.Entries) == 0 {
		rejection.Entries = []sms.Entry{{Description: resp.Error()}}
	}
	return rejection
}
