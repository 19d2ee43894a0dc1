package messagebird

import (
	"context"
	"errors"
	"testing"

	messagebird "github.com/messagebird/go-rest-api/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbcars/lead-router/pkg/clients/sms"
)

func TestTranslateError_ErrorResponse(t *testing.T) {
	err := translateError(messagebird.ErrorResponse{
		Errors: []messagebird.Error{
			{Code: 21, Description: "Invalid number", Parameter: "recipients"},
			{Code: 2, Description: "Request not allowed"},
		},
	})

	var rejection *sms.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "messagebird", rejection.Provider)
	assert.Equal(t, []sms.Entry{
		{Code: 21, Description: "Invalid number"},
		{Code: 2, Description: "Request not allowed"},
	}, rejection.Entries)
}

func TestTranslateError_TransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	err := translateError(cause)

	var rejection *sms.RejectionError
	assert.False(t, errors.As(err, &rejection))
	assert.ErrorIs(t, err, cause)
}

func TestCreateMessage_CancelledContext(t *testing.T) {
	c := NewClient("test_key")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CreateMessage(ctx, "M. B. Cars", "+15550001", "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
