// Package clients selects the SMS vendor client named in the configuration.
package clients

import (
	"fmt"
	"strings"

	"github.com/mbcars/lead-router/pkg/clients/messagebird"
	"github.com/mbcars/lead-router/pkg/clients/sms"
	"github.com/mbcars/lead-router/pkg/clients/textmagic"
	"github.com/mbcars/lead-router/pkg/clients/twilio"
	"github.com/mbcars/lead-router/pkg/config"
)

// NewProvider builds the SMS client for cfg.SMSProvider. SECRET_KEY is the
// vendor credential in every case.
func NewProvider(cfg *config.Config) (sms.Provider, error) {
	switch strings.ToLower(cfg.SMSProvider) {
	case "", "messagebird":
		return messagebird.NewClient(cfg.SecretKey), nil
	case "twilio":
		if cfg.TwilioAccountSID == "" {
			return nil, fmt.Errorf("twilio provider requires TWILIO_ACCOUNT_SID")
		}
		return twilio.NewClient(cfg.TwilioAccountSID, cfg.SecretKey), nil
	case "textmagic":
		if cfg.TextMagicUsername == "" {
			return nil, fmt.Errorf("textmagic provider requires TEXTMAGIC_USERNAME")
		}
		return textmagic.NewClient(cfg.TextMagicUsername, cfg.SecretKey), nil
	default:
		return nil, fmt.Errorf("unknown SMS provider %q", cfg.SMSProvider)
	}
}
