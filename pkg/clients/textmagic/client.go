package textmagic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mbcars/lead-router/pkg/clients/sms"
)

const providerName = "textmagic"

type clientImpl struct {
	apiKey     string
	username   string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new TextMagic client
func NewClient(username, apiKey string) sms.Provider {
	return &clientImpl{
		apiKey:     apiKey,
		username:   username,
		baseURL:    "https://rest.textmagic.com/api/v2",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *clientImpl) Name() string {
	return providerName
}

// errorResponse is the body TextMagic returns with a 4xx status.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Errors  struct {
		Common []string            `json:"common"`
		Fields map[string][]string `json:"fields"`
	} `json:"errors"`
}

func (c *clientImpl) CreateMessage(ctx context.Context, originator, recipient, body string) error {
	sendURL := fmt.Sprintf("%s/messages", c.baseURL)

	// Create payload
	payload := map[string]interface{}{
		"phones": recipient,
		"text":   body,
		"from":   originator,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication headers
	req.SetBasicAuth(c.username, c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
		return rejectionFromBody(resp.StatusCode, respBody)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error from TextMagic API: %d %s", resp.StatusCode, string(respBody))
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(respBody, &created); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}

	log.Debugf("TextMagic accepted message %d", created.ID)
	return nil
}

// rejectionFromBody turns a TextMagic validation or auth failure into a
// RejectionError, one entry per reported problem.
func rejectionFromBody(status int, body []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &sms.RejectionError{
			Provider: providerName,
			Entries:  []sms.Entry{{Code: status, Description: string(body)}},
		}
	}

	code := parsed.Code
	if code == 0 {
		code = status
	}

	rejection := &sms.RejectionError{Provider: providerName}
	for _, msg := range parsed.Errors.Common {
		rejection.Entries = append(rejection.Entries, sms.Entry{Code: code, Description: msg})
	}

	fields := make([]string, 0, len(parsed.Errors.Fields))
	for field := range parsed.Errors.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		for _, msg := range parsed.Errors.Fields[field] {
			rejection.Entries = append(rejection.Entries, sms.Entry{
				Code:        code,
				Description: fmt.Sprintf("%s: %s", field, msg),
			})
		}
	}

	if len(rejection.Entries) == 0 {
		rejection.Entries = []sms.Entry{{Code: code, Description: parsed.Message}}
	}
	return rejection
}
