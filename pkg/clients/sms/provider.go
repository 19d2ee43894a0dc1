// Package sms defines the contract every SMS vendor client satisfies.
package sms

import (
	"context"
	"fmt"
	"strings"
)

// Provider sends a single text message through an SMS vendor.
type Provider interface {
	Name() string
	CreateMessage(ctx context.Context, originator, recipient, body string) error
}

// Entry is one error reported by the vendor for a rejected message.
type Entry struct {
	Code        int
	Description string
}

// RejectionError is returned when the vendor answered but refused the
// message. Transport failures are returned as plain errors.
type RejectionError struct {
	Provider string
	Entries  []Entry
}

func (e *RejectionError) Error() string {
	descriptions := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		descriptions = append(descriptions, entry.Description)
	}
	return fmt.Sprintf("%s rejected message: %s", e.Provider, strings.Join(descriptions, "; "))
}
