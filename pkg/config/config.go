package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrMissingKey  = errors.New("missing required setting")
	ErrEmptyRoster = errors.New("no sales agent numbers configured")
)

// Config holds all application configuration values. It is built once at
// startup and handed to the constructors that need it; nothing mutates it.
type Config struct {
	SecretKey         string
	SalesAgentNumbers []string

	SMSProvider       string
	SMSOriginator     string
	TwilioAccountSID  string
	TextMagicUsername string

	Port     string
	LogLevel string
	GinMode  string
}

// LoadConfig reads the settings file at path. SECRET_KEY and
// SALES_AGENT_NUMBERS must be present in the file; operational settings may
// be overridden from the environment.
func LoadConfig(path string) (*Config, error) {
	settings, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
	}

	secret, ok := settings["SECRET_KEY"]
	if !ok {
		return nil, fmt.Errorf("%w: SECRET_KEY", ErrMissingKey)
	}

	rawNumbers, ok := settings["SALES_AGENT_NUMBERS"]
	if !ok {
		return nil, fmt.Errorf("%w: SALES_AGENT_NUMBERS", ErrMissingKey)
	}

	if rawNumbers == "" {
		return nil, ErrEmptyRoster
	}
	// Entries are passed through untouched, surrounding spaces included.
	numbers := strings.Split(rawNumbers, ",")

	return &Config{
		SecretKey:         secret,
		SalesAgentNumbers: numbers,
		SMSProvider:       lookup(settings, "SMS_PROVIDER", "messagebird"),
		SMSOriginator:     lookup(settings, "SMS_ORIGINATOR", "M. B. Cars"),
		TwilioAccountSID:  lookup(settings, "TWILIO_ACCOUNT_SID", ""),
		TextMagicUsername: lookup(settings, "TEXTMAGIC_USERNAME", ""),
		Port:              lookup(settings, "PORT", "8080"),
		LogLevel:          lookup(settings, "LOG_LEVEL", "info"),
		GinMode:           lookup(settings, "GIN_MODE", "release"),
	}, nil
}

// lookup prefers the process environment, then the settings file, then def.
func lookup(settings map[string]string, key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v, ok := settings[key]; ok && v != "" {
		return v
	}
	return def
}
