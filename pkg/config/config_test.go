package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config_file.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "SMS_PROVIDER", "SMS_ORIGINATOR"} {
		t.Setenv(key, "")
	}
	path := writeSettings(t, "SECRET_KEY=live_abc123\nSALES_AGENT_NUMBERS=+15550001,+15550002\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "live_abc123", cfg.SecretKey)
	assert.Equal(t, []string{"+15550001", "+15550002"}, cfg.SalesAgentNumbers)
	assert.Equal(t, "messagebird", cfg.SMSProvider)
	assert.Equal(t, "M. B. Cars", cfg.SMSOriginator)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_NumbersAreNotTrimmed(t *testing.T) {
	path := writeSettings(t, "SECRET_KEY=k\nSALES_AGENT_NUMBERS=\"+15550001, +15550002\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"+15550001", " +15550002"}, cfg.SalesAgentNumbers)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.cfg"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no secret", "SALES_AGENT_NUMBERS=+15550001\n"},
		{"no numbers", "SECRET_KEY=k\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeSettings(t, tt.content))
			assert.ErrorIs(t, err, ErrMissingKey)
		})
	}
}

func TestLoadConfig_EmptyRoster(t *testing.T) {
	_, err := LoadConfig(writeSettings(t, "SECRET_KEY=k\nSALES_AGENT_NUMBERS=\n"))
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMS_PROVIDER", "twilio")
	path := writeSettings(t, "SECRET_KEY=k\nSALES_AGENT_NUMBERS=+15550001\nPORT=7070\nTWILIO_ACCOUNT_SID=AC123\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "twilio", cfg.SMSProvider)
	assert.Equal(t, "AC123", cfg.TwilioAccountSID)
}
