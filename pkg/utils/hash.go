package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

const redactedLen = 12

// RedactPhone returns a short, stable SHA-256 fingerprint of a phone number
// so log lines can correlate a lead without carrying the number itself.
func RedactPhone(phone string) string {
	sum := sha256.Sum256([]byte(phone))
	return hex.EncodeToString(sum[:])[:redactedLen]
}
