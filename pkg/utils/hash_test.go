package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactPhone(t *testing.T) {
	a := RedactPhone("+15559999")

	assert.Len(t, a, redactedLen)
	assert.Equal(t, a, RedactPhone("+15559999"))
	assert.NotEqual(t, a, RedactPhone("+15550001"))
}
