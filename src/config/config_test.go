package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("EMOBUDGET_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("EMOBUDGET_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("EMOBUDGET_TEST_MISSING", "fallback"))
}
