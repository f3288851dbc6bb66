package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SURVEYSWEEP_TEST_KEY", "set")

	assert.Equal(t, "set", getEnvOrDefault("SURVEYSWEEP_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnvOrDefault("SURVEYSWEEP_TEST_MISSING", "fallback"))
}
