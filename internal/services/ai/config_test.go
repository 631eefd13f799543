// File: internal/services/ai/config_test.go
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	require.NoError(t, cfg.Validate())

	missingKey := DefaultConfig()
	assert.Error(t, missingKey.Validate())

	noModel := DefaultConfig()
	noModel.APIKey = "test-key"
	noModel.Model = ""
	assert.Error(t, noModel.Validate())

	noTimeout := DefaultConfig()
	noTimeout.APIKey = "test-key"
	noTimeout.Timeout = 0
	assert.Error(t, noTimeout.Validate())
}

func TestDefaultConfigTargetsGemini(t *testing.T) {
	cfg := DefaultConfig()
	assert.Contains(t, cfg.BaseURL, "generativelanguage.googleapis.com")
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Positive(t, cfg.Timeout)
}
