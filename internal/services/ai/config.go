// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	// Credentials & endpoint
	APIKey  string
	BaseURL string
	Model   string

	// Optional system instruction prepended to every prompt.
	SystemInstruction string

	// Generation parameters
	Temperature float32
	TopP        float32

	// Timeout bounds a single completion call. The upstream behavior had no
	// bound at all; this is an intentional hardening.
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("AI API key is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("AI base URL is required")
	}
	if c.Model == "" {
		return fmt.Errorf("AI model is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://generativelanguage.googleapis.com/v1beta/openai/",
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
		TopP:        0.95,
		Timeout:     60 * time.Second,
	}
}
