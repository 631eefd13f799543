// File: internal/services/chat/config.go
package chat

import (
	"fmt"
	"time"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
)

type Config struct {
	// Timeout bounds the single synchronous model call per submission.
	Timeout time.Duration

	// TitleMaxRunes is the auto-title cutoff; longer first messages get an
	// ellipsis suffix.
	TitleMaxRunes int
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.TitleMaxRunes <= 0 {
		return fmt.Errorf("title_max_runes must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:       60 * time.Second,
		TitleMaxRunes: domain.MaxTitleRunes,
	}
}
