// File: internal/services/ai_service.go
package services

import (
	"context"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/ai"
)

// AIService is the facade over the completion provider; the rest of the
// application never touches the API client directly.
type AIService struct {
	config   *ai.Config
	provider ai.CompletionProvider
	logger   Logger
}

func NewAIService(config *ai.Config, logger Logger) (*AIService, error) {
	if config == nil {
		return nil, ai.NewConfigError("AI config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, ai.NewConfigError(err.Error())
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &AIService{
		config:   config,
		provider: ai.NewGeminiProvider(config),
		logger:   logger,
	}, nil
}

// NewAIServiceWithProvider injects a custom provider. Used by tests.
func NewAIServiceWithProvider(provider ai.CompletionProvider, logger Logger) (*AIService, error) {
	if provider == nil {
		return nil, ai.NewConfigError("completion provider is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &AIService{provider: provider, logger: logger}, nil
}

func (s *AIService) GetCompletion(ctx context.Context, prompt string) (string, error) {
	reply, err := s.provider.GetCompletion(ctx, prompt)
	if err != nil {
		s.logger.Warn("completion failed", "error", err.Error())
		return "", err
	}
	return reply, nil
}
