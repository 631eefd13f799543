// File: internal/services/ai/gemini_provider.go
package ai

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// GeminiProvider calls the Gemini API through its OpenAI-compatible endpoint,
// so the standard go-openai client works unchanged.
type GeminiProvider struct {
	config *Config
	client *openai.Client
}

func NewGeminiProvider(config *Config) *GeminiProvider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL
	client := openai.NewClientWithConfig(clientConfig)

	return &GeminiProvider{
		config: config,
		client: client,
	}
}

func (p *GeminiProvider) GetCompletion(ctx context.Context, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if p.config.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: p.config.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       p.config.Model,
			Messages:    messages,
			Temperature: p.config.Temperature,
			TopP:        p.config.TopP,
		},
	)
	if err != nil {
		return "", NewProviderError("completion", "failed to create completion", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Model:     p.config.Model,
			Message:   "empty completion response",
			Cause:     ErrEmptyCompletion,
		}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *GeminiProvider) HealthCheck(ctx context.Context) error {
	return nil
}
