// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionProvider turns a single prompt into a text completion.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, prompt string) (string, error)
	HealthCheck(ctx context.Context) error
}
