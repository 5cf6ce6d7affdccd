package llm

import (
	"context"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/llm/providers"
)

// CompletionOptions control a single completion call
type CompletionOptions = providers.CompletionOpts

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a prompt and returns the raw text of the model's reply
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
