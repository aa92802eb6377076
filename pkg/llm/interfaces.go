// Package llm provides access to the external language-model collaborator
// behind a single text-in, text-out interface, with interchangeable
// provider implementations.
package llm

import "context"

// Client is the one capability the analysis pipeline needs from a language
// model. Use this interface for dependency injection to enable mocking in
// tests.
type Client interface {
	// Complete sends a single-user-message prompt and returns the text of
	// the model's reply.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the configured model name.
	Model() string

	// Provider returns the provider identifier ("openai" or "anthropic").
	Provider() string
}

// Config holds the settings needed to construct a client for either
// provider.
type Config struct {
	Provider  string // "openai" or "anthropic"
	BaseURL   string // OpenAI-compatible endpoints only; empty for the provider default
	Model     string
	APIKey    string
	MaxTokens int
}

// Ensure the concrete clients implement Client at compile time.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*AnthropicClient)(nil)
	_ Client = (*MockClient)(nil)
)
