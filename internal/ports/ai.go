package ports

import "context"

// ModelInvoker is the external text-generation collaborator: text in, text
// out, no latency or determinism guarantees.
type ModelInvoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// CostAwareAIProvider is implemented by providers that can price a prompt
// before sending it.
type CostAwareAIProvider interface {
	// CountTokens counts the tokens of a prompt without making the actual
	// model call.
	CountTokens(ctx context.Context, prompt string) (int, error)

	// GetModelName returns the name of the current model (e.g. "gemini-1.5-flash")
	GetModelName() string

	// GetProviderName returns the name of the provider (e.g. "gemini")
	GetProviderName() string
}
