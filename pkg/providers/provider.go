package providers

import "context"

// Provider is the reasoning collaborator interface consumed by the decision
// engine. It abstracts a single blocking language-model round-trip so the
// engine never depends on a concrete vendor client and tests can substitute
// a deterministic stub.
//
// All methods accept a context.Context for cancellation and timeout
// control. Implementations must respect context cancellation and return
// promptly when the context is cancelled.
type Provider interface {
	// SendCompletion sends one completion round-trip and returns the
	// normalized response. The request carries the conversation so far,
	// the tool catalog, and execution settings; the response carries
	// narrative text and any tool invocations the model requested.
	//
	// Transient transport failures are retried with exponential backoff.
	// A context deadline surfaces as a TimeoutError.
	SendCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// HealthCheck verifies the provider is reachable and responding.
	// Returns nil if healthy, or an error describing the problem.
	HealthCheck(ctx context.Context) error

	// GetName returns the provider's configured name.
	GetName() string

	// GetType returns the provider's type (e.g., "openai", "anthropic").
	GetType() string

	// GetConfig returns the provider's configuration.
	GetConfig() ProviderConfig

	// IsHealthy returns the current health status.
	IsHealthy() bool

	// GetHealth returns detailed health information.
	GetHealth() ProviderHealth

	// Close releases resources (HTTP connections). The provider must not
	// be used after Close.
	Close() error
}
