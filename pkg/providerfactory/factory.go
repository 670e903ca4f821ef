// Package providerfactory constructs provider adapters from configuration.
package providerfactory

import (
	"fmt"
	"log/slog"

	"autolife/adjudicator/pkg/providers"
	"autolife/adjudicator/pkg/providers/anthropic"
	"autolife/adjudicator/pkg/providers/openai"
)

// NewProvider creates a new provider instance based on the configuration.
//
// Supported provider types:
//   - "openai": OpenAI Chat Completions API
//   - "anthropic": Anthropic Messages API
//
// The provider type is determined from the config.Type field. If not
// specified, it is inferred from the provider name.
func NewProvider(config providers.ProviderConfig) (providers.Provider, error) {
	providerType := config.Type
	if providerType == "" {
		providerType = inferProviderType(config.Name)
		config.Type = providerType
	}

	slog.Debug("creating provider",
		"name", config.Name,
		"type", providerType,
		"base_url", config.BaseURL,
	)

	var provider providers.Provider
	var err error

	switch providerType {
	case "openai":
		provider, err = openai.NewProvider(config)

	case "anthropic":
		provider, err = anthropic.NewProvider(config)

	default:
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "type",
			Message:  fmt.Sprintf("unsupported provider type: %q (supported: openai, anthropic)", providerType),
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create provider %q: %w", config.Name, err)
	}

	slog.Info("provider created",
		"name", config.Name,
		"type", providerType,
	)

	return provider, nil
}

// inferProviderType infers the provider type from the provider name.
func inferProviderType(name string) string {
	switch name {
	case "openai", "azure-openai":
		return "openai"
	case "anthropic", "claude":
		return "anthropic"
	default:
		return name
	}
}
