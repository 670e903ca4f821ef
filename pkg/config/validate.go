package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"
)

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config field %q: %s", e.Field, e.Message)
}

var validProviderTypes = map[string]bool{
	"openai":    true,
	"anthropic": true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

// Validate checks the configuration for consistency. It assumes defaults
// have already been applied.
func Validate(cfg *Config) error {
	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		return &ValidationError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("invalid address %q: %v", cfg.Server.ListenAddress, err),
		}
	}

	if len(cfg.Providers) == 0 {
		return &ValidationError{
			Field:   "providers",
			Message: "at least one provider must be configured",
		}
	}

	for name, provider := range cfg.Providers {
		if !validProviderTypes[provider.Type] {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.type", name),
				Message: fmt.Sprintf("unsupported type %q (supported: openai, anthropic)", provider.Type),
			}
		}
		if provider.APIKey == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.api_key", name),
				Message: "API key is required",
			}
		}
		if provider.Timeout < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.timeout", name),
				Message: "timeout must not be negative",
			}
		}
		if provider.MaxRetries < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("providers.%s.max_retries", name),
				Message: "max_retries must not be negative",
			}
		}
	}

	if _, ok := cfg.Providers[cfg.Collaborator.Provider]; !ok {
		return &ValidationError{
			Field:   "collaborator.provider",
			Message: fmt.Sprintf("provider %q is not configured", cfg.Collaborator.Provider),
		}
	}
	if cfg.Collaborator.Model == "" {
		return &ValidationError{
			Field:   "collaborator.model",
			Message: "model is required",
		}
	}
	if cfg.Collaborator.Temperature < 0 || cfg.Collaborator.Temperature > 2 {
		return &ValidationError{
			Field:   "collaborator.temperature",
			Message: "temperature must be between 0 and 2",
		}
	}
	if cfg.Collaborator.MaxTokens <= 0 {
		return &ValidationError{
			Field:   "collaborator.max_tokens",
			Message: "max_tokens must be positive",
		}
	}

	if cfg.Agent.MaxIterations <= 0 {
		return &ValidationError{
			Field:   "agent.max_iterations",
			Message: "max_iterations must be positive",
		}
	}
	if cfg.Agent.RoundTimeout < 0 {
		return &ValidationError{
			Field:   "agent.round_timeout",
			Message: "round_timeout must not be negative",
		}
	}

	if cfg.Catalog.Path == "" {
		return &ValidationError{
			Field:   "catalog.path",
			Message: "path is required",
		}
	}
	if cfg.Catalog.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Catalog.RefreshSchedule); err != nil {
			return &ValidationError{
				Field:   "catalog.refresh_schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.Catalog.RefreshSchedule, err),
			}
		}
	}

	if !validLogLevels[strings.ToLower(cfg.Telemetry.Logging.Level)] {
		return &ValidationError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("unsupported level %q (supported: debug, info, warn, error)", cfg.Telemetry.Logging.Level),
		}
	}
	if !validLogFormats[strings.ToLower(cfg.Telemetry.Logging.Format)] {
		return &ValidationError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("unsupported format %q (supported: json, text)", cfg.Telemetry.Logging.Format),
		}
	}
	if cfg.Telemetry.Metrics.Enabled && !strings.HasPrefix(cfg.Telemetry.Metrics.Path, "/") {
		return &ValidationError{
			Field:   "telemetry.metrics.path",
			Message: "path must start with /",
		}
	}

	return nil
}
