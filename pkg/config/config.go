package config

import "time"

// Config is the root configuration structure for the adjudicator service.
type Config struct {
	// Server contains HTTP server configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server"`

	// Providers contains configuration for the reasoning collaborator
	// providers. Keys are provider names (e.g., "openai", "anthropic").
	Providers map[string]ProviderConfig `yaml:"providers"`

	// Collaborator selects which provider and model drive the analysis
	// loop.
	Collaborator CollaboratorConfig `yaml:"collaborator"`

	// Agent contains decision-loop configuration.
	Agent AgentConfig `yaml:"agent"`

	// Catalog contains policy catalog source configuration.
	Catalog CatalogConfig `yaml:"catalog"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration for writing a response. Claim
	// processing holds the connection for the whole analysis loop, so
	// this must exceed the loop's worst case.
	// Default: 5m
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// ProviderConfig contains configuration for a single collaborator
// provider.
type ProviderConfig struct {
	// Type selects the adapter ("openai" or "anthropic"). Defaults to
	// the provider's map key.
	Type string `yaml:"type"`

	// BaseURL is the provider's API endpoint.
	BaseURL string `yaml:"base_url"`

	// APIKey authenticates against the provider. Typically supplied via
	// environment override rather than the file.
	APIKey string `yaml:"api_key"`

	// Timeout is the per-request timeout.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries is the retry budget for transient failures.
	// Default: 3
	MaxRetries int `yaml:"max_retries"`
}

// CollaboratorConfig selects the reasoning collaborator.
type CollaboratorConfig struct {
	// Provider names the entry in Providers to use.
	// Default: "openai"
	Provider string `yaml:"provider"`

	// Model is the model identifier sent to the provider.
	Model string `yaml:"model"`

	// Temperature for collaborator sampling.
	// Default: 0.2
	Temperature float64 `yaml:"temperature"`

	// MaxTokens per collaborator response.
	// Default: 2000
	MaxTokens int `yaml:"max_tokens"`
}

// AgentConfig contains decision-loop configuration.
type AgentConfig struct {
	// MaxIterations bounds the analysis loop per claim.
	// Default: 10
	MaxIterations int `yaml:"max_iterations"`

	// RoundTimeout bounds each collaborator round-trip. Zero disables
	// the per-round timeout.
	// Default: 60s
	RoundTimeout time.Duration `yaml:"round_timeout"`
}

// CatalogConfig contains policy catalog source configuration.
type CatalogConfig struct {
	// Path is the policy YAML file or directory.
	// Default: "examples/policies.yaml"
	Path string `yaml:"path"`

	// Watch enables filesystem watching for catalog reloads.
	// Default: false
	Watch bool `yaml:"watch"`

	// RefreshSchedule is an optional cron expression for periodic
	// catalog reloads (e.g. "@every 5m"). Empty disables scheduling.
	RefreshSchedule string `yaml:"refresh_schedule"`

	// DebounceInterval coalesces rapid file events into one reload.
	// Default: 500ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus metrics exposure.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`

	// RedactPII enables redaction of personal data in log output.
	// Default: true
	RedactPII bool `yaml:"redact_pii"`
}

// MetricsConfig configures Prometheus metrics exposure.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is served.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the metrics endpoint path.
	// Default: "/metrics"
	Path string `yaml:"path"`
}
