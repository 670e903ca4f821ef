package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleConfigYAML = `server:
  listen_address: "0.0.0.0:9090"
providers:
  openai:
    api_key: "sk-test"
  anthropic:
    base_url: "https://api.anthropic.com"
    api_key: "sk-ant-test"
    timeout: 90s
collaborator:
  provider: anthropic
  model: claude-sonnet-4-5
agent:
  max_iterations: 6
catalog:
  path: testdata/policies.yaml
  watch: true
  refresh_schedule: "@every 5m"
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, sampleConfigYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Collaborator.Provider != "anthropic" {
		t.Errorf("Collaborator.Provider = %q", cfg.Collaborator.Provider)
	}
	if cfg.Agent.MaxIterations != 6 {
		t.Errorf("MaxIterations = %d, want 6", cfg.Agent.MaxIterations)
	}
	if !cfg.Catalog.Watch {
		t.Error("Catalog.Watch = false")
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, sampleConfigYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want default %v", cfg.Server.ReadTimeout, DefaultReadTimeout)
	}
	if cfg.Agent.RoundTimeout != DefaultRoundTimeout {
		t.Errorf("RoundTimeout = %v, want default %v", cfg.Agent.RoundTimeout, DefaultRoundTimeout)
	}
	if cfg.Collaborator.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %v, want default %v", cfg.Collaborator.Temperature, DefaultTemperature)
	}
	if cfg.Collaborator.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %v, want default %v", cfg.Collaborator.MaxTokens, DefaultMaxTokens)
	}

	// Provider defaults fill per-entry gaps.
	openai := cfg.Providers["openai"]
	if openai.Type != "openai" {
		t.Errorf("openai type = %q, want inferred from key", openai.Type)
	}
	if openai.Timeout != DefaultProviderTimeout {
		t.Errorf("openai timeout = %v, want default", openai.Timeout)
	}
	anthropic := cfg.Providers["anthropic"]
	if anthropic.Timeout != 90*time.Second {
		t.Errorf("anthropic timeout = %v, want file value kept", anthropic.Timeout)
	}

	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want default on")
	}
	if !cfg.Telemetry.Logging.RedactPII {
		t.Error("RedactPII = false, want default on")
	}
	if cfg.Telemetry.Logging.Level != "info" || cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("logging defaults = %q/%q", cfg.Telemetry.Logging.Level, cfg.Telemetry.Logging.Format)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Providers: map[string]ProviderConfig{
				"openai": {APIKey: "sk-test"},
			},
			Collaborator: CollaboratorConfig{Model: "gpt-4o"},
		}
		ApplyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad listen address", func(c *Config) { c.Server.ListenAddress = "nope" }, "server.listen_address"},
		{"no providers", func(c *Config) { c.Providers = nil }, "providers"},
		{"bad provider type", func(c *Config) {
			p := c.Providers["openai"]
			p.Type = "gemini"
			c.Providers["openai"] = p
		}, "providers.openai.type"},
		{"missing api key", func(c *Config) {
			p := c.Providers["openai"]
			p.APIKey = ""
			c.Providers["openai"] = p
		}, "providers.openai.api_key"},
		{"unknown collaborator provider", func(c *Config) { c.Collaborator.Provider = "other" }, "collaborator.provider"},
		{"missing model", func(c *Config) { c.Collaborator.Model = "" }, "collaborator.model"},
		{"temperature out of range", func(c *Config) { c.Collaborator.Temperature = 3 }, "collaborator.temperature"},
		{"bad iterations", func(c *Config) { c.Agent.MaxIterations = -1 }, "agent.max_iterations"},
		{"bad cron", func(c *Config) { c.Catalog.RefreshSchedule = "every sometimes" }, "catalog.refresh_schedule"},
		{"bad log level", func(c *Config) { c.Telemetry.Logging.Level = "loud" }, "telemetry.logging.level"},
		{"bad metrics path", func(c *Config) { c.Telemetry.Metrics.Path = "metrics" }, "telemetry.metrics.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("ADJUDICATOR_SERVER_LISTEN_ADDRESS", "127.0.0.1:7070")
	t.Setenv("ADJUDICATOR_PROVIDERS_ANTHROPIC_API_KEY", "sk-ant-env")
	t.Setenv("ADJUDICATOR_AGENT_MAX_ITERATIONS", "3")
	t.Setenv("ADJUDICATOR_COLLABORATOR_MODEL", "claude-opus-4-1")

	cfg, err := LoadConfigWithEnvOverrides(writeConfigFile(t, sampleConfigYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:7070" {
		t.Errorf("ListenAddress = %q, want env value", cfg.Server.ListenAddress)
	}
	if cfg.Providers["anthropic"].APIKey != "sk-ant-env" {
		t.Errorf("anthropic APIKey = %q, want env value", cfg.Providers["anthropic"].APIKey)
	}
	if cfg.Agent.MaxIterations != 3 {
		t.Errorf("MaxIterations = %d, want 3", cfg.Agent.MaxIterations)
	}
	if cfg.Collaborator.Model != "claude-opus-4-1" {
		t.Errorf("Model = %q, want env value", cfg.Collaborator.Model)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "server: [not a mapping"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %v, want parse failure", err)
	}
}
