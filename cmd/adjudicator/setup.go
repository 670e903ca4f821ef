package main

import (
	"fmt"
	"log/slog"

	"autolife/adjudicator/pkg/agent"
	"autolife/adjudicator/pkg/analysis"
	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/cli"
	"autolife/adjudicator/pkg/config"
	"autolife/adjudicator/pkg/providerfactory"
	"autolife/adjudicator/pkg/providers"
	"autolife/adjudicator/pkg/telemetry/logging"
)

// loadConfig loads and validates the configuration file, with environment
// variable overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg, nil
}

// buildLogger constructs the structured logger from telemetry config and
// installs it as the process default.
func buildLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Telemetry.Logging.Format,
		RedactPII: cfg.Telemetry.Logging.RedactPII,
	})
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}

	slog.SetDefault(logger)
	return logger, nil
}

// buildEngine wires the collaborator provider and analysis toolkit into a
// claim processing engine.
func buildEngine(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) (*agent.Engine, error) {
	name := cfg.Collaborator.Provider
	providerCfg, ok := cfg.Providers[name]
	if !ok {
		return nil, cli.NewConfigError("collaborator.provider", fmt.Sprintf("provider %q is not configured", name))
	}

	provider, err := providerfactory.NewProvider(providers.ProviderConfig{
		Name:       name,
		Type:       providerCfg.Type,
		BaseURL:    providerCfg.BaseURL,
		APIKey:     providerCfg.APIKey,
		Timeout:    providerCfg.Timeout,
		MaxRetries: providerCfg.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider %q: %w", name, err)
	}

	toolkit := analysis.NewToolkit(cat, logger)

	engine := agent.NewEngine(provider, toolkit, agent.Config{
		Model:         cfg.Collaborator.Model,
		Temperature:   cfg.Collaborator.Temperature,
		MaxTokens:     cfg.Collaborator.MaxTokens,
		MaxIterations: cfg.Agent.MaxIterations,
		RoundTimeout:  cfg.Agent.RoundTimeout,
	}, logger)

	return engine, nil
}
