package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/cli"
	"autolife/adjudicator/pkg/server"
	"autolife/adjudicator/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the adjudicator API server",
	Long: `Start the adjudicator HTTP API server with the specified configuration.

The server accepts claim submissions on POST /v1/claims, runs each one
through the analysis loop, and returns the decided claim. The policy
catalog is kept fresh by a file watcher and an optional refresh schedule.

Examples:
  # Start with default config
  adjudicator run

  # Start with custom config
  adjudicator run --config /etc/adjudicator/config.yaml

  # Override listen address
  adjudicator run --listen 0.0.0.0:8080

  # Validate config without starting server
  adjudicator run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("AutoLife Adjudicator v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)

	// Policy catalog with watch and scheduled refresh
	manager, err := catalog.NewManager(cfg.Catalog.Path, logger)
	if err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to load policy catalog: %w", err))
	}
	defer manager.Stop()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(nil)
		collector.SetCatalogSize(manager.Catalog().Len())
		manager.OnReload = collector.ObserveCatalogReload
	}

	if err := manager.Start(catalog.ManagerConfig{
		Watch:            cfg.Catalog.Watch,
		RefreshSchedule:  cfg.Catalog.RefreshSchedule,
		DebounceInterval: cfg.Catalog.DebounceInterval,
	}); err != nil {
		return cli.NewCommandError("run", err)
	}
	fmt.Printf("✓ Policy catalog loaded (%d policies)\n", manager.Catalog().Len())

	engine, err := buildEngine(cfg, manager.Catalog(), logger)
	if err != nil {
		return err
	}
	if collector != nil {
		engine.SetMetrics(collector)
	}
	fmt.Printf("✓ Collaborator provider ready (%s, model %s)\n",
		cfg.Collaborator.Provider, cfg.Collaborator.Model)

	opts := server.Options{MetricsPath: cfg.Telemetry.Metrics.Path}
	if collector != nil {
		opts.MetricsHandler = collector.Handler()
	}
	srv := server.NewServer(&cfg.Server, engine, manager.Catalog(), logger, opts)

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Println("\nPress Ctrl+C to stop")

	// Start blocks until a shutdown signal, context cancel, or error.
	if err := srv.Start(cli.SetupSignalHandler()); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}
